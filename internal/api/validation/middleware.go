package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/reelhub/media-api/internal/api/metrics"
	"github.com/reelhub/media-api/internal/core/domain"
)

const maxBodyBytes = 1 << 20

// ErrInvalidBody is returned when a validated request body is not a JSON object.
var ErrInvalidBody = &domain.ValidationError{Message: "Invalid request body"}

// Middleware validates the request body against rules before calling next.
// The body is restored so handlers can still bind it.
func (r *Runner) Middleware(rules ...Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := readBody(c)
			if err != nil {
				return ErrInvalidBody
			}

			if err := r.Check(body, rules); err != nil {
				var ve *domain.ValidationError
				if errors.As(err, &ve) {
					metrics.ValidationFailuresTotal.WithLabelValues(ve.Field).Inc()
				}
				return err
			}
			return next(c)
		}
	}
}

func readBody(c echo.Context) (map[string]any, error) {
	req := c.Request()
	if req.Body == nil {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
	_ = req.Body.Close()
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))

	body := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}
