// Package validation runs ordered field rules against a JSON request body.
// The first failing rule stops the run and its message becomes the 400
// response.
package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reelhub/media-api/internal/core/domain"
)

// Kind selects the predicate a Rule applies.
type Kind int

const (
	// Presence: the field exists, is not null, and is not an empty string.
	Presence Kind = iota
	// Membership: the field's string form is one of Values.
	Membership
	// MinLength: the field's string form has at least Min characters.
	MinLength
)

func (k Kind) String() string {
	switch k {
	case Presence:
		return "presence"
	case Membership:
		return "membership"
	case MinLength:
		return "min_length"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Rule is one {field, predicate, message} descriptor.
type Rule struct {
	Field   string
	Kind    Kind
	Values  []string
	Min     int
	Message string
}

func Required(field, message string) Rule {
	return Rule{Field: field, Kind: Presence, Message: message}
}

func OneOf(field, message string, values ...string) Rule {
	return Rule{Field: field, Kind: Membership, Values: values, Message: message}
}

func MinLen(field string, n int, message string) Rule {
	return Rule{Field: field, Kind: MinLength, Min: n, Message: message}
}

// Runner evaluates rules through go-playground/validator.
type Runner struct {
	v *validator.Validate
}

func NewRunner() *Runner {
	return &Runner{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Check applies rules in order and returns a *domain.ValidationError for the
// first one that fails. Absent fields only fail Presence rules; Membership
// and MinLength treat a missing value as the empty string.
func (r *Runner) Check(body map[string]any, rules []Rule) error {
	for _, rule := range rules {
		if !r.passes(body, rule) {
			return &domain.ValidationError{Field: rule.Field, Message: rule.Message}
		}
	}
	return nil
}

func (r *Runner) passes(body map[string]any, rule Rule) bool {
	raw, present := body[rule.Field]

	switch rule.Kind {
	case Presence:
		if !present || raw == nil {
			return false
		}
		if s, ok := raw.(string); ok {
			return r.v.Var(s, "required") == nil
		}
		return true
	case Membership:
		return r.v.Var(stringOf(raw), "oneof="+strings.Join(rule.Values, " ")) == nil
	case MinLength:
		return r.v.Var(stringOf(raw), "min="+strconv.Itoa(rule.Min)) == nil
	default:
		return false
	}
}

// stringOf renders scalar JSON values the way they appear on the wire so
// numeric ids can be length-checked like strings.
func stringOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
