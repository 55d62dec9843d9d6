// Package tmdb is the HTTP adapter for The Movie Database API. Every call
// maps to one upstream endpoint and hands back the decoded JSON object as-is.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/oops"

	"github.com/reelhub/media-api/internal/core/domain"
)

const (
	CodeRequest = "TMDB_REQUEST"
	CodeStatus  = "TMDB_STATUS"
	CodeDecode  = "TMDB_DECODE"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
)

var errMissingBaseURL = errors.New("tmdb: base url is required")

// Config holds the upstream location and credentials.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Observer is told about every upstream call once it finishes.
type Observer func(endpoint string, elapsed time.Duration, err error)

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithObserver installs a hook called after each upstream call.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observe = o }
}

// Client implements ports.MediaCatalog over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	observe Observer
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errMissingBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		observe: func(string, time.Duration, error) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) MediaList(ctx context.Context, mediaType, category, page string) (domain.Media, error) {
	return c.get(ctx, "media_list", mediaType+"/"+category, url.Values{"page": {page}})
}

func (c *Client) MediaGenres(ctx context.Context, mediaType string) (domain.Media, error) {
	return c.get(ctx, "media_genres", "genre/"+mediaType+"/list", nil)
}

func (c *Client) MediaSearch(ctx context.Context, mediaType, query, page string) (domain.Media, error) {
	return c.get(ctx, "media_search", "search/"+mediaType, url.Values{"query": {query}, "page": {page}})
}

func (c *Client) MediaDetail(ctx context.Context, mediaType, mediaID string) (domain.Media, error) {
	return c.get(ctx, "media_detail", mediaType+"/"+mediaID, nil)
}

func (c *Client) MediaCredits(ctx context.Context, mediaType, mediaID string) (domain.Media, error) {
	return c.get(ctx, "media_credits", mediaType+"/"+mediaID+"/credits", nil)
}

func (c *Client) MediaVideos(ctx context.Context, mediaType, mediaID string) (domain.Media, error) {
	return c.get(ctx, "media_videos", mediaType+"/"+mediaID+"/videos", nil)
}

func (c *Client) MediaImages(ctx context.Context, mediaType, mediaID string) (domain.Media, error) {
	return c.get(ctx, "media_images", mediaType+"/"+mediaID+"/images", nil)
}

func (c *Client) MediaRecommend(ctx context.Context, mediaType, mediaID string) (domain.Media, error) {
	return c.get(ctx, "media_recommend", mediaType+"/"+mediaID+"/recommendations", nil)
}

func (c *Client) PersonDetail(ctx context.Context, personID string) (domain.Media, error) {
	return c.get(ctx, "person_detail", "person/"+personID, nil)
}

func (c *Client) PersonMedias(ctx context.Context, personID string) (domain.Media, error) {
	return c.get(ctx, "person_medias", "person/"+personID+"/combined_credits", nil)
}

// buildURL appends the endpoint to the base URL verbatim, then the api key,
// then the non-empty query parameters.
func (c *Client) buildURL(endpoint string, params url.Values) string {
	qs := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				qs.Add(k, v)
			}
		}
	}

	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(endpoint)
	b.WriteString("?api_key=")
	b.WriteString(url.QueryEscape(c.apiKey))
	b.WriteByte('&')
	b.WriteString(qs.Encode())
	return b.String()
}

func (c *Client) get(ctx context.Context, name, endpoint string, params url.Values) (media domain.Media, err error) {
	start := time.Now()
	defer func() { c.observe(name, time.Since(start), err) }()

	errb := oops.In("tmdb").With("endpoint", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(endpoint, params), nil)
	if err != nil {
		return nil, errb.Code(CodeRequest).Wrap(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errb.Code(CodeRequest).Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, errb.Code(CodeStatus).With("status", resp.StatusCode).
			Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&media); err != nil {
		return nil, errb.Code(CodeDecode).Wrap(err)
	}
	return media, nil
}
