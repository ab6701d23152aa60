// Package source fetches curated category data from an external HTTP API.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/go-resty/resty/v2"
	"go.uber.org/ratelimit"
)

// ErrUnsupported is returned for categories without a configured path.
var ErrUnsupported = errors.New("category not served by external source")

type Config struct {
	BaseURL      string
	APIKey       string
	APIKeyHeader string
	Timeout      time.Duration
	// RPS caps outbound requests per second; zero disables the limit.
	RPS   int
	Paths map[model.Category]string
}

// Response is the unwrapped body of a successful request.
type Response struct {
	Status int
	Data   json.RawMessage
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Result json.RawMessage `json:"result"`
}

// Client is the external data source adapter.
type Client struct {
	http    *resty.Client
	paths   map[model.Category]string
	timeout time.Duration
	limiter ratelimit.Limiter
	metrics Metrics
}

func NewClient(cfg Config, metrics Metrics) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("source metrics is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.APIKeyHeader == "" {
		cfg.APIKeyHeader = DefaultAPIKeyHeader
	}
	if cfg.Paths == nil {
		cfg.Paths = DefaultPaths()
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if cfg.APIKey != "" {
		httpClient.SetHeader(cfg.APIKeyHeader, cfg.APIKey)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	paths := cfg.Paths
	if cfg.BaseURL == "" {
		paths = map[model.Category]string{}
	}

	return &Client{
		http:    httpClient,
		paths:   paths,
		timeout: cfg.Timeout,
		limiter: limiter,
		metrics: metrics,
	}, nil
}

// Supports reports whether the category has an upstream path.
func (c *Client) Supports(category model.Category) bool {
	_, ok := c.paths[category]
	return ok
}

// FetchCategory performs one request for the category and unwraps the
// response envelope. Network errors, non-2xx statuses and empty or
// malformed bodies wrap model.ErrTransport.
func (c *Client) FetchCategory(ctx context.Context, category model.Category, params model.Params) (resp Response, err error) {
	path, ok := c.paths[category]
	if !ok {
		return Response{}, fmt.Errorf("%s: %w", category, ErrUnsupported)
	}
	path, err = expandPath(path, params)
	if err != nil {
		return Response{}, err
	}

	// Take does not observe ctx; the caller's deadline is checked on both sides
	// of the wait so a throttled call never starts after it expired.
	if err := ctx.Err(); err != nil {
		return Response{}, fmt.Errorf("fetch %s: %w: %w", category, model.ErrTransport, err)
	}
	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return Response{}, fmt.Errorf("fetch %s: %w: throttled past deadline: %w", category, model.ErrTransport, err)
	}
	started := time.Now()
	defer func() {
		c.metrics.Observe(category, err, started)
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(queryParams(params)).
		Get(path)
	if err != nil {
		return Response{}, fmt.Errorf("fetch %s: %w: %w", category, model.ErrTransport, err)
	}
	if res.IsError() {
		return Response{}, fmt.Errorf("fetch %s: %w: status %d", category, model.ErrTransport, res.StatusCode())
	}

	var body envelope
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return Response{}, fmt.Errorf("fetch %s: %w: decode envelope: %w", category, model.ErrTransport, err)
	}
	data := body.Data
	if isEmptyJSON(data) {
		data = body.Result
	}
	if isEmptyJSON(data) {
		return Response{}, fmt.Errorf("fetch %s: %w: %w", category, model.ErrTransport, model.ErrEmptyPayload)
	}

	return Response{Status: res.StatusCode(), Data: data}, nil
}

// FetchPayload fetches the category and validates it against the category shape.
func (c *Client) FetchPayload(ctx context.Context, category model.Category, params model.Params) (model.Payload, error) {
	resp, err := c.FetchCategory(ctx, category, params)
	if err != nil {
		return nil, err
	}
	payload, err := model.DecodePayload(category, resp.Data)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %w", category, model.ErrTransport, err)
	}
	return payload, nil
}

func expandPath(path string, params model.Params) (string, error) {
	if !strings.Contains(path, addressToken) {
		return path, nil
	}
	address := params[model.ParamAddress]
	if address == "" {
		return "", fmt.Errorf("path %q: missing address: %w", path, model.ErrInvalidQuery)
	}
	return strings.ReplaceAll(path, addressToken, url.PathEscape(address)), nil
}

func queryParams(params model.Params) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		if k == model.ParamAddress {
			continue
		}
		out[k] = v
	}
	return out
}

func isEmptyJSON(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
