package http

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// DefaultUserAgent is sent when Options.UserAgent is empty.
const DefaultUserAgent = "MetroArt"

// Payload is the top-level JSON object of an API response, keyed by field.
//
// An empty Payload stands for "no data": the request failed, the body was
// not a JSON object, or the object had no fields.
type Payload map[string]json.RawMessage

// Empty reports whether the payload carries no fields.
func (p Payload) Empty() bool {
	return len(p) == 0
}

// Decode unmarshals the payload into v, which is usually a DTO struct.
func (p Payload) Decode(v any) error {
	data, err := json.Marshal(map[string]json.RawMessage(p))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root without a trailing slash, e.g.
	// "https://collectionapi.metmuseum.org/public/collection/v1".
	BaseURL string

	// UserAgent is sent with every request. Defaults to DefaultUserAgent.
	UserAgent string

	// Timeout bounds each request. Zero means 30 seconds.
	Timeout time.Duration

	// RequestsPerSecond caps the request rate. Zero disables the limit.
	RequestsPerSecond int

	// Logger receives request diagnostics. The zero value discards them.
	Logger zerolog.Logger
}

// Client wraps HTTP operations against the collection API.
//
// Client provides:
//   - Endpoint URL construction relative to the base URL
//   - Configured User-Agent header and timeout
//   - Rate limiting shared by all requests of the client
//   - JSON decoding with failures collapsed to an empty Payload
//
// Client is safe for concurrent use.
type Client struct {
	rc      *resty.Client
	baseURL string
	rl      ratelimit.Limiter
	logger  zerolog.Logger
}

// NewClient creates a new API client.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	rl := ratelimit.NewUnlimited()
	if opts.RequestsPerSecond > 0 {
		rl = ratelimit.New(opts.RequestsPerSecond)
	}

	rc := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &Client{
		rc:      rc,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		rl:      rl,
		logger:  opts.Logger,
	}
}

// Close releases idle connections held by the client.
func (c *Client) Close() error {
	return c.rc.Close()
}

// URL returns the absolute URL for an endpoint.
func (c *Client) URL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// Get performs a GET request and returns the raw response body.
//
// Returns a *TransportError if the request fails or the status is not 2xx.
//
// Example:
//
//	body, err := client.Get(ctx, "objects/436535", nil)
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	c.rl.Take()

	req := c.rc.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(c.URL(endpoint))
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode()}
	}

	return []byte(resp.String()), nil
}

// Fetch performs a GET request and decodes the response as a JSON object.
//
// Any failure is logged at warn level and yields an empty Payload; Fetch
// never reports an error to the caller.
//
// Example:
//
//	payload := client.Fetch(ctx, "departments", nil)
//	if payload.Empty() {
//	    fmt.Println("service unavailable")
//	}
func (c *Client) Fetch(ctx context.Context, endpoint string, params map[string]string) Payload {
	body, err := c.Get(ctx, endpoint, params)
	if err != nil {
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Error connecting to the collection API")
		return Payload{}
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn().Err(&DecodeError{Endpoint: endpoint, Err: err}).Str("endpoint", endpoint).Msg("Error decoding JSON response")
		return Payload{}
	}
	if payload == nil {
		return Payload{}
	}

	c.logger.Debug().Str("endpoint", endpoint).Int("fields", len(payload)).Msg("API response decoded")
	return payload
}
