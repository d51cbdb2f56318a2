package figmaapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/specialistvlad/figvars/internal/ctxlog"
	"github.com/specialistvlad/figvars/internal/payload"
)

const (
	DefaultBaseURL = "https://api.figma.com"
	DefaultTimeout = 30 * time.Second

	tokenHeader = "X-Figma-Token"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("variables api returned status %d: %s", e.StatusCode, e.Body)
}

// Options configure a Client. Zero values pick the defaults.
type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	RetryCount int
}

// Client talks to the variables endpoint.
type Client struct {
	http *resty.Client
}

// NewClient builds a client. A token is required.
func NewClient(opts Options) (*Client, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("api token is required (set FIGMA_TOKEN)")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL scheme must be http or https, got: %q", u.Scheme)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RetryCount < 0 {
		opts.RetryCount = 0
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader(tokenHeader, opts.Token).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryCondition)

	return &Client{http: client}, nil
}

// retryCondition retries network errors, throttling and server errors.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}

// GetLocalVariables fetches the local variables of the file identified by
// fileKey.
func (c *Client) GetLocalVariables(ctx context.Context, fileKey string) (*payload.Response, error) {
	if fileKey == "" {
		return nil, fmt.Errorf("file key is required")
	}
	log := ctxlog.FromContext(ctx)

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("fileKey", fileKey).
		Get("/v1/files/{fileKey}/variables/local")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch variables for file %q: %w", fileKey, err)
	}
	log.Debug("Fetched variables.", "fileKey", fileKey, "status", resp.StatusCode(), "duration", resp.Time())

	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	out, err := payload.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, err
	}
	return out, nil
}
