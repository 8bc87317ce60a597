package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const maxErrorBody = 1 << 20

// Client talks to the tournament REST API. Authenticated calls take the
// bearer token explicitly; the client itself holds no session.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOptions configures client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for every call.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.Timeout = d
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: opts.HTTPClient,
	}
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call describes one request.
type call struct {
	method     string
	path       string
	bearer     string
	body       any
	out        any
	defaultErr string // shown when an error response has no message
}

func (c *Client) do(ctx context.Context, rc call) error {
	op := rc.method + " " + rc.path

	var body io.Reader
	if rc.body != nil {
		data, err := json.Marshal(rc.body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, c.baseURL+rc.path, body)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if rc.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.clientFor(rc.bearer).Do(req)
	if err != nil {
		log.Debug().Err(err).Str("op", op).Msg("API request failed")
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(op, resp, rc.defaultErr)
	}

	if rc.out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(rc.out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}

// clientFor wraps the base transport with a static bearer token source.
func (c *Client) clientFor(bearer string) *http.Client {
	if bearer == "" {
		return c.httpClient
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: bearer,
		TokenType:   "Bearer",
	})
	return &http.Client{
		Transport: &oauth2.Transport{Source: source, Base: c.httpClient.Transport},
		Timeout:   c.httpClient.Timeout,
	}
}

func decodeError(op string, resp *http.Response, defaultMsg string) error {
	apiErr := &APIError{Op: op, Status: resp.StatusCode, Message: defaultMsg}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(data) > 0 {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("%s: %s", op, resp.Status)
	}
	log.Debug().Str("op", op).Int("status", resp.StatusCode).Str("error", apiErr.Message).Msg("API error response")
	return apiErr
}

func pathWithID(route, id string) string {
	return route + "/" + url.PathEscape(id)
}
