// Package http implements the HTTP transport used by the Cuentica API client.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/magarcia/cuentica-sdk/internal/constants"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// Request represents an API request before it hits the wire.
type Request struct {
	Method  string
	Path    string
	Query   *cuentica.Params
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response with its body fully read.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// DecodeJSON unmarshals the response body into v. A 204 No Content
// response succeeds without touching v; callers get the zero value.
func (r *Response) DecodeJSON(v interface{}) error {
	if r.StatusCode == nethttp.StatusNoContent {
		return nil
	}

	return json.Unmarshal(r.Body, v)
}

// Client handles HTTP communication with the Cuentica API. Every request
// carries the token in the X-AUTH-TOKEN header; responses are classified
// into rate-limit errors, request errors, or success before the caller sees
// them.
type Client struct {
	baseURL    string
	token      string
	httpClient *nethttp.Client
	logger     cuentica.Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHTTPTimeout sets the timeout on the underlying *http.Client.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets a logger for request lifecycle events.
func WithLogger(logger cuentica.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables logging of full request and response detail.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates an HTTP client bound to baseURL, authenticating with
// token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &nethttp.Client{
			Timeout: constants.DefaultHTTPTimeout,
		},
		userAgent: "cuentica-sdk/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and classifies the response.
//
// 429 responses become *cuentica.RateLimitError with the reset time parsed
// from the X-RateLimit-Reset header. Other non-2xx responses become
// *cuentica.RequestError carrying the status code and raw body. 2xx
// responses return with their body bytes; decoding is the caller's job.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if req.Query != nil && req.Query.Len() > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.AuthHeader, c.token)
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("HTTP request failed", map[string]interface{}{
				"method": req.Method,
				"url":    fullURL,
				"error":  err.Error(),
			})
		}

		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	if err := c.classify(resp); err != nil {
		if c.logger != nil {
			c.logger.Error("API request failed", map[string]interface{}{
				"method": req.Method,
				"url":    fullURL,
				"status": httpResp.StatusCode,
			})
		}

		return resp, err
	}

	return resp, nil
}

// classify turns non-2xx responses into typed errors.
func (c *Client) classify(resp *Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == nethttp.StatusTooManyRequests {
		return &cuentica.RateLimitError{
			ResetAt: parseResetHeader(resp.Headers.Get(constants.RateLimitResetHeader)),
		}
	}

	return &cuentica.RequestError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(resp.Body)),
	}
}

// parseResetHeader parses the X-RateLimit-Reset header, unix seconds. A
// missing or malformed header yields the zero time.
func parseResetHeader(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(seconds, 0)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query *cuentica.Params) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodDelete,
		Path:   path,
	})
}

// GetRaw performs a GET request for a binary resource such as an invoice
// PDF. Error classification matches Do; on success the raw body bytes are
// returned unmodified.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Headers: map[string]string{
			"Accept": "application/pdf",
		},
	})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}
