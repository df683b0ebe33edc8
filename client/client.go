package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/spacepoint/spacepoint-go/session"
)

// Client dispatches authenticated requests against the SpacePoint API.
// The zero options default to an in-memory session, the shared HTTP client
// and same-origin relative paths.
type Client struct {
	override         string
	origin           string
	baseURL          string
	contentType      string
	headers          http.Header
	httpClient       *http.Client
	store            session.Store
	onSessionExpired func()
}

// New creates a Client.
func New(options ...Option) *Client {
	ret := &Client{
		contentType: "application/json",
		httpClient:  http.DefaultClient,
		store:       session.NewMemoryStore(),
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.baseURL = ResolveBaseURL(ret.override, ret.origin)
	return ret
}

// Store exposes the session store the client reads from.
func (c *Client) Store() session.Store {
	return c.store
}

// BaseURL reports the resolved base URL; empty means same-origin paths.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Result is the successful outcome of a dispatch.
type Result struct {
	StatusCode int
	// NoContent marks a 204 response; Data is empty and was never parsed.
	NoContent bool
	Data      json.RawMessage
}

// Decode unmarshals the result body into out. Decoding a no-content result
// or passing nil is a no-op.
func (r *Result) Decode(out interface{}) error {
	if out == nil || r.NoContent || len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, out)
}

type request struct {
	method    string
	bodyValue interface{}
	body      io.Reader
	header    http.Header
}

// RequestOption customizes a single dispatch.
type RequestOption func(*request)

// WithMethod sets the HTTP method; the default is GET.
func WithMethod(method string) RequestOption {
	return func(r *request) {
		r.method = method
	}
}

// WithJSONBody attaches a JSON-encoded request body.
func WithJSONBody(value interface{}) RequestOption {
	return func(r *request) {
		r.bodyValue = value
	}
}

// WithBody attaches a raw request body.
func WithBody(body io.Reader) RequestOption {
	return func(r *request) {
		r.body = body
	}
}

// WithRequestHeader adds a caller header to this request. Content-Type and
// Authorization remain client-controlled and cannot be overridden.
func WithRequestHeader(name, value string) RequestOption {
	return func(r *request) {
		if r.header == nil {
			r.header = http.Header{}
		}
		r.header.Set(name, value)
	}
}

// Dispatch issues one decorated, classified call. Exactly one of result or
// error is produced; the session store is touched only on the 401 path.
func (c *Client) Dispatch(ctx context.Context, path string, options ...RequestOption) (*Result, error) {
	req := &request{method: http.MethodGet}
	for _, opt := range options {
		opt(req)
	}

	body := req.body
	if req.bodyValue != nil {
		data, err := json.Marshal(req.bodyValue)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	c.decorate(httpReq, req.header)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// transport failures propagate as-is, unclassified
		return nil, err
	}
	defer resp.Body.Close()
	return c.classify(resp)
}

// decorate merges caller headers under the client-controlled ones.
func (c *Client) decorate(httpReq *http.Request, callerHeader http.Header) {
	for name, values := range c.headers {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}
	for name, values := range callerHeader {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}
	if c.contentType != "" {
		httpReq.Header.Set("Content-Type", c.contentType)
	}
	if token := c.store.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	} else {
		httpReq.Header.Del("Authorization")
	}
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
}

func (c *Client) classify(resp *http.Response) (*Result, error) {
	// 401 wins over every other status: the session is gone.
	if resp.StatusCode == http.StatusUnauthorized {
		body, _ := io.ReadAll(resp.Body)
		_ = c.store.ClearAuth()
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return nil, &Error{StatusCode: resp.StatusCode, Detail: "Unauthorized", Body: string(body)}
	}
	if resp.StatusCode == http.StatusNoContent {
		return &Result{StatusCode: resp.StatusCode, NoContent: true}, nil
	}
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		return &Result{StatusCode: resp.StatusCode, Data: data}, nil
	}
	data, _ := io.ReadAll(resp.Body)
	return nil, &Error{StatusCode: resp.StatusCode, Detail: errorDetail(data)}
}

// errorDetail extracts the server's detail message, degrading to the
// stringified JSON body and finally to a generic message. It never fails.
func errorDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return string(trimmed)
	}
	return genericErrorDetail
}

// Get dispatches a GET and decodes the result into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	result, err := c.Dispatch(ctx, path)
	if err != nil {
		return err
	}
	return result.Decode(out)
}

// Post dispatches a POST with a JSON body and decodes the result into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	options := []RequestOption{WithMethod(http.MethodPost)}
	if body != nil {
		options = append(options, WithJSONBody(body))
	}
	result, err := c.Dispatch(ctx, path, options...)
	if err != nil {
		return err
	}
	return result.Decode(out)
}

// Put dispatches a PUT with a JSON body and decodes the result into out.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	options := []RequestOption{WithMethod(http.MethodPut)}
	if body != nil {
		options = append(options, WithJSONBody(body))
	}
	result, err := c.Dispatch(ctx, path, options...)
	if err != nil {
		return err
	}
	return result.Decode(out)
}

// Delete dispatches a DELETE, ignoring any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Dispatch(ctx, path, WithMethod(http.MethodDelete))
	return err
}
