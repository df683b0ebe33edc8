package client

import (
	"net/http"

	"github.com/spacepoint/spacepoint-go/session"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets an explicit base URL, used verbatim.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.override = baseURL
	}
}

// WithOrigin tells the client where it is running so the base-URL policy can
// detect local development. Ignored when an explicit base URL is set.
func WithOrigin(origin string) Option {
	return func(c *Client) {
		c.origin = origin
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithStore injects the session store the client reads tokens from and
// clears on session expiry.
func WithStore(store session.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithOnSessionExpired registers the navigation strategy invoked after a 401
// cleared the session, typically a redirect to the login surface.
func WithOnSessionExpired(callback func()) Option {
	return func(c *Client) {
		c.onSessionExpired = callback
	}
}

// WithContentType overrides the default application/json content type. An
// empty value disables the header entirely for non-JSON payloads.
func WithContentType(contentType string) Option {
	return func(c *Client) {
		c.contentType = contentType
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = http.Header{}
		}
		c.headers.Set(name, value)
	}
}
