package spacepoint

import (
	"net/http"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/session"
)

type config struct {
	store         session.Store
	clientOptions []client.Option
}

// Option configures a Client.
type Option func(*config)

// WithStore replaces the default in-memory session store.
func WithStore(store session.Store) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithBaseURL sets an explicit service base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.clientOptions = append(c.clientOptions, client.WithBaseURL(baseURL))
	}
}

// WithOrigin tells the client where it is running so local development
// resolves to the fixed local service address.
func WithOrigin(origin string) Option {
	return func(c *config) {
		c.clientOptions = append(c.clientOptions, client.WithOrigin(origin))
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.clientOptions = append(c.clientOptions, client.WithHTTPClient(httpClient))
	}
}

// WithOnSessionExpired registers the strategy invoked after a 401 cleared
// the session.
func WithOnSessionExpired(callback func()) Option {
	return func(c *config) {
		c.clientOptions = append(c.clientOptions, client.WithOnSessionExpired(callback))
	}
}
