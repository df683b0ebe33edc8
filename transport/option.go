package transport

import (
	"net/http"

	"github.com/spacepoint/spacepoint-go/session"
)

// Option configures a RoundTripper.
type Option func(*RoundTripper)

// WithStore injects the session store tokens are read from.
func WithStore(store session.Store) Option {
	return func(r *RoundTripper) {
		r.store = store
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(r *RoundTripper) {
		r.transport = transport
	}
}

// WithOnSessionExpired registers a callback fired after a 401 cleared the
// session.
func WithOnSessionExpired(callback func()) Option {
	return func(r *RoundTripper) {
		r.onSessionExpired = callback
	}
}
