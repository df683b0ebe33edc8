// Package transport adapts the session credential to plain net/http plumbing:
// a RoundTripper that decorates every request with the bearer header, and an
// oauth2.TokenSource view of the session store for oauth2-aware stacks.
package transport

import (
	"net/http"

	"github.com/spacepoint/spacepoint-go/session"
)

// RoundTripper injects the session bearer token into outgoing requests and
// reacts to 401 by clearing the session, for callers that want a plain
// *http.Client instead of the request client.
type RoundTripper struct {
	store            session.Store
	transport        http.RoundTripper
	onSessionExpired func()
}

// New creates a RoundTripper.
func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     session.NewMemoryStore(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret, nil
}

// Store exposes the session store backing this transport.
func (r *RoundTripper) Store() session.Store {
	return r.store
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	next := clone(req)
	if token := r.store.Token(); token != "" {
		next.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := r.transport.RoundTrip(next)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		_ = r.store.ClearAuth()
		if r.onSessionExpired != nil {
			r.onSessionExpired()
		}
	}
	return resp, nil
}
