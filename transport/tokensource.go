package transport

import (
	"errors"

	"golang.org/x/oauth2"

	"github.com/spacepoint/spacepoint-go/session"
)

// ErrNoToken is returned by the token source when the session holds no
// credential.
var ErrNoToken = errors.New("no session token")

// TokenSource adapts a session store to oauth2.TokenSource so the bearer
// credential can feed oauth2-aware HTTP stacks. The token is opaque and
// carries no expiry; it is assumed valid until the server says otherwise.
func TokenSource(store session.Store) oauth2.TokenSource {
	return &storeTokenSource{store: store}
}

type storeTokenSource struct {
	store session.Store
}

func (s *storeTokenSource) Token() (*oauth2.Token, error) {
	token := s.store.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}
