package spacepoint

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/schema"
	"github.com/spacepoint/spacepoint-go/session"
)

// AuthService owns the login flow: it exchanges credentials for a bearer
// token and records the returned identity in the session store.
type AuthService struct {
	rest  *client.Client
	store session.Store
}

// Login posts the credentials and, on success, records the session identity.
// The display name falls back to the username when the service returns none.
func (s *AuthService) Login(ctx context.Context, username, password string) (*schema.LoginResponse, error) {
	var out schema.LoginResponse
	err := s.rest.Post(ctx, "/auth/login", &schema.LoginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	auth := session.Auth{
		Token:    out.Token,
		Role:     out.Role,
		Username: out.Username,
		FullName: out.FullName,
	}
	if out.InstructorID != nil {
		auth.InstructorID = strconv.Itoa(*out.InstructorID)
	}
	if out.ID != nil {
		auth.UserID = strconv.Itoa(*out.ID)
	}
	if err := s.store.SetAuth(auth); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout discards the session. The token is not revoked server-side; the
// service treats it as expired on its own schedule.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.ClearAuth()
}

// PeekExpiry reports the expiry claim of a JWT-shaped token without
// verifying it, for display purposes only. Opaque tokens and tokens without
// an expiry claim yield a zero time.
func PeekExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
