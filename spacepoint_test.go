package spacepoint

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacepoint/spacepoint-go/client"
	"github.com/spacepoint/spacepoint-go/schema"
)

// newFakeService spins up a minimal stand-in for the inventory API: a login
// endpoint plus a token check on everything else.
func newFakeService(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req schema.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			http.Error(w, `{"detail":"Invalid username or password"}`, http.StatusBadRequest)
			return
		}
		instructorID := 7
		_ = json.NewEncoder(w).Encode(&schema.LoginResponse{
			Token:        "abc",
			Username:     req.Username,
			Role:         schema.RoleInstructor,
			InstructorID: &instructorID,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestLoginRecordsSession(t *testing.T) {
	server := newFakeService(t, http.NewServeMux())

	sp := New(WithBaseURL(server.URL))
	login, err := sp.Auth().Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", login.Token)

	store := sp.Session()
	assert.True(t, store.Authenticated())
	assert.Equal(t, "abc", store.Token())
	assert.Equal(t, "instructor", store.Role())
	assert.Equal(t, "7", store.InstructorID())
	// no full name in the response, display name falls back to the username
	assert.Equal(t, "alice", store.FullName())
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	server := newFakeService(t, http.NewServeMux())

	sp := New(WithBaseURL(server.URL))
	_, err := sp.Auth().Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid username or password", err.Error())
	assert.False(t, sp.Session().Authenticated())
}

func TestAuthenticatedDispatchCarriesToken(t *testing.T) {
	mux := http.NewServeMux()
	var gotAuth string
	mux.HandleFunc("GET /courses", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"id":1}]`))
	})
	server := newFakeService(t, mux)

	sp := New(WithBaseURL(server.URL))
	_, err := sp.Auth().Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	result, err := sp.Rest().Dispatch(context.Background(), "/courses")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.JSONEq(t, `[{"id":1}]`, string(result.Data))
}

func TestSessionExpiryClearsAndNavigates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /courses", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid or expired token"}`, http.StatusUnauthorized)
	})
	server := newFakeService(t, mux)

	var navigated bool
	sp := New(WithBaseURL(server.URL), WithOnSessionExpired(func() { navigated = true }))
	_, err := sp.Auth().Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	_, err = sp.Rest().Dispatch(context.Background(), "/courses")
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrUnauthorized))
	assert.False(t, sp.Session().Authenticated())
	assert.Equal(t, "", sp.Session().InstructorID())
	assert.True(t, navigated)
}

func TestLogout(t *testing.T) {
	server := newFakeService(t, http.NewServeMux())

	sp := New(WithBaseURL(server.URL))
	_, err := sp.Auth().Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	require.NoError(t, sp.Auth().Logout(context.Background()))
	assert.False(t, sp.Session().Authenticated())
	// logging out twice is fine
	require.NoError(t, sp.Auth().Logout(context.Background()))
}

func TestPeekExpiry(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	assert.True(t, PeekExpiry(signed).Equal(expiry))
	// opaque tokens degrade to zero time, never an error
	assert.True(t, PeekExpiry("8f14e45f-ceea-467f-a").IsZero())
	assert.True(t, PeekExpiry("").IsZero())
}
