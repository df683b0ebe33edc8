package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	assert.False(t, store.Authenticated())

	err := store.SetAuth(Auth{
		Token:        "abc",
		Role:         "instructor",
		Username:     "alice",
		InstructorID: "7",
	})
	require.NoError(t, err)

	assert.True(t, store.Authenticated())
	assert.Equal(t, "abc", store.Token())
	assert.Equal(t, "instructor", store.Role())
	assert.Equal(t, "alice", store.Username())
	assert.Equal(t, "7", store.InstructorID())
	assert.Equal(t, "", store.UserID())
	// no full name recorded, falls back to username
	assert.Equal(t, "alice", store.FullName())
}

func TestMemoryStoreFullName(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SetAuth(Auth{
		Token:    "abc",
		Role:     "student",
		Username: "bob",
		FullName: "Bob Smith",
	}))
	assert.Equal(t, "Bob Smith", store.FullName())
}

func TestMemoryStoreOptionalFieldsNotOverwritten(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SetAuth(Auth{
		Token:        "t1",
		Role:         "instructor",
		Username:     "alice",
		InstructorID: "7",
		UserID:       "42",
	}))
	// a later write without the optional fields keeps the stored values
	require.NoError(t, store.SetAuth(Auth{
		Token:    "t2",
		Role:     "instructor",
		Username: "alice",
	}))
	assert.Equal(t, "t2", store.Token())
	assert.Equal(t, "7", store.InstructorID())
	assert.Equal(t, "42", store.UserID())
}

func TestMemoryStoreClearAuthIdempotent(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SetAuth(Auth{Token: "abc", Role: "student", Username: "bob"}))
	require.NoError(t, store.ClearAuth())
	assert.False(t, store.Authenticated())
	assert.Equal(t, "", store.Username())
	assert.Equal(t, "", store.FullName())

	// clearing an already empty store is a no-op
	require.NoError(t, store.ClearAuth())
	assert.False(t, store.Authenticated())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"token", "role", "username", "full_name", "instructor_id", "user_id"}, Keys())
}

func TestFileStorePersistence(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "session.json")

	store := NewFileStore(URL)
	require.NoError(t, store.SetAuth(Auth{
		Token:    "abc",
		Role:     "instructor",
		Username: "alice",
		UserID:   "42",
	}))

	// a fresh store over the same URL sees the persisted session
	reloaded := NewFileStore(URL)
	assert.True(t, reloaded.Authenticated())
	assert.Equal(t, "abc", reloaded.Token())
	assert.Equal(t, "instructor", reloaded.Role())
	assert.Equal(t, "alice", reloaded.FullName())
	assert.Equal(t, "42", reloaded.UserID())
}

func TestFileStoreClearAuth(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "session.json")

	store := NewFileStore(URL)
	require.NoError(t, store.SetAuth(Auth{Token: "abc", Role: "student", Username: "bob"}))
	require.NoError(t, store.ClearAuth())
	require.NoError(t, store.ClearAuth())

	reloaded := NewFileStore(URL)
	assert.False(t, reloaded.Authenticated())
}

func TestFileStoreMissingSnapshot(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	assert.False(t, store.Authenticated())
	assert.Equal(t, "", store.Token())
}
