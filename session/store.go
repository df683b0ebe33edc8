package session

// Storage keys owned by this package. No other keys exist; external code must
// not assume any beyond these six.
const (
	keyToken        = "token"
	keyRole         = "role"
	keyUsername     = "username"
	keyFullName     = "full_name"
	keyInstructorID = "instructor_id"
	keyUserID       = "user_id"
)

// Keys enumerates every storage key a Store owns.
func Keys() []string {
	return []string{keyToken, keyRole, keyUsername, keyFullName, keyInstructorID, keyUserID}
}

// Auth carries the identity fields captured by a successful login. Token,
// Role and Username are required; the rest are presentation metadata.
type Auth struct {
	Token        string
	Role         string
	Username     string
	FullName     string
	InstructorID string
	UserID       string
}

// Store is a pluggable persistence layer for the current session identity.
// The in-memory default is fine for a single process; swap in the file or
// Redis variants when the session has to outlive it.
//
// A present token is the one and only signal that the session is
// authenticated; every other field is display metadata with no effect on
// request authorization.
type Store interface {
	Token() string
	Role() string
	Username() string
	// FullName returns the display name, falling back to the username when
	// no full name was recorded.
	FullName() string
	InstructorID() string
	UserID() string

	// Authenticated reports whether a token is present.
	Authenticated() bool

	// SetAuth records the supplied identity. FullName defaults to Username
	// when omitted. InstructorID and UserID are written only when non-empty;
	// an omitted value never clears a previously stored one.
	SetAuth(auth Auth) error

	// ClearAuth removes every field this store owns. Clearing an empty store
	// is a no-op.
	ClearAuth() error
}

// snapshot is the serialized form shared by the file and Redis stores.
type snapshot struct {
	Token        string `json:"token,omitempty"`
	Role         string `json:"role,omitempty"`
	Username     string `json:"username,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	InstructorID string `json:"instructor_id,omitempty"`
	UserID       string `json:"user_id,omitempty"`
}

// merge applies SetAuth semantics to an existing snapshot.
func (s *snapshot) merge(auth Auth) {
	s.Token = auth.Token
	s.Role = auth.Role
	s.Username = auth.Username
	if auth.FullName != "" {
		s.FullName = auth.FullName
	} else {
		s.FullName = auth.Username
	}
	if auth.InstructorID != "" {
		s.InstructorID = auth.InstructorID
	}
	if auth.UserID != "" {
		s.UserID = auth.UserID
	}
}
