// Package schema declares the wire types of the SpacePoint Inventory API.
package schema

import "time"

// Roles the service recognizes. An instructor session additionally carries
// an instructor identity.
const (
	RoleAdmin      = "admin"
	RoleOperations = "operations"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// LoginRequest is the credential pair posted to /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the identity metadata recorded
// in the session store.
type LoginResponse struct {
	Token        string `json:"token"`
	Username     string `json:"username"`
	FullName     string `json:"full_name,omitempty"`
	Role         string `json:"role"`
	InstructorID *int   `json:"instructor_id,omitempty"`
	ID           *int   `json:"id,omitempty"`
}

// WorkshopInput is the writable part of a workshop.
type WorkshopInput struct {
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	WorkshopType        string    `json:"workshop_type"`
	Status              string    `json:"status"`
	Location            string    `json:"location,omitempty"`
	InstructorID        *int      `json:"instructor_id,omitempty"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	MaxParticipants     *int      `json:"max_participants,omitempty"`
	CurrentParticipants int       `json:"current_participants"`
	Requirements        string    `json:"requirements,omitempty"`
	Notes               string    `json:"notes,omitempty"`
}

// Workshop is a scheduled workshop as returned by the service.
type Workshop struct {
	ID int `json:"id"`
	WorkshopInput
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserInput is the writable part of a user account.
type UserInput struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// User is an account as returned by the service; passwords never travel back.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification is a per-user message.
type Notification struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	Type              string    `json:"type"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
	RelatedEntityID   *int      `json:"related_entity_id,omitempty"`
	RelatedEntityType *string   `json:"related_entity_type,omitempty"`
}

// CubesatStatistics aggregates fleet state for the dashboard.
type CubesatStatistics struct {
	Total      int `json:"total"`
	Working    int `json:"working"`
	Damaged    int `json:"damaged"`
	Repairing  int `json:"repairing"`
	Complete   int `json:"complete"`
	Incomplete int `json:"incomplete"`
}

// InstructorStatistics aggregates instructor counts for the dashboard.
type InstructorStatistics struct {
	Total int `json:"total"`
}

// DashboardStatistics is the aggregate served to privileged roles.
type DashboardStatistics struct {
	Cubesats    CubesatStatistics    `json:"cubesats"`
	Instructors InstructorStatistics `json:"instructors"`
}
