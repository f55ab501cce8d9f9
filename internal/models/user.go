package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the declared type of a user. It selects the landing view after
// login and the bills a user may see.
type Role string

const (
	RoleEmployee Role = "Employee"
	RoleAdmin    Role = "Admin"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// SessionConnected is the only status a persisted session carries.
const SessionConnected = "connected"

// Credentials are entered on the login screen.
type Credentials struct {
	Type     Role   `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the record persisted under the "user" key after login.
// Field order is part of the persisted format.
type Session struct {
	Type     Role   `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

// NewSession builds the connected session for role. The role argument wins
// over creds.Type.
func NewSession(role Role, creds Credentials) Session {
	return Session{
		Type:     role,
		Email:    creds.Email,
		Password: creds.Password,
		Status:   SessionConnected,
	}
}

// User represents a registered account on the backend.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Type is Employee or Admin.
	Type Role

	// Name is the display name. Defaults to the local part of the email.
	Name string

	// Email is unique and used for login.
	Email string

	// PasswordHash is the bcrypt hash of the password. Never exposed.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a fresh ID and creation time.
func NewUser(role Role, name, email, passwordHash string) *User {
	if name == "" {
		name = NameFromEmail(email)
	}
	return &User{
		ID:           uuid.New().String(),
		Type:         role,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// NameFromEmail returns the part of email before the "@".
func NameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
