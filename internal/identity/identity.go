// Package identity defines the user records shared by the session and auth layers.
package identity

import (
	"errors"
	"fmt"
	"strings"
)

// Role identifies the kind of account a user holds.
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleCoach   Role = "coach"
)

// User is the identity record returned by the auth endpoint and persisted locally.
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	Name         string  `json:"name"`
	ProfileImage string  `json:"profileImage,omitempty"`
	Age          int     `json:"age,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Weight       float64 `json:"weight,omitempty"`
}

// ErrInvalidUser wraps validation failures.
var ErrInvalidUser = errors.New("invalid user record")

// Validate checks the fields every consumer relies on. Records coming out of
// the persistent store must pass this before being adopted into a session.
func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidUser)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: missing email", ErrInvalidUser)
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidUser)
	}
	switch u.Role {
	case RoleAthlete, RoleCoach:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidUser, u.Role)
	}
	return nil
}
