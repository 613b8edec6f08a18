package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated platform user. A user may additionally
// own a CreatorProfile and hold SubscriberProfiles with other creators.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
