package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreatorProfile is the public face of a user who publishes content.
// Niche feeds the idea-generation prompt.
type CreatorProfile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DisplayName string
	Niche       string
	Bio         *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubscriberProfile records a user's paid subscription to one creator.
// One row per (user, creator) pair; tier changes update the row in place.
type SubscriberProfile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatorID uuid.UUID
	Tier      Tier
	JoinedAt  time.Time
	UpdatedAt time.Time
}
