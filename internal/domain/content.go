package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentItem is a piece of creator content, optionally gated behind a
// subscription tier. RequiredTier is only meaningful when IsPremium is true;
// a premium item with no RequiredTier is open to any subscriber tier.
type ContentItem struct {
	ID           uuid.UUID
	CreatorID    uuid.UUID
	Title        string
	Type         ContentType
	IsPremium    bool
	RequiredTier *Tier
	Status       ContentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	PublishedAt  *time.Time
}

// IsPublished reports whether the item is visible outside its owner.
func (c *ContentItem) IsPublished() bool {
	return c.Status == ContentStatusPublished
}
