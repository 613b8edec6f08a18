package domain

import (
	"time"

	"github.com/google/uuid"
)

// TierTargetAll marks an idea aimed at the whole audience rather than a
// single subscription tier.
const TierTargetAll = "ALL"

// IdeaSuggestion is one AI-generated content idea. Ideas are created in
// batches of three from a single generation call and share SourceSnapshotID.
type IdeaSuggestion struct {
	ID               uuid.UUID
	CreatorID        uuid.UUID
	SourceSnapshotID uuid.UUID
	TierTarget       string // a Tier value or TierTargetAll
	IdeaType         IdeaType
	Title            string
	Description      string
	Outline          []string
	Status           IdeaStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidTierTarget reports whether s is a known tier or TierTargetAll.
func ValidTierTarget(s string) bool {
	return s == TierTargetAll || Tier(s).IsValid()
}
