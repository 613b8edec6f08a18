package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawComment is one audience comment inside an imported batch.
// Tier is set only for platform exports that carry subscriber tiers.
type RawComment struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Tier      *Tier     `json:"tier,omitempty"`
}

// CommentBatch is an immutable record of imported audience comments.
// The comment payload never changes after import; only Status moves as the
// batch progresses through the analysis pipeline.
type CommentBatch struct {
	ID                  uuid.UUID
	CreatorID           uuid.UUID
	Source              BatchSource
	RawComments         []RawComment
	Status              BatchStatus
	LinkedContentItemID *uuid.UUID
	ImportedAt          time.Time
}

// CommentCount returns the number of comments in the batch.
func (b *CommentBatch) CommentCount() int {
	return len(b.RawComments)
}
