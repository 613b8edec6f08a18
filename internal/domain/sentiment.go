package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommentJudgment is the model's verdict on a single comment: a
// classification, a score in [-1, 1], and a few keywords.
type CommentJudgment struct {
	Sentiment Sentiment `json:"sentiment"`
	Score     float64   `json:"score"`
	Keywords  []string  `json:"keywords"`
}

// NeutralJudgment is the fallback verdict applied when a chunk times out
// or the model response cannot be parsed.
func NeutralJudgment() CommentJudgment {
	return CommentJudgment{Sentiment: SentimentNeutral, Score: 0}
}

// TierSentiment is the per-tier slice of a snapshot, present when the
// underlying comments carry subscriber tiers.
type TierSentiment struct {
	Tier          Tier    `json:"tier"`
	Score         float64 `json:"score"`
	PositiveCount int     `json:"positiveCount"`
	NegativeCount int     `json:"negativeCount"`
}

// SentimentSnapshot is the aggregated result of one analysis run over one
// comment batch. Snapshots accumulate over time; a batch may be analyzed
// more than once and each run produces a new snapshot.
type SentimentSnapshot struct {
	ID                    uuid.UUID
	CreatorID             uuid.UUID
	CommentBatchID        uuid.UUID
	TimeRangeStart        time.Time
	TimeRangeEnd          time.Time
	OverallSentimentScore float64
	PositiveCount         int
	NegativeCount         int
	NeutralCount          int
	TopKeywords           []string
	TopRequests           []string
	ByTier                []TierSentiment
	CreatedAt             time.Time
}

// TotalCount returns the number of classified comments in the snapshot.
func (s *SentimentSnapshot) TotalCount() int {
	return s.PositiveCount + s.NegativeCount + s.NeutralCount
}
