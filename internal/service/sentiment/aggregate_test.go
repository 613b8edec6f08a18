package sentiment

import (
	"math"
	"testing"
	"time"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

func tierPtr(t domain.Tier) *domain.Tier { return &t }

func TestAggregate_Counts(t *testing.T) {
	t.Parallel()

	comments := makeComments(4)
	judgments := []domain.CommentJudgment{
		{Sentiment: domain.SentimentPositive, Score: 1},
		{Sentiment: domain.SentimentPositive, Score: 0.5},
		{Sentiment: domain.SentimentNegative, Score: -0.5},
		{Sentiment: domain.SentimentNeutral, Score: 0},
	}

	snap := aggregate(comments, judgments, 10)

	if snap.PositiveCount != 2 || snap.NegativeCount != 1 || snap.NeutralCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1",
			snap.PositiveCount, snap.NegativeCount, snap.NeutralCount)
	}
	if math.Abs(snap.OverallSentimentScore-0.25) > 1e-9 {
		t.Errorf("score = %v, want 0.25", snap.OverallSentimentScore)
	}
	if snap.ByTier != nil {
		t.Errorf("ByTier = %v, want nil without tier info", snap.ByTier)
	}
}

func TestTopNKeywords(t *testing.T) {
	t.Parallel()

	judgments := []domain.CommentJudgment{
		{Keywords: []string{"Audio", "editing"}},
		{Keywords: []string{"audio", "pacing"}},
		{Keywords: []string{"editing", "audio", ""}},
	}

	got := topNKeywords(judgments, 2)

	want := []string{"audio", "editing"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keywords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTopNKeywords_TieBreaksByFirstSeen(t *testing.T) {
	t.Parallel()

	judgments := []domain.CommentJudgment{
		{Keywords: []string{"zebra", "apple"}},
		{Keywords: []string{"zebra", "apple"}},
	}

	got := topNKeywords(judgments, 2)
	if got[0] != "zebra" || got[1] != "apple" {
		t.Errorf("got %v, want first-seen order [zebra apple]", got)
	}
}

func TestAggregateByTier(t *testing.T) {
	t.Parallel()

	comments := []domain.RawComment{
		{Text: "a", Tier: tierPtr(domain.TierT1)},
		{Text: "b", Tier: tierPtr(domain.TierT3)},
		{Text: "c", Tier: tierPtr(domain.TierT1)},
		{Text: "d"}, // untiered, excluded from breakdown
	}
	judgments := []domain.CommentJudgment{
		{Sentiment: domain.SentimentPositive, Score: 0.8},
		{Sentiment: domain.SentimentNegative, Score: -0.4},
		{Sentiment: domain.SentimentNeutral, Score: 0},
		{Sentiment: domain.SentimentPositive, Score: 1},
	}

	got := aggregateByTier(comments, judgments)

	if len(got) != 2 {
		t.Fatalf("got %d tiers, want 2", len(got))
	}
	if got[0].Tier != domain.TierT1 || got[1].Tier != domain.TierT3 {
		t.Fatalf("tier order = %s, %s, want T1, T3", got[0].Tier, got[1].Tier)
	}
	if math.Abs(got[0].Score-0.4) > 1e-9 {
		t.Errorf("T1 score = %v, want 0.4", got[0].Score)
	}
	if got[0].PositiveCount != 1 || got[0].NegativeCount != 0 {
		t.Errorf("T1 counts = %d/%d, want 1/0", got[0].PositiveCount, got[0].NegativeCount)
	}
	if got[1].NegativeCount != 1 {
		t.Errorf("T3 negative = %d, want 1", got[1].NegativeCount)
	}
}

func TestTimeRange(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	comments := []domain.RawComment{
		{Text: "mid", Timestamp: base.Add(time.Hour)},
		{Text: "last", Timestamp: base.Add(48 * time.Hour)},
		{Text: "first", Timestamp: base},
	}

	start, end := timeRange(comments)
	if start.Text != "first" || end.Text != "last" {
		t.Errorf("range = %q..%q, want first..last", start.Text, end.Text)
	}
}
