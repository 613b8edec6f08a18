package sentiment

import (
	"sort"
	"strings"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// aggregate folds per-comment judgments into snapshot-level counters.
// judgments and comments are index-aligned.
func aggregate(comments []domain.RawComment, judgments []domain.CommentJudgment, topKeywords int) domain.SentimentSnapshot {
	var snap domain.SentimentSnapshot

	sum := 0.0
	for _, j := range judgments {
		switch j.Sentiment {
		case domain.SentimentPositive:
			snap.PositiveCount++
		case domain.SentimentNegative:
			snap.NegativeCount++
		default:
			snap.NeutralCount++
		}
		sum += j.Score
	}

	if len(judgments) > 0 {
		snap.OverallSentimentScore = sum / float64(len(judgments))
	}

	snap.TopKeywords = topNKeywords(judgments, topKeywords)
	snap.ByTier = aggregateByTier(comments, judgments)

	return snap
}

// topNKeywords returns the n most frequent keywords across all judgments,
// case-folded, ties broken by first-seen order.
func topNKeywords(judgments []domain.CommentJudgment, n int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, j := range judgments {
		for _, kw := range j.Keywords {
			folded := strings.ToLower(strings.TrimSpace(kw))
			if folded == "" {
				continue
			}
			if _, seen := counts[folded]; !seen {
				firstSeen[folded] = order
				order++
			}
			counts[folded]++
		}
	}

	keywords := make([]string, 0, len(counts))
	for kw := range counts {
		keywords = append(keywords, kw)
	}
	sort.SliceStable(keywords, func(a, b int) bool {
		if counts[keywords[a]] != counts[keywords[b]] {
			return counts[keywords[a]] > counts[keywords[b]]
		}
		return firstSeen[keywords[a]] < firstSeen[keywords[b]]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

// aggregateByTier produces the per-tier slice when the underlying comments
// carry subscriber tiers; returns nil otherwise.
func aggregateByTier(comments []domain.RawComment, judgments []domain.CommentJudgment) []domain.TierSentiment {
	type bucket struct {
		sum      float64
		count    int
		positive int
		negative int
	}
	buckets := make(map[domain.Tier]*bucket)

	for i, c := range comments {
		if c.Tier == nil || i >= len(judgments) {
			continue
		}
		b, ok := buckets[*c.Tier]
		if !ok {
			b = &bucket{}
			buckets[*c.Tier] = b
		}
		j := judgments[i]
		b.sum += j.Score
		b.count++
		switch j.Sentiment {
		case domain.SentimentPositive:
			b.positive++
		case domain.SentimentNegative:
			b.negative++
		}
	}

	if len(buckets) == 0 {
		return nil
	}

	result := make([]domain.TierSentiment, 0, len(buckets))
	for _, tier := range []domain.Tier{domain.TierT1, domain.TierT2, domain.TierT3} {
		b, ok := buckets[tier]
		if !ok {
			continue
		}
		result = append(result, domain.TierSentiment{
			Tier:          tier,
			Score:         b.sum / float64(b.count),
			PositiveCount: b.positive,
			NegativeCount: b.negative,
		})
	}
	return result
}

// timeRange returns the earliest and latest comment timestamps.
func timeRange(comments []domain.RawComment) (start, end domain.RawComment) {
	start, end = comments[0], comments[0]
	for _, c := range comments[1:] {
		if c.Timestamp.Before(start.Timestamp) {
			start = c
		}
		if c.Timestamp.After(end.Timestamp) {
			end = c
		}
	}
	return start, end
}
