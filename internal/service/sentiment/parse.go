package sentiment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/llmjson"
)

// judgmentWire is the expected shape of one element in the model's
// classification response.
type judgmentWire struct {
	Sentiment string   `json:"sentiment"`
	Score     float64  `json:"score"`
	Keywords  []string `json:"keywords"`
}

// parseJudgments decodes a classification response into exactly want
// judgments. A response with the wrong element count is rejected so the
// caller falls back to neutral for the whole chunk instead of misaligning
// judgments with comments.
func parseJudgments(response string, want int) ([]domain.CommentJudgment, error) {
	raw, err := llmjson.ExtractArray(response)
	if err != nil {
		return nil, err
	}

	var wire []judgmentWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("decode judgments: %w", err)
	}
	if len(wire) != want {
		return nil, fmt.Errorf("expected %d judgments, got %d", want, len(wire))
	}

	judgments := make([]domain.CommentJudgment, len(wire))
	for i, w := range wire {
		j := domain.CommentJudgment{
			Sentiment: domain.Sentiment(strings.ToUpper(strings.TrimSpace(w.Sentiment))),
			Score:     clampScore(w.Score),
			Keywords:  w.Keywords,
		}
		if !j.Sentiment.IsValid() {
			j = domain.NeutralJudgment()
		}
		judgments[i] = j
	}
	return judgments, nil
}

// parseRequests decodes the feature-request response into at most max strings.
func parseRequests(response string, max int) ([]string, error) {
	raw, err := llmjson.ExtractArray(response)
	if err != nil {
		return nil, err
	}

	var requests []string
	if err := json.Unmarshal([]byte(raw), &requests); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}

	out := make([]string, 0, max)
	for _, r := range requests {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, r)
		if len(out) == max {
			break
		}
	}
	return out, nil
}

func clampScore(score float64) float64 {
	switch {
	case score < -1:
		return -1
	case score > 1:
		return 1
	default:
		return score
	}
}
