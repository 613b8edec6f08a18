package sentiment

import (
	"fmt"
	"strings"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// buildClassifyPrompt creates the per-chunk classification prompt.
func buildClassifyPrompt(comments []domain.RawComment) string {
	var b strings.Builder
	for i, c := range comments {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Text)
	}

	return fmt.Sprintf(`You are a sentiment analysis engine for audience comments.

Classify each of the following %d comments:

%s
Output ONLY a valid JSON array with exactly %d elements, one per comment in order, matching this schema:
[
  {"sentiment": "<POSITIVE|NEGATIVE|NEUTRAL>", "score": <number in [-1, 1]>, "keywords": ["<keyword>", "<keyword>"]}
]

Rules:
- score reflects intensity: strongly positive near 1, strongly negative near -1, neutral near 0
- provide 2-3 short lowercase keywords per comment
- output ONLY the JSON array, no markdown, no explanations`, len(comments), b.String(), len(comments))
}

// buildRequestsPrompt creates the feature-request extraction prompt.
func buildRequestsPrompt(texts []string, maxRequests int) string {
	var b strings.Builder
	for _, t := range texts {
		fmt.Fprintf(&b, "- %s\n", t)
	}

	return fmt.Sprintf(`You are analyzing audience comments for a content creator.

Comments:
%s
Identify what the audience is asking the creator for. Output ONLY a valid JSON array of at most %d short request strings, for example:
["more beginner tutorials", "longer live sessions"]

If no requests are present, output []. No markdown, no explanations.`, b.String(), maxRequests)
}
