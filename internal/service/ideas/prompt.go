package ideas

import (
	"fmt"
	"strings"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// buildPrompt creates the single generation prompt from a snapshot, the
// creator's niche and the target tier.
func buildPrompt(snap domain.SentimentSnapshot, niche, tierTarget string, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a content strategist for a creator in the %q niche.\n\n", niche)
	fmt.Fprintf(&b, "Audience sentiment summary:\n")
	fmt.Fprintf(&b, "- %d positive, %d negative, %d neutral comments (overall score %.2f)\n",
		snap.PositiveCount, snap.NegativeCount, snap.NeutralCount, snap.OverallSentimentScore)
	if len(snap.TopKeywords) > 0 {
		fmt.Fprintf(&b, "- recurring topics: %s\n", strings.Join(snap.TopKeywords, ", "))
	}
	if len(snap.TopRequests) > 0 {
		fmt.Fprintf(&b, "- explicit audience requests: %s\n", strings.Join(snap.TopRequests, "; "))
	}

	audience := "the whole audience"
	if tierTarget != domain.TierTargetAll {
		audience = fmt.Sprintf("subscribers on tier %s", tierTarget)
	}

	fmt.Fprintf(&b, `
Propose exactly %d content ideas for %s.

Output ONLY a valid JSON array with exactly %d elements matching this schema:
[
  {
    "title": "<short idea title>",
    "description": "<2-3 sentence pitch>",
    "ideaType": "<VIDEO|MINI_COURSE|LIVE_QA|COMMUNITY_CHALLENGE>",
    "outline": ["<step or segment>", "<step or segment>"]
  }
]

No markdown, no explanations.`, count, audience, count)

	return b.String()
}
