package ideas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
	"github.com/ndvoronin/creatorpulse-backend/pkg/llmjson"
)

// untitledIdea is the fallback title for ideas the model left unnamed.
const untitledIdea = "Untitled Idea"

// ideaWire is the expected shape of one element in the model's response.
// Outline stays raw so a non-array value degrades to empty instead of
// failing the whole generation.
type ideaWire struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	IdeaType    string          `json:"ideaType"`
	Outline     json.RawMessage `json:"outline"`
}

// parseIdeas decodes a generation response. Unlike sentiment parsing there
// is no fallback here: an unusable response is a hard error.
func parseIdeas(response string) ([]ideaWire, error) {
	raw, err := llmjson.ExtractArray(response)
	if err != nil {
		return nil, fmt.Errorf("could not parse AI response: %w", err)
	}

	var wire []ideaWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("could not parse AI response: %w", err)
	}
	if len(wire) == 0 {
		return nil, fmt.Errorf("could not parse AI response: empty idea list")
	}
	return wire, nil
}

// normalizeIdea applies field-level fallbacks to one parsed idea.
func normalizeIdea(w ideaWire) (title, description string, ideaType domain.IdeaType, outline []string) {
	title = strings.TrimSpace(w.Title)
	if title == "" {
		title = untitledIdea
	}

	ideaType = domain.IdeaType(strings.ToUpper(strings.TrimSpace(w.IdeaType)))
	if !ideaType.IsValid() {
		ideaType = domain.IdeaTypeVideo
	}

	outline = []string{}
	if len(w.Outline) > 0 {
		var steps []string
		if err := json.Unmarshal(w.Outline, &steps); err == nil {
			outline = steps
		}
	}

	return title, strings.TrimSpace(w.Description), ideaType, outline
}
