package ideas

import (
	"encoding/json"
	"testing"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

func TestParseIdeas(t *testing.T) {
	t.Parallel()

	response := `Here are your ideas:
[
  {"title": "Beginner Series", "description": "A series for newcomers.", "ideaType": "VIDEO", "outline": ["intro", "tools"]},
  {"title": "Live Q&A", "description": "Monthly questions.", "ideaType": "LIVE_QA", "outline": []}
]`

	wire, err := parseIdeas(response)
	if err != nil {
		t.Fatalf("parseIdeas returned error: %v", err)
	}
	if len(wire) != 2 {
		t.Fatalf("got %d ideas, want 2", len(wire))
	}
	if wire[0].Title != "Beginner Series" {
		t.Errorf("title = %q", wire[0].Title)
	}
}

func TestParseIdeas_Unusable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"prose only", "I'm unable to suggest ideas right now."},
		{"invalid json", `[{"title": }]`},
		{"empty array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := parseIdeas(tt.input); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNormalizeIdea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		wire        ideaWire
		wantTitle   string
		wantType    domain.IdeaType
		wantOutline int
	}{
		{
			name:        "complete idea kept",
			wire:        ideaWire{Title: "Workshop", IdeaType: "mini_course", Outline: json.RawMessage(`["a","b"]`)},
			wantTitle:   "Workshop",
			wantType:    domain.IdeaTypeMiniCourse,
			wantOutline: 2,
		},
		{
			name:      "missing title",
			wire:      ideaWire{Title: "  ", IdeaType: "VIDEO"},
			wantTitle: "Untitled Idea",
			wantType:  domain.IdeaTypeVideo,
		},
		{
			name:      "unknown type falls back to video",
			wire:      ideaWire{Title: "X", IdeaType: "PODCAST"},
			wantTitle: "X",
			wantType:  domain.IdeaTypeVideo,
		},
		{
			name:      "non-array outline dropped",
			wire:      ideaWire{Title: "X", IdeaType: "VIDEO", Outline: json.RawMessage(`"step one"`)},
			wantTitle: "X",
			wantType:  domain.IdeaTypeVideo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			title, _, ideaType, outline := normalizeIdea(tt.wire)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if ideaType != tt.wantType {
				t.Errorf("ideaType = %s, want %s", ideaType, tt.wantType)
			}
			if outline == nil {
				t.Fatal("outline must never be nil")
			}
			if len(outline) != tt.wantOutline {
				t.Errorf("outline len = %d, want %d", len(outline), tt.wantOutline)
			}
		})
	}
}
