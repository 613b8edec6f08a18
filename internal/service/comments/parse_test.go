package comments

import (
	"errors"
	"testing"
	"time"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

var parseNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestParseRawComments_ManualPaste(t *testing.T) {
	t.Parallel()

	payload := "a\nb\n\n  \nc\n"
	comments, err := ParseRawComments(domain.BatchSourceManualPaste, payload, parseNow)
	if err != nil {
		t.Fatalf("ParseRawComments returned error: %v", err)
	}

	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	for i, want := range []string{"a", "b", "c"} {
		if comments[i].Text != want {
			t.Errorf("comment[%d]: expected text %q, got %q", i, want, comments[i].Text)
		}
		if comments[i].Author != "Anonymous" {
			t.Errorf("comment[%d]: expected author Anonymous, got %q", i, comments[i].Author)
		}
		if !comments[i].Timestamp.Equal(parseNow) {
			t.Errorf("comment[%d]: expected import-time timestamp", i)
		}
	}
}

func TestParseRawComments_JSON(t *testing.T) {
	t.Parallel()

	payload := `[
		{"text": "love the new series", "author": "sam", "tier": "T2"},
		{"text": "more live sessions please", "timestamp": "2026-01-15T10:00:00Z"},
		{"text": "   "},
		{"text": "great work", "tier": "T9"}
	]`

	comments, err := ParseRawComments(domain.BatchSourcePlatformExport, payload, parseNow)
	if err != nil {
		t.Fatalf("ParseRawComments returned error: %v", err)
	}

	if len(comments) != 3 {
		t.Fatalf("expected 3 comments (blank dropped), got %d", len(comments))
	}

	if comments[0].Author != "sam" {
		t.Errorf("expected author sam, got %q", comments[0].Author)
	}
	if comments[0].Tier == nil || *comments[0].Tier != domain.TierT2 {
		t.Errorf("expected tier T2, got %v", comments[0].Tier)
	}

	if comments[1].Author != "Anonymous" {
		t.Errorf("expected default author, got %q", comments[1].Author)
	}
	want := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	if !comments[1].Timestamp.Equal(want) {
		t.Errorf("expected provided timestamp, got %v", comments[1].Timestamp)
	}

	// Invalid tier values are dropped, not rejected.
	if comments[2].Tier != nil {
		t.Errorf("expected invalid tier dropped, got %v", comments[2].Tier)
	}
}

func TestParseRawComments_JSON_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseRawComments(domain.BatchSourcePlatformExport, "not json", parseNow)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestParseRawComments_CSV(t *testing.T) {
	t.Parallel()

	payload := "\"needs better audio\",kim\nloving it\n\"too long, did not finish\",\n"
	comments, err := ParseRawComments(domain.BatchSourceCSVUpload, payload, parseNow)
	if err != nil {
		t.Fatalf("ParseRawComments returned error: %v", err)
	}

	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}

	if comments[0].Text != "needs better audio" || comments[0].Author != "kim" {
		t.Errorf("unexpected first comment: %+v", comments[0])
	}
	if comments[1].Author != "Anonymous" {
		t.Errorf("expected Anonymous for single-column row, got %q", comments[1].Author)
	}
	if comments[2].Text != "too long, did not finish" || comments[2].Author != "Anonymous" {
		t.Errorf("unexpected third comment: %+v", comments[2])
	}
}

func TestParseRawComments_UnknownSource(t *testing.T) {
	t.Parallel()

	_, err := ParseRawComments(domain.BatchSource("FTP"), "x", parseNow)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
