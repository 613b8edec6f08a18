package comments

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// anonymousAuthor is the author assigned to comments that carry none.
const anonymousAuthor = "Anonymous"

// jsonComment is the wire shape of one platform-export entry.
type jsonComment struct {
	Author    string       `json:"author"`
	Text      string       `json:"text"`
	Timestamp *time.Time   `json:"timestamp"`
	Tier      *domain.Tier `json:"tier"`
}

// ParseRawComments decodes a payload in the encoding implied by source into
// normalized comments: missing authors become "Anonymous", missing
// timestamps default to now. Blank entries are dropped.
func ParseRawComments(source domain.BatchSource, payload string, now time.Time) ([]domain.RawComment, error) {
	switch source {
	case domain.BatchSourcePlatformExport:
		return parseJSON(payload, now)
	case domain.BatchSourceCSVUpload:
		return parseCSV(payload, now)
	case domain.BatchSourceManualPaste:
		return parseLines(payload, now), nil
	default:
		return nil, domain.NewValidationError("source", "unknown batch source")
	}
}

// parseJSON decodes a JSON array of {text, author?, timestamp?, tier?} objects.
func parseJSON(payload string, now time.Time) ([]domain.RawComment, error) {
	var entries []jsonComment
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, domain.NewValidationError("payload", fmt.Sprintf("invalid JSON array: %v", err))
	}

	comments := make([]domain.RawComment, 0, len(entries))
	for _, e := range entries {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}

		c := domain.RawComment{
			Author:    strings.TrimSpace(e.Author),
			Text:      text,
			Timestamp: now,
		}
		if c.Author == "" {
			c.Author = anonymousAuthor
		}
		if e.Timestamp != nil {
			c.Timestamp = *e.Timestamp
		}
		if e.Tier != nil && e.Tier.IsValid() {
			c.Tier = e.Tier
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// parseCSV decodes rows with comment text in the first column and an
// optional author in the second. Extra columns are ignored.
func parseCSV(payload string, now time.Time) ([]domain.RawComment, error) {
	reader := csv.NewReader(strings.NewReader(payload))
	reader.FieldsPerRecord = -1 // rows may have 1 or 2 columns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.NewValidationError("payload", fmt.Sprintf("invalid CSV: %v", err))
	}

	comments := make([]domain.RawComment, 0, len(records))
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		text := strings.TrimSpace(record[0])
		if text == "" {
			continue
		}

		author := anonymousAuthor
		if len(record) > 1 {
			if a := strings.TrimSpace(record[1]); a != "" {
				author = a
			}
		}
		comments = append(comments, domain.RawComment{
			Author:    author,
			Text:      text,
			Timestamp: now,
		})
	}
	return comments, nil
}

// parseLines treats each non-blank line as one anonymous comment.
func parseLines(payload string, now time.Time) []domain.RawComment {
	lines := strings.Split(payload, "\n")
	comments := make([]domain.RawComment, 0, len(lines))
	for _, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		comments = append(comments, domain.RawComment{
			Author:    anonymousAuthor,
			Text:      text,
			Timestamp: now,
		})
	}
	return comments
}
