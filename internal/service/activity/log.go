package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

// Log appends one event to the activity log. Events are immutable once
// written; there is no update or delete path.
func (s *Service) Log(ctx context.Context, eventType domain.EventType, userID, creatorID *uuid.UUID, metadata map[string]any) error {
	if !eventType.IsValid() {
		return domain.NewValidationError("event_type", "unknown event type")
	}

	event := domain.ActivityEvent{
		ID:        uuid.New(),
		EventType: eventType,
		UserID:    userID,
		CreatorID: creatorID,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.events.Create(ctx, event); err != nil {
		return fmt.Errorf("activity.Log: %w", err)
	}

	s.log.DebugContext(ctx, "activity event recorded",
		slog.String("event_type", eventType.String()))
	return nil
}
