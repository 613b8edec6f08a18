package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// QueryInput holds parameters for the activity query and stats operations.
type QueryInput struct {
	EventType *domain.EventType
	UserID    *uuid.UUID
	CreatorID *uuid.UUID
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// Validate validates the query input and applies the default limit.
func (i *QueryInput) Validate() error {
	var errs []domain.FieldError

	if i.EventType != nil && !i.EventType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "event_type", Message: "unknown event type"})
	}
	if i.From != nil && i.To != nil && !i.From.Before(*i.To) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be before to"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	if i.Limit == 0 {
		i.Limit = defaultLimit
	}
	return nil
}

func (i *QueryInput) filter() domain.ActivityFilter {
	return domain.ActivityFilter{
		EventType: i.EventType,
		UserID:    i.UserID,
		CreatorID: i.CreatorID,
		From:      i.From,
		To:        i.To,
	}
}
