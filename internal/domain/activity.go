package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEvent is one append-only entry in the audit log. Events are never
// updated or deleted.
type ActivityEvent struct {
	ID        uuid.UUID
	EventType EventType
	UserID    *uuid.UUID
	CreatorID *uuid.UUID
	Metadata  map[string]any
	CreatedAt time.Time
}

// ActivityFilter narrows activity queries. Zero values mean "no filter".
type ActivityFilter struct {
	EventType *EventType
	UserID    *uuid.UUID
	CreatorID *uuid.UUID
	From      *time.Time
	To        *time.Time
}

// EventTypeCount is one row of the by-type aggregation.
type EventTypeCount struct {
	EventType EventType
	Count     int
}

// DayCount is one row of the per-calendar-day timeline.
type DayCount struct {
	Day   time.Time
	Count int
}

// ActivityStats aggregates the filtered event set by type and by day.
// Computed on demand; there are no pre-aggregated rollups.
type ActivityStats struct {
	Total       int
	ByEventType []EventTypeCount
	Timeline    []DayCount
}
