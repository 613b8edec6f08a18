// Package activity implements the append-only activity log repository
// using PostgreSQL. Rows are only ever inserted; statistics are computed
// with GROUP BY at query time.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndvoronin/creatorpulse-backend/internal/adapter/postgres"
	"github.com/ndvoronin/creatorpulse-backend/internal/domain"
)

const table = "activity_events"

var columns = []string{
	"id", "event_type", "user_id", "creator_id", "metadata", "created_at",
}

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one event to the log.
func (r *Repo) Create(ctx context.Context, e domain.ActivityEvent) (domain.ActivityEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	meta, err := json.Marshal(e.Metadata)
	if err != nil {
		return domain.ActivityEvent{}, fmt.Errorf("activity marshal metadata: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.EventType, e.UserID, e.CreatorID, meta, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ActivityEvent{}, fmt.Errorf("build insert activity: %w", err)
	}

	row, err := scanEvent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.ActivityEvent{}, postgres.MapError(err, "activity_event", e.ID)
	}
	return row, nil
}

// Query returns the filtered events in reverse chronological order plus the
// total number of matches.
func (r *Repo) Query(ctx context.Context, f domain.ActivityFilter, limit, offset int) ([]domain.ActivityEvent, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := applyFilter(postgres.Builder().Select("COUNT(*)").From(table), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count activity: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activity: %w", err)
	}

	sql, args, err := applyFilter(postgres.Builder().Select(columns...).From(table), f).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list activity: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var events []domain.ActivityEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan activity: %w", err)
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

// Stats aggregates the filtered event set by event type and by calendar
// day (UTC).
func (r *Repo) Stats(ctx context.Context, f domain.ActivityFilter) (domain.ActivityStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var stats domain.ActivityStats

	countSQL, countArgs, err := applyFilter(postgres.Builder().Select("COUNT(*)").From(table), f).ToSql()
	if err != nil {
		return stats, fmt.Errorf("build count activity: %w", err)
	}
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&stats.Total); err != nil {
		return stats, fmt.Errorf("count activity: %w", err)
	}

	byTypeSQL, byTypeArgs, err := applyFilter(
		postgres.Builder().Select("event_type", "COUNT(*)").From(table), f).
		GroupBy("event_type").
		OrderBy("COUNT(*) DESC", "event_type ASC").
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("build activity by type: %w", err)
	}

	rows, err := q.Query(ctx, byTypeSQL, byTypeArgs...)
	if err != nil {
		return stats, fmt.Errorf("activity by type: %w", err)
	}
	for rows.Next() {
		var c domain.EventTypeCount
		if err := rows.Scan(&c.EventType, &c.Count); err != nil {
			rows.Close()
			return stats, fmt.Errorf("scan activity by type: %w", err)
		}
		stats.ByEventType = append(stats.ByEventType, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return stats, err
	}

	timelineSQL, timelineArgs, err := applyFilter(
		postgres.Builder().
			Select("date_trunc('day', created_at AT TIME ZONE 'UTC') AS day", "COUNT(*)").
			From(table), f).
		GroupBy("day").
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("build activity timeline: %w", err)
	}

	rows, err = q.Query(ctx, timelineSQL, timelineArgs...)
	if err != nil {
		return stats, fmt.Errorf("activity timeline: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d domain.DayCount
		if err := rows.Scan(&d.Day, &d.Count); err != nil {
			return stats, fmt.Errorf("scan activity timeline: %w", err)
		}
		stats.Timeline = append(stats.Timeline, d)
	}
	return stats, rows.Err()
}

func applyFilter(b sq.SelectBuilder, f domain.ActivityFilter) sq.SelectBuilder {
	if f.EventType != nil {
		b = b.Where(sq.Eq{"event_type": *f.EventType})
	}
	if f.UserID != nil {
		b = b.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.CreatorID != nil {
		b = b.Where(sq.Eq{"creator_id": *f.CreatorID})
	}
	if f.From != nil {
		b = b.Where(sq.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		b = b.Where(sq.Lt{"created_at": *f.To})
	}
	return b
}

func scanEvent(row pgx.Row) (domain.ActivityEvent, error) {
	var (
		e    domain.ActivityEvent
		meta []byte
	)
	err := row.Scan(&e.ID, &e.EventType, &e.UserID, &e.CreatorID, &meta, &e.CreatedAt)
	if err != nil {
		return domain.ActivityEvent{}, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &e.Metadata); err != nil {
			return domain.ActivityEvent{}, fmt.Errorf("activity %s unmarshal metadata: %w", e.ID, err)
		}
	}
	return e, nil
}
