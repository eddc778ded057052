// Package bookinglog records committed bookings in Postgres for reporting.
// The calendar remains the source of truth; this log is an audit trail.
package bookinglog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Entry is one committed booking.
type Entry struct {
	ID          uuid.UUID
	PatientName string
	Service     string
	Location    string
	StartsAt    time.Time
	DurationMin int
	EventID     string
	CreatedAt   time.Time
}

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository persists booking log entries.
type Repository struct {
	db DB
}

// NewRepository creates a booking log repository. A nil db panics; callers
// that run without Postgres should skip constructing the repository.
func NewRepository(db DB) *Repository {
	if db == nil {
		panic("bookinglog: db required")
	}
	return &Repository{db: db}
}

const insertSQL = `INSERT INTO booking_log
	(id, patient_name, service, location, starts_at, duration_min, event_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Insert records a committed booking.
func (r *Repository) Insert(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, insertSQL,
		e.ID, e.PatientName, e.Service, e.Location, e.StartsAt, e.DurationMin, e.EventID, e.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("bookinglog: insert: %w", err)
	}
	return e, nil
}

const listRecentSQL = `SELECT id, patient_name, service, location, starts_at, duration_min, event_id, created_at
	FROM booking_log ORDER BY created_at DESC LIMIT $1`

// ListRecent returns the most recent entries, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("bookinglog: list recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.PatientName, &e.Service, &e.Location, &e.StartsAt, &e.DurationMin, &e.EventID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("bookinglog: scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bookinglog: iterate entries: %w", err)
	}
	return entries, nil
}
