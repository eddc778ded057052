// Package gcal is the boundary to the Google Calendar service. The rest of
// the system consumes it through the API interface so tests can substitute a
// fake calendar.
package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrRemote classifies calendar failures (network, auth, quota) so callers
// can report them as retry-later outcomes instead of internal errors.
var ErrRemote = errors.New("gcal: remote calendar error")

// Event is a calendar event as this system sees it. AllDay events carry only
// a date; Start/End are then local midnights of that date and the next.
type Event struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Timezone    string
}

// API is the calendar operations the scheduling engine depends on.
type API interface {
	ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]Event, error)
	InsertEvent(ctx context.Context, calendarID string, ev Event) (Event, error)
}

// Client implements API over the Google Calendar v3 service.
type Client struct {
	svc *calendar.Service
	loc *time.Location
}

// Options configures the Google Calendar client.
type Options struct {
	CredentialsJSON string
	CredentialsFile string
	Location        *time.Location
}

// NewClient builds a calendar client from service account credentials.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var clientOpts []option.ClientOption
	switch {
	case opts.CredentialsJSON != "":
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(opts.CredentialsJSON)))
	case opts.CredentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	default:
		return nil, errors.New("gcal: calendar credentials are required")
	}

	svc, err := calendar.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("gcal: failed to create calendar service: %w", err)
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Client{svc: svc, loc: loc}, nil
}

// ListEvents returns all events intersecting [timeMin, timeMax), expanded to
// single instances in chronological order.
func (c *Client) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]Event, error) {
	call := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", ErrRemote, err)
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		ev, err := c.convert(item)
		if err != nil {
			// Malformed events are skipped rather than failing the whole
			// availability snapshot.
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// InsertEvent creates a new event and returns it with the server-assigned ID.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, ev Event) (Event, error) {
	body := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: ev.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: ev.Timezone,
		},
	}

	created, err := c.svc.Events.Insert(calendarID, body).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("%w: insert event: %v", ErrRemote, err)
	}

	ev.ID = created.Id
	return ev, nil
}

// convert maps a wire event to our Event, normalizing date-only events to
// full-day local intervals.
func (c *Client) convert(item *calendar.Event) (Event, error) {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
	}
	if item.Start == nil || item.End == nil {
		return Event{}, errors.New("gcal: event missing start or end")
	}

	if item.Start.DateTime != "" {
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return Event{}, fmt.Errorf("gcal: bad event start: %w", err)
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return Event{}, fmt.Errorf("gcal: bad event end: %w", err)
		}
		ev.Start = start.In(c.loc)
		ev.End = end.In(c.loc)
		return ev, nil
	}

	// Date-only: an all-day block.
	day, err := time.ParseInLocation("2006-01-02", item.Start.Date, c.loc)
	if err != nil {
		return Event{}, fmt.Errorf("gcal: bad all-day event date: %w", err)
	}
	ev.AllDay = true
	ev.Start = day
	ev.End = day.AddDate(0, 0, 1)
	return ev, nil
}
