package gcal

import (
	"context"
	"time"
)

// Observer receives timing/status signals for calendar calls.
type Observer interface {
	ObserveCalendarRequest(op, status string, seconds float64)
}

// InstrumentedAPI wraps an API with request metrics.
type InstrumentedAPI struct {
	next API
	obs  Observer
}

// Instrument decorates the API with the given observer. A nil observer
// returns the API unchanged.
func Instrument(next API, obs Observer) API {
	if obs == nil {
		return next
	}
	return &InstrumentedAPI{next: next, obs: obs}
}

func (a *InstrumentedAPI) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]Event, error) {
	start := time.Now()
	events, err := a.next.ListEvents(ctx, calendarID, timeMin, timeMax)
	a.obs.ObserveCalendarRequest("list", statusLabel(err), time.Since(start).Seconds())
	return events, err
}

func (a *InstrumentedAPI) InsertEvent(ctx context.Context, calendarID string, ev Event) (Event, error) {
	start := time.Now()
	created, err := a.next.InsertEvent(ctx, calendarID, ev)
	a.obs.ObserveCalendarRequest("insert", statusLabel(err), time.Since(start).Seconds())
	return created, err
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
