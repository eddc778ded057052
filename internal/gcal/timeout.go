package gcal

import (
	"context"
	"time"
)

// timeoutAPI bounds every calendar call with a deadline.
type timeoutAPI struct {
	next    API
	timeout time.Duration
}

// WithTimeout decorates the API so each call runs under its own deadline.
// A non-positive timeout returns the API unchanged.
func WithTimeout(next API, timeout time.Duration) API {
	if timeout <= 0 {
		return next
	}
	return &timeoutAPI{next: next, timeout: timeout}
}

func (a *timeoutAPI) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]Event, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return a.next.ListEvents(ctx, calendarID, timeMin, timeMax)
}

func (a *timeoutAPI) InsertEvent(ctx context.Context, calendarID string, ev Event) (Event, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return a.next.InsertEvent(ctx, calendarID, ev)
}
