package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avalondental/scheduling-agent/internal/gcal"
	"github.com/avalondental/scheduling-agent/internal/schedule"
)

// ErrSlotTaken is returned when the pre-commit re-check finds the target
// interval no longer free.
var ErrSlotTaken = errors.New("booking: slot no longer available")

// Committer writes confirmed bookings to the remote calendar.
type Committer struct {
	cal        gcal.API
	calendarID string
	timezone   string
}

// NewCommitter creates a calendar committer. timezone is the IANA name stored
// on created events (e.g. "America/New_York").
func NewCommitter(cal gcal.API, calendarID, timezone string) *Committer {
	return &Committer{cal: cal, calendarID: calendarID, timezone: timezone}
}

// Commit inserts one event for the confirmed slot. Immediately before the
// insert it re-fetches busy intervals for the slot window and aborts with
// ErrSlotTaken if another booking landed since the availability snapshot.
// The insert itself carries no idempotency key, so callers must invoke Commit
// at most once per resolved directive and never retry it blindly.
func (c *Committer) Commit(ctx context.Context, slot schedule.Slot, patientName, service, location string) (gcal.Event, error) {
	events, err := c.cal.ListEvents(ctx, c.calendarID, slot.Start, slot.End())
	if err != nil {
		return gcal.Event{}, fmt.Errorf("booking: pre-commit availability check: %w", err)
	}
	for _, b := range gcal.BusyIntervals(events) {
		if b.Overlaps(slot.Start, slot.End()) {
			return gcal.Event{}, ErrSlotTaken
		}
	}

	ev := gcal.Event{
		Summary: fmt.Sprintf("%s - %s", service, patientName),
		Description: fmt.Sprintf(
			"Patient: %s\nService: %s\nLocation: %s\nDuration: %d minutes",
			patientName, service, location, int(slot.Duration/time.Minute),
		),
		Start:    slot.Start,
		End:      slot.End(),
		Timezone: c.timezone,
	}

	created, err := c.cal.InsertEvent(ctx, c.calendarID, ev)
	if err != nil {
		return gcal.Event{}, fmt.Errorf("booking: commit: %w", err)
	}
	return created, nil
}
