// Package schedule computes free, bookable time slots from the calendar's
// busy intervals, service durations, and office operating hours.
package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avalondental/scheduling-agent/internal/catalog"
	"github.com/avalondental/scheduling-agent/internal/gcal"
)

// Granularity is the step between candidate slot starts.
const Granularity = 15 * time.Minute

// DefaultHorizonDays is how far ahead slots are offered.
const DefaultHorizonDays = 21

// Slot is a computed, not-yet-committed bookable time range. Slots are never
// persisted; they are regenerated from a fresh calendar snapshot per request.
type Slot struct {
	Start    time.Time
	Duration time.Duration
}

// End returns the exclusive end of the slot interval.
func (s Slot) End() time.Time {
	return s.Start.Add(s.Duration)
}

// Display renders the slot the way it is shown to patients and the LLM.
func (s Slot) Display() string {
	return s.Start.Format("Monday, Jan 02, 2006 at 03:04 PM")
}

// Generator enumerates available slots against a remote calendar.
type Generator struct {
	cal        gcal.API
	calendarID string
	loc        *time.Location
	now        func() time.Time
}

// NewGenerator creates a slot generator. now defaults to time.Now and exists
// for tests.
func NewGenerator(cal gcal.API, calendarID string, loc *time.Location) *Generator {
	return &Generator{
		cal:        cal,
		calendarID: calendarID,
		loc:        loc,
		now:        time.Now,
	}
}

// WithClock overrides the generator's clock.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Location returns the business timezone the generator operates in.
func (g *Generator) Location() *time.Location {
	return g.loc
}

// Now returns the current time in the business timezone.
func (g *Generator) Now() time.Time {
	return g.now().In(g.loc)
}

// ListAvailable returns every free slot of the given duration at the location
// within horizonDays, in chronological order. The calendar is fetched fresh on
// every call; the returned snapshot is the only consistency mechanism.
func (g *Generator) ListAvailable(ctx context.Context, location string, horizonDays int, duration time.Duration) ([]Slot, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if duration <= 0 {
		duration = catalog.DefaultDuration
	}

	now := g.now().In(g.loc)
	horizon := now.AddDate(0, 0, horizonDays)

	events, err := g.cal.ListEvents(ctx, g.calendarID, now, horizon)
	if err != nil {
		return nil, fmt.Errorf("schedule: availability snapshot: %w", err)
	}
	busy := gcal.BusyIntervals(events)

	office := catalog.OfficeFor(location)

	var slots []Slot
	for offset := 0; offset < horizonDays; offset++ {
		day := now.AddDate(0, 0, offset)
		if !office.OpenOn(day.Weekday()) {
			continue
		}

		slotStart := office.OpensAt(day, g.loc)
		closing := office.ClosesAt(day, g.loc)

		for !slotStart.Add(duration).After(closing) {
			if slotStart.After(now) && isFree(slotStart, slotStart.Add(duration), busy) {
				slots = append(slots, Slot{Start: slotStart, Duration: duration})
			}
			slotStart = slotStart.Add(Granularity)
		}
	}
	return slots, nil
}

// isFree applies the half-open overlap test against every busy interval.
func isFree(start, end time.Time, busy []gcal.BusyInterval) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// FormatForPrompt renders slots as the newline-joined listing embedded in the
// LLM system prompt.
func FormatForPrompt(slots []Slot) string {
	if len(slots) == 0 {
		return "No appointments available in the scheduling window."
	}
	lines := make([]string, len(slots))
	for i, s := range slots {
		lines[i] = s.Display()
	}
	return strings.Join(lines, "\n")
}
