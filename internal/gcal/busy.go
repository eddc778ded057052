package gcal

import "time"

// BusyInterval is a half-open [Start, End) range during which the calendar is
// already booked.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the half-open interval [start, end) intersects b.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}

// BusyIntervals derives busy ranges from events. All-day events were already
// normalized to [local midnight, next local midnight) by the client; timed
// events map directly.
func BusyIntervals(events []Event) []BusyInterval {
	intervals := make([]BusyInterval, 0, len(events))
	for _, ev := range events {
		if !ev.End.After(ev.Start) {
			continue
		}
		intervals = append(intervals, BusyInterval{Start: ev.Start, End: ev.End})
	}
	return intervals
}
