package schedule

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/avalondental/scheduling-agent/internal/gcal"
)

type fakeCalendar struct {
	events  []gcal.Event
	listErr error
	calls   int
}

func (f *fakeCalendar) ListEvents(_ context.Context, _ string, _, _ time.Time) ([]gcal.Event, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeCalendar) InsertEvent(_ context.Context, _ string, ev gcal.Event) (gcal.Event, error) {
	return ev, nil
}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

// fridayMorning is a Friday, so the first operating day is the following
// Monday.
func fridayMorning(loc *time.Location) time.Time {
	return time.Date(2026, time.January, 2, 10, 0, 0, 0, loc)
}

func newTestGenerator(cal gcal.API, loc *time.Location, now time.Time) *Generator {
	return NewGenerator(cal, "primary", loc).WithClock(func() time.Time { return now })
}

func TestListAvailableSkipsClosedDays(t *testing.T) {
	loc := newYork(t)
	now := fridayMorning(loc)
	g := newTestGenerator(&fakeCalendar{}, loc, now)

	slots, err := g.ListAvailable(context.Background(), "Christiana", 7, 45*time.Minute)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots within a week")
	}

	first := slots[0].Start
	if first.Weekday() != time.Monday {
		t.Errorf("first slot on %v, want Monday", first.Weekday())
	}
	if first.Hour() != 7 || first.Minute() != 30 {
		t.Errorf("first slot at %02d:%02d, want 07:30", first.Hour(), first.Minute())
	}
	for _, s := range slots {
		switch s.Start.Weekday() {
		case time.Friday, time.Saturday, time.Sunday:
			t.Errorf("slot on closed day %v", s.Start)
		}
	}
}

func TestListAvailableRespectsBusyIntervals(t *testing.T) {
	loc := newYork(t)
	now := fridayMorning(loc)
	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, loc)

	cal := &fakeCalendar{events: []gcal.Event{{
		ID:    "existing",
		Start: monday.Add(9 * time.Hour),
		End:   monday.Add(9*time.Hour + 45*time.Minute),
	}}}
	g := newTestGenerator(cal, loc, now)

	slots, err := g.ListAvailable(context.Background(), "Newport", 7, 45*time.Minute)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}

	starts := map[string]bool{}
	for _, s := range slots {
		starts[s.Start.Format("Mon 15:04")] = true
	}
	// A 45-minute slot at 08:45 would run into the 09:00 booking.
	for _, blocked := range []string{"Mon 08:45", "Mon 09:00", "Mon 09:15", "Mon 09:30"} {
		if starts[blocked] {
			t.Errorf("slot %s overlaps existing booking", blocked)
		}
	}
	// 09:45 starts exactly when the booking ends; half-open intervals make
	// it free.
	if !starts["Mon 09:45"] {
		t.Error("expected slot at Mon 09:45")
	}
	if !starts["Mon 08:00"] {
		t.Error("expected slot at Mon 08:00")
	}
}

func TestListAvailableNeverExceedsClosing(t *testing.T) {
	loc := newYork(t)
	g := newTestGenerator(&fakeCalendar{}, loc, fridayMorning(loc))

	slots, err := g.ListAvailable(context.Background(), "Newport", 7, 90*time.Minute)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	for _, s := range slots {
		end := s.End()
		if end.Hour() > 17 || (end.Hour() == 17 && end.Minute() > 0) {
			t.Errorf("slot %v ends %v, past 17:00 close", s.Start, end)
		}
	}
	// Latest valid 90-minute start at Newport is 15:30.
	last := slots[len(slots)-1]
	if last.Start.Hour() != 15 || last.Start.Minute() != 30 {
		t.Errorf("last slot starts %02d:%02d, want 15:30", last.Start.Hour(), last.Start.Minute())
	}
}

func TestListAvailableOnlyFutureSlots(t *testing.T) {
	loc := newYork(t)
	// Monday mid-morning: earlier same-day slots must be excluded.
	now := time.Date(2026, time.January, 5, 10, 0, 0, 0, loc)
	g := newTestGenerator(&fakeCalendar{}, loc, now)

	slots, err := g.ListAvailable(context.Background(), "Christiana", 1, 45*time.Minute)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected same-day slots after 10:00")
	}
	for _, s := range slots {
		if !s.Start.After(now) {
			t.Errorf("slot %v is not strictly in the future", s.Start)
		}
	}
	if first := slots[0].Start; first.Hour() != 10 || first.Minute() != 15 {
		t.Errorf("first slot at %02d:%02d, want 10:15", first.Hour(), first.Minute())
	}
}

func TestListAvailableGranularityAndOrder(t *testing.T) {
	loc := newYork(t)
	g := newTestGenerator(&fakeCalendar{}, loc, fridayMorning(loc))

	slots, err := g.ListAvailable(context.Background(), "Christiana", 14, 60*time.Minute)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	for i, s := range slots {
		if s.Start.Minute()%15 != 0 {
			t.Errorf("slot %v not on 15-minute boundary", s.Start)
		}
		if i > 0 && !slots[i-1].Start.Before(s.Start) {
			t.Errorf("slots out of order at index %d: %v >= %v", i, slots[i-1].Start, s.Start)
		}
	}
}

func TestListAvailableRemoteError(t *testing.T) {
	loc := newYork(t)
	remoteErr := errors.New("calendar down")
	g := newTestGenerator(&fakeCalendar{listErr: remoteErr}, loc, fridayMorning(loc))

	_, err := g.ListAvailable(context.Background(), "Newport", 7, 45*time.Minute)
	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected wrapped remote error, got %v", err)
	}
}

func TestFormatForPrompt(t *testing.T) {
	loc := newYork(t)
	empty := FormatForPrompt(nil)
	if !strings.Contains(empty, "No appointments available") {
		t.Errorf("unexpected empty listing: %q", empty)
	}

	slots := []Slot{
		{Start: time.Date(2026, time.January, 5, 7, 30, 0, 0, loc), Duration: 45 * time.Minute},
		{Start: time.Date(2026, time.January, 5, 8, 0, 0, 0, loc), Duration: 45 * time.Minute},
	}
	got := FormatForPrompt(slots)
	want := "Monday, Jan 05, 2026 at 07:30 AM\nMonday, Jan 05, 2026 at 08:00 AM"
	if got != want {
		t.Errorf("FormatForPrompt = %q, want %q", got, want)
	}
}
