package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/avalondental/scheduling-agent/internal/gcal"
	"github.com/avalondental/scheduling-agent/internal/schedule"
)

func TestCommitWritesEventDetails(t *testing.T) {
	cal := &fakeCalendar{}
	c := NewCommitter(cal, "primary", "America/New_York")

	loc, _ := time.LoadLocation("America/New_York")
	slot := schedule.Slot{
		Start:    time.Date(2026, time.January, 6, 8, 0, 0, 0, loc),
		Duration: 90 * time.Minute,
	}

	created, err := c.Commit(context.Background(), slot, "Jane Doe", "Crown", "Christiana")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if created.ID == "" {
		t.Error("expected created event to carry an ID")
	}

	ev := cal.inserted[0]
	if ev.Summary != "Crown - Jane Doe" {
		t.Errorf("summary = %q", ev.Summary)
	}
	for _, want := range []string{"Patient: Jane Doe", "Service: Crown", "Location: Christiana", "Duration: 90 minutes"} {
		if !strings.Contains(ev.Description, want) {
			t.Errorf("description missing %q: %q", want, ev.Description)
		}
	}
	if ev.Timezone != "America/New_York" {
		t.Errorf("timezone = %q", ev.Timezone)
	}
	if !ev.End.Equal(slot.End()) {
		t.Errorf("end = %v, want %v", ev.End, slot.End())
	}
}

func TestCommitAbortsWhenSlotTaken(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	start := time.Date(2026, time.January, 6, 8, 0, 0, 0, loc)
	cal := &fakeCalendar{
		raceEvents: []gcal.Event{{ID: "rival", Start: start, End: start.Add(45 * time.Minute)}},
	}
	c := NewCommitter(cal, "primary", "America/New_York")

	_, err := c.Commit(context.Background(), schedule.Slot{Start: start, Duration: 45 * time.Minute}, "Jane Doe", "Cleaning", "Newport")
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("err = %v, want ErrSlotTaken", err)
	}
	if len(cal.inserted) != 0 {
		t.Errorf("aborted commit must not insert: %d", len(cal.inserted))
	}
}
