package gcal

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubAPI struct {
	listErr   error
	insertErr error
}

func (s *stubAPI) ListEvents(_ context.Context, _ string, _, _ time.Time) ([]Event, error) {
	return nil, s.listErr
}

func (s *stubAPI) InsertEvent(_ context.Context, _ string, ev Event) (Event, error) {
	return ev, s.insertErr
}

type recordingObserver struct {
	ops      []string
	statuses []string
}

func (r *recordingObserver) ObserveCalendarRequest(op, status string, _ float64) {
	r.ops = append(r.ops, op)
	r.statuses = append(r.statuses, status)
}

func TestInstrumentRecordsCalls(t *testing.T) {
	obs := &recordingObserver{}
	api := Instrument(&stubAPI{insertErr: errors.New("quota")}, obs)

	_, _ = api.ListEvents(context.Background(), "primary", time.Now(), time.Now().Add(time.Hour))
	_, _ = api.InsertEvent(context.Background(), "primary", Event{})

	if len(obs.ops) != 2 {
		t.Fatalf("recorded %d calls, want 2", len(obs.ops))
	}
	if obs.ops[0] != "list" || obs.statuses[0] != "ok" {
		t.Errorf("first call = %s/%s, want list/ok", obs.ops[0], obs.statuses[0])
	}
	if obs.ops[1] != "insert" || obs.statuses[1] != "error" {
		t.Errorf("second call = %s/%s, want insert/error", obs.ops[1], obs.statuses[1])
	}
}

func TestInstrumentNilObserverPassesThrough(t *testing.T) {
	api := &stubAPI{}
	if got := Instrument(api, nil); got != API(api) {
		t.Error("nil observer should return the API unchanged")
	}
}
