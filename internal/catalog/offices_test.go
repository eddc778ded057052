package catalog

import (
	"testing"
	"time"
)

func TestOfficeFor(t *testing.T) {
	tests := []struct {
		location  string
		wantName  string
		wantOpen  int
		wantClose int
	}{
		{"Christiana", "Christiana", 7*60 + 30, 18*60 + 30},
		{"christiana", "Christiana", 7*60 + 30, 18*60 + 30},
		{"Newport", "Newport", 8 * 60, 17 * 60},
		{"", "", 8 * 60, 17 * 60},
		{"Wilmington", "", 8 * 60, 17 * 60},
	}
	for _, tt := range tests {
		o := OfficeFor(tt.location)
		if o.Name != tt.wantName || o.Open != tt.wantOpen || o.Close != tt.wantClose {
			t.Errorf("OfficeFor(%q) = {%q %d %d}, want {%q %d %d}",
				tt.location, o.Name, o.Open, o.Close, tt.wantName, tt.wantOpen, tt.wantClose)
		}
	}
}

func TestOfficeOperatingDays(t *testing.T) {
	o := OfficeFor("Christiana")
	open := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday}
	closed := []time.Weekday{time.Friday, time.Saturday, time.Sunday}
	for _, d := range open {
		if !o.OpenOn(d) {
			t.Errorf("expected Christiana open on %v", d)
		}
	}
	for _, d := range closed {
		if o.OpenOn(d) {
			t.Errorf("expected Christiana closed on %v", d)
		}
	}
}

func TestOpensAtClosesAt(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, time.January, 5, 14, 22, 9, 0, loc) // a Monday, arbitrary clock

	o := OfficeFor("Christiana")
	opens := o.OpensAt(day, loc)
	closes := o.ClosesAt(day, loc)

	if opens.Hour() != 7 || opens.Minute() != 30 {
		t.Errorf("OpensAt = %v, want 07:30", opens)
	}
	if closes.Hour() != 18 || closes.Minute() != 30 {
		t.Errorf("ClosesAt = %v, want 18:30", closes)
	}
	if opens.Day() != day.Day() {
		t.Errorf("OpensAt moved to a different day: %v", opens)
	}
}

func TestInferLocation(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I'd prefer the Newport office", "Newport"},
		{"christiana works for me", "Christiana"},
		{"either location is fine", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := InferLocation(tt.text); got != tt.want {
			t.Errorf("InferLocation(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
