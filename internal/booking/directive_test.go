package booking

import (
	"errors"
	"testing"
	"time"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   Directive
		wantOK bool
	}{
		{
			name: "plain directive",
			text: "BOOKED: John Smith, Cleaning, Newport, Tuesday, Dec 16, 2025 at 08:00 AM",
			want: Directive{
				PatientName: "John Smith",
				Service:     "Cleaning",
				Location:    "Newport",
				TimeText:    "Tuesday, Dec 16, 2025 at 08:00 AM",
			},
			wantOK: true,
		},
		{
			name: "directive embedded in reply",
			text: "Great, you're all set!\nBOOKED: Jane Doe, Crown, Christiana, Monday, Jan 05, 2026 at 09:00 AM\nSee you then!",
			want: Directive{
				PatientName: "Jane Doe",
				Service:     "Crown",
				Location:    "Christiana",
				TimeText:    "Monday, Jan 05, 2026 at 09:00 AM",
			},
			wantOK: true,
		},
		{
			name:   "no marker",
			text:   "What time works best for you?",
			wantOK: false,
		},
		{
			name:   "too few fields",
			text:   "BOOKED: John Smith, Cleaning",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDirective(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ParseDirective ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.PatientName != tt.want.PatientName ||
				got.Service != tt.want.Service ||
				got.Location != tt.want.Location ||
				got.TimeText != tt.want.TimeText {
				t.Errorf("ParseDirective = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"John Smith", true},
		{"Jo", true},
		{"yes", false},
		{"Yes", false},
		{"confirm", false},
		{"book", false},
		{"it", false},
		{"J", false},
		{"", false},
		{"okay", false},
		{"Maria", true},
	}
	for _, tt := range tests {
		if got := ValidName(tt.name); got != tt.want {
			t.Errorf("ValidName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseTimeText(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.January, 2, 10, 0, 0, 0, loc)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "full form",
			text: "Tuesday, Dec 16, 2025 at 08:00 AM",
			want: time.Date(2025, time.December, 16, 8, 0, 0, 0, loc),
		},
		{
			name: "pm clock",
			text: "Jan 5 at 2:30 pm",
			want: time.Date(2026, time.January, 5, 14, 30, 0, 0, loc),
		},
		{
			name: "noon stays noon",
			text: "January 5 at 12:00 PM",
			want: time.Date(2026, time.January, 5, 12, 0, 0, 0, loc),
		},
		{
			name: "midnight from 12 am",
			text: "Jan 5 at 12 AM",
			want: time.Date(2026, time.January, 5, 0, 0, 0, 0, loc),
		},
		{
			name: "ordinal day",
			text: "March 3rd at 9am",
			want: time.Date(2026, time.March, 3, 9, 0, 0, 0, loc),
		},
		{
			name: "numeric date",
			text: "1/5 at 10:15 AM",
			want: time.Date(2026, time.January, 5, 10, 15, 0, 0, loc),
		},
		{
			name: "missing year defaults to current",
			text: "Feb 10 at 11:00 AM",
			want: time.Date(2026, time.February, 10, 11, 0, 0, 0, loc),
		},
		{
			name: "no clock parses as midnight",
			text: "Monday, Jan 05",
			want: time.Date(2026, time.January, 5, 0, 0, 0, 0, loc),
		},
		{
			name: "24-hour clock without meridiem",
			text: "Tuesday, Dec 16, 2025 at 14:00",
			want: time.Date(2025, time.December, 16, 14, 0, 0, 0, loc),
		},
		{
			name: "24-hour morning time",
			text: "Jan 5 at 08:30",
			want: time.Date(2026, time.January, 5, 8, 30, 0, 0, loc),
		},
		{
			name: "two-digit slash year",
			text: "1/5/27 at 10:15 AM",
			want: time.Date(2027, time.January, 5, 10, 15, 0, 0, loc),
		},
		{
			name: "four-digit slash year",
			text: "12/31/2027 at 9am",
			want: time.Date(2027, time.December, 31, 9, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimeText(tt.text, now, loc)
			if err != nil {
				t.Fatalf("parseTimeText(%q): %v", tt.text, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseTimeText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseTimeTextUnparseable(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.January, 2, 10, 0, 0, 0, loc)

	for _, text := range []string{
		"sometime soonish",
		"next week maybe",
		"",
		"13/45 at 9am",
	} {
		_, err := parseTimeText(text, now, loc)
		if !errors.Is(err, errUnparseableTime) {
			t.Errorf("parseTimeText(%q) err = %v, want errUnparseableTime", text, err)
		}
	}
}
