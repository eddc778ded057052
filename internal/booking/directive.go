// Package booking turns a confirmed booking directive from the conversation
// model into at most one calendar write.
package booking

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Marker is the literal that flags a booking directive in generated text.
// The wire format is a single line:
//
//	BOOKED: <name>, <service>, <location>, <free-text time>
//
// This exact shape is the contract between the prompting layer and this
// parser and must not change.
const Marker = "BOOKED:"

// Directive is the structured intent extracted from generated text. It is a
// transient, untrusted parse target.
type Directive struct {
	PatientName string
	Service     string
	Location    string
	TimeText    string

	// Line is the raw directive line as it appeared in the output, kept so
	// the resolver can splice its replacement into the response.
	Line string
}

// invalidNames are confirmation words the model sometimes echoes into the
// name field. A directive carrying one of these is rejected.
var invalidNames = map[string]bool{
	"yes": true, "no": true, "confirm": true, "ok": true, "okay": true,
	"sure": true, "yep": true, "yeah": true, "book": true, "it": true,
}

// ParseDirective extracts the first directive line from generated text.
// Returns ok=false when the text carries no marker or the line has too few
// fields to be a directive.
func ParseDirective(text string) (Directive, bool) {
	if !strings.Contains(text, Marker) {
		return Directive{}, false
	}

	var line string
	for _, l := range strings.Split(text, "\n") {
		if strings.Contains(l, Marker) {
			line = l
			break
		}
	}

	payload := strings.TrimSpace(strings.Replace(line, Marker, "", 1))
	parts := strings.Split(payload, ", ")
	if len(parts) < 4 {
		return Directive{}, false
	}

	return Directive{
		PatientName: strings.TrimSpace(parts[0]),
		Service:     strings.TrimSpace(parts[1]),
		Location:    strings.TrimSpace(parts[2]),
		TimeText:    strings.TrimSpace(strings.Join(parts[3:], ", ")),
		Line:        line,
	}, true
}

// ValidName reports whether the extracted patient name looks like an actual
// name rather than a stray confirmation word.
func ValidName(name string) bool {
	if len(name) < 2 {
		return false
	}
	return !invalidNames[strings.ToLower(name)]
}

var (
	monthDayRE = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	numDateRE  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	yearRE     = regexp.MustCompile(`\b(20\d{2})\b`)
	clockRE    = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(a\.?m\.?|p\.?m\.?)\b`)
	clock24RE  = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// errUnparseableTime signals that the free-text time carries no recognizable
// date, which routes resolution to the substring fallback.
var errUnparseableTime = errors.New("booking: unparseable time text")

// parseTimeText permissively extracts a calendar date and, when present, a
// clock time from model-generated free text like
// "Tuesday, Dec 16, 2025 at 08:00 AM". The year defaults to the current year
// when omitted; a missing clock time parses as midnight.
func parseTimeText(text string, now time.Time, loc *time.Location) (time.Time, error) {
	var (
		month        time.Month
		day          int
		yearFromDate int
	)

	if m := monthDayRE.FindStringSubmatch(text); m != nil {
		prefix := strings.ToLower(m[1])
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		month = monthsByPrefix[prefix]
		day, _ = strconv.Atoi(m[2])
	} else if m := numDateRE.FindStringSubmatch(text); m != nil {
		mon, _ := strconv.Atoi(m[1])
		if mon < 1 || mon > 12 {
			return time.Time{}, errUnparseableTime
		}
		month = time.Month(mon)
		day, _ = strconv.Atoi(m[2])
		if m[3] != "" {
			yearFromDate, _ = strconv.Atoi(m[3])
			if yearFromDate < 100 {
				yearFromDate += 2000
			}
		}
	} else {
		return time.Time{}, errUnparseableTime
	}
	if day < 1 || day > 31 {
		return time.Time{}, errUnparseableTime
	}

	year := now.Year()
	if m := yearRE.FindStringSubmatch(text); m != nil {
		year, _ = strconv.Atoi(m[1])
	}
	if yearFromDate != 0 {
		year = yearFromDate
	}

	hour, minute := 0, 0
	if m := clockRE.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		meridiem := strings.ToLower(strings.ReplaceAll(m[3], ".", ""))
		if meridiem == "pm" && hour != 12 {
			hour += 12
		} else if meridiem == "am" && hour == 12 {
			hour = 0
		}
	} else if m := clock24RE.FindStringSubmatch(text); m != nil {
		// 24-hour clock with no meridiem, e.g. "14:00".
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		if h <= 23 && mi <= 59 {
			hour, minute = h, mi
		}
	}

	return time.Date(year, month, day, hour, minute, 0, 0, loc), nil
}
