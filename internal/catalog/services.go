// Package catalog holds the static service catalog and office profiles for
// Avalon Dental. The catalog is loaded once at startup and is immutable for
// the process lifetime.
package catalog

import (
	"strings"
	"time"
)

// Service is a bookable procedure with its canonical appointment length.
type Service struct {
	Name     string
	Duration time.Duration
}

// DefaultDuration applies when a description matches no catalog entry.
const DefaultDuration = 60 * time.Minute

// Services is the catalog in declaration order. Matching is first-match-wins,
// so overlapping names (e.g. "cleaning" vs "deep cleaning") resolve by
// position here, not by longest match.
var Services = []Service{
	{Name: "cleaning", Duration: 45 * time.Minute},
	{Name: "new patient exam", Duration: 60 * time.Minute},
	{Name: "filling", Duration: 45 * time.Minute},
	{Name: "crown", Duration: 90 * time.Minute},
	{Name: "root canal", Duration: 90 * time.Minute},
	{Name: "extraction", Duration: 30 * time.Minute},
	{Name: "whitening", Duration: 60 * time.Minute},
	{Name: "emergency", Duration: 30 * time.Minute},
	{Name: "consultation", Duration: 45 * time.Minute},
	{Name: "implant", Duration: 90 * time.Minute},
	{Name: "braces consultation", Duration: 45 * time.Minute},
}

// ResolveDuration maps a free-text service description to an appointment
// length. The first catalog entry whose name is a case-insensitive substring
// of the description wins; unmatched descriptions get DefaultDuration.
func ResolveDuration(description string) time.Duration {
	lower := strings.ToLower(description)
	for _, s := range Services {
		if strings.Contains(lower, s.Name) {
			return s.Duration
		}
	}
	return DefaultDuration
}

// InferService picks the service being discussed from conversation text using
// the same first-match substring policy. Falls back to cleaning, the most
// common appointment type.
func InferService(text string) Service {
	lower := strings.ToLower(text)
	for _, s := range Services {
		if strings.Contains(lower, s.Name) {
			return s
		}
	}
	return Services[0]
}
