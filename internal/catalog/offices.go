package catalog

import (
	"strings"
	"time"
)

// Office describes one location's operating hours. Open and Close are minutes
// since local midnight; Weekdays is the set of operating days.
type Office struct {
	Name     string
	Open     int
	Close    int
	Weekdays map[time.Weekday]bool
}

// OpensAt returns the opening time-of-day on the given date in loc.
func (o Office) OpensAt(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), o.Open/60, o.Open%60, 0, 0, loc)
}

// ClosesAt returns the closing time-of-day on the given date in loc.
func (o Office) ClosesAt(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), o.Close/60, o.Close%60, 0, 0, loc)
}

// OpenOn reports whether the office operates on the given weekday.
func (o Office) OpenOn(day time.Weekday) bool {
	return o.Weekdays[day]
}

var monThu = map[time.Weekday]bool{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
}

// Offices holds the two known locations. Both close Friday through Sunday.
var Offices = []Office{
	{Name: "Christiana", Open: 7*60 + 30, Close: 18*60 + 30, Weekdays: monThu},
	{Name: "Newport", Open: 8 * 60, Close: 17 * 60, Weekdays: monThu},
}

// defaultOffice applies when a location is unknown or unset.
var defaultOffice = Office{Name: "", Open: 8 * 60, Close: 17 * 60, Weekdays: monThu}

// OfficeFor resolves a location name to its hours profile. Unknown or empty
// locations get the default profile.
func OfficeFor(location string) Office {
	for _, o := range Offices {
		if strings.EqualFold(o.Name, location) {
			return o
		}
	}
	return defaultOffice
}

// InferLocation scans conversation text for a known office name. Returns ""
// when no office is mentioned.
func InferLocation(text string) string {
	lower := strings.ToLower(text)
	for _, o := range Offices {
		if strings.Contains(lower, strings.ToLower(o.Name)) {
			return o.Name
		}
	}
	return ""
}

// DefaultTimezone is the business timezone all slot arithmetic happens in.
const DefaultTimezone = "America/New_York"
