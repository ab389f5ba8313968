// Package dateengine implements the closed set of date formats, parsing
// heuristics, and unit arithmetic that the date operators (current_timestamp,
// format_date, parse_date, date_add, date_diff) are built from. Parse
// functions report ok=false rather than erroring; callers decide what
// "unparseable" means for their operator.
package dateengine

import (
	"strconv"
	"time"
)

// Format names one of the closed set of output encodings.
type Format string

const (
	ISO8601      Format = "iso8601"
	ISO8601Basic Format = "iso8601_basic"
	Unix         Format = "unix"
	UnixMs       Format = "unix_ms"
	Human        Format = "human"
	DateOnly     Format = "date_only"
	TimeOnly     Format = "time_only"
)

// Unit names one of the arithmetic/diff units.
type Unit string

const (
	Seconds Unit = "seconds"
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
	Days    Unit = "days"
	Weeks   Unit = "weeks"
	Months  Unit = "months" // date_add only; 30 days
	Years   Unit = "years"  // date_add only; 365 days
)

const (
	isoLayout          = "2006-01-02T15:04:05Z07:00"
	isoNaiveLayout     = "2006-01-02T15:04:05"
	isoDateOnlyLayout  = "2006-01-02"
	isoBasicLayout     = "20060102T150405Z0700"
	humanLayout        = "2006-01-02 15:04:05 UTC"
	timeOnlyLayout     = "15:04:05"
)

// Parse auto-detects and parses a timestamp string using an ordered
// detector: ISO-8601 offsetted, ISO-8601 naive (UTC), ISO-8601 date-only
// (midnight UTC), 10-digit unix seconds, 13-digit unix milliseconds. It
// reports ok=false if none match.
func Parse(s string) (time.Time, bool) {
	if t, err := time.Parse(isoLayout, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(isoNaiveLayout, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(isoDateOnlyLayout, s); err == nil {
		return t.UTC(), true
	}
	if isAllDigits(s) {
		switch len(s) {
		case 10:
			if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
				return time.Unix(secs, 0).UTC(), true
			}
		case 13:
			if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
				return time.UnixMilli(ms).UTC(), true
			}
		}
	}
	return time.Time{}, false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Render renders t, converted to UTC, using one of the closed set of named
// formats. An unrecognized format name renders using ISO8601 as a
// conservative default.
func Render(t time.Time, format Format) string {
	t = t.UTC()
	switch format {
	case ISO8601:
		return t.Format(isoLayout)
	case ISO8601Basic:
		return t.Format(isoBasicLayout)
	case Unix:
		return strconv.FormatInt(t.Unix(), 10)
	case UnixMs:
		return strconv.FormatInt(t.UnixMilli(), 10)
	case Human:
		return t.Format(humanLayout)
	case DateOnly:
		return t.Format(isoDateOnlyLayout)
	case TimeOnly:
		return t.Format(timeOnlyLayout)
	default:
		return t.Format(isoLayout)
	}
}

// Add applies amount units to t. amount may be negative. Months are treated
// as a fixed 30 days and years as a fixed 365 days; this is not
// calendar-aware arithmetic.
func Add(t time.Time, amount int, unit Unit) time.Time {
	switch unit {
	case Seconds:
		return t.Add(time.Duration(amount) * time.Second)
	case Minutes:
		return t.Add(time.Duration(amount) * time.Minute)
	case Hours:
		return t.Add(time.Duration(amount) * time.Hour)
	case Days:
		return t.AddDate(0, 0, amount)
	case Weeks:
		return t.AddDate(0, 0, amount*7)
	case Months:
		return t.Add(time.Duration(amount) * 30 * 24 * time.Hour)
	case Years:
		return t.Add(time.Duration(amount) * 365 * 24 * time.Hour)
	default:
		return t
	}
}

// Diff computes (to - from) in the requested unit. seconds is reported as a
// whole number of seconds, since the caller always wraps the result as a
// float64 Value; other units are real-valued. Months and years are not
// valid diff units.
func Diff(from, to time.Time, unit Unit) (float64, bool) {
	d := to.Sub(from)
	switch unit {
	case Seconds:
		return float64(int64(d.Seconds())), true
	case Minutes:
		return d.Minutes(), true
	case Hours:
		return d.Hours(), true
	case Days:
		return d.Hours() / 24, true
	case Weeks:
		return d.Hours() / 24 / 7, true
	default:
		return 0, false
	}
}

// ParseFormat validates and normalizes a format string from DSL params,
// returning ok=false for anything outside the closed set.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case ISO8601, ISO8601Basic, Unix, UnixMs, Human, DateOnly, TimeOnly:
		return Format(s), true
	default:
		return "", false
	}
}

// ParseUnit validates a unit string, optionally allowing months/years
// (date_add only).
func ParseUnit(s string, allowCalendarUnits bool) (Unit, bool) {
	switch Unit(s) {
	case Seconds, Minutes, Hours, Days, Weeks:
		return Unit(s), true
	case Months, Years:
		if allowCalendarUnits {
			return Unit(s), true
		}
		return "", false
	default:
		return "", false
	}
}

// LoadLocation resolves a timezone name, falling back to UTC for an unknown
// zone. Safe for concurrent use across goroutines.
func LoadLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// String implements fmt.Stringer for Format, for diagnostics.
func (f Format) String() string { return string(f) }

// String implements fmt.Stringer for Unit, for diagnostics.
func (u Unit) String() string { return string(u) }
