package icaldur

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// iCalDateFormat is the RFC 5545 DATE value layout: YYYYMMDD.
const iCalDateFormat = "20060102"

var (
	// ErrInvalidDate is returned when a DATE value does not match YYYYMMDD.
	ErrInvalidDate = errors.New("invalid DATE value")
	// ErrInvalidDateTime is returned when a DATE-TIME value matches neither
	// the UTC nor the floating layout.
	ErrInvalidDateTime = errors.New("invalid DATE-TIME value")
)

// ParseDate parses an RFC 5545 DATE value (calendar day, no time-of-day).
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(iCalDateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, value)
	}
	return t, nil
}

// DateTime is the result of parsing a DATE-TIME value: the wall-clock
// instant plus enough metadata for a caller (or the tzresolve package) to
// know whether it still needs localising.
type DateTime struct {
	// Time holds the parsed wall-clock fields. For a UTC value this is
	// already the correct instant. For a floating or TZID value, Time's
	// Location is time.UTC but only the wall-clock fields are meaningful
	// until resolved against a TZID.
	Time time.Time
	// UTC is true if the value carried the "Z" suffix.
	UTC bool
	// Floating is true if the value lacks the "Z" suffix. ParseDateTime does
	// not see the TZID parameter, so a TZID-qualified value is reported as
	// floating too until the caller resolves it.
	Floating bool
}

// ParseDateTime parses an RFC 5545 DATE-TIME value's wall-clock portion.
// The TZID parameter (if any) is supplied by the caller separately and is
// not resolved here — resolution is the Time-Zone Resolver's job.
func ParseDateTime(value string) (DateTime, error) {
	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse(iCalDateTimeFormat, value)
		if err != nil {
			return DateTime{}, fmt.Errorf("%w: %s", ErrInvalidDateTime, value)
		}
		return DateTime{Time: t, UTC: true}, nil
	}
	t, err := time.Parse(iCalDateTimeFloatingFormat, value)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %s", ErrInvalidDateTime, value)
	}
	return DateTime{Time: t, Floating: true}, nil
}
