package icaldur

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidPeriod is returned when a PERIOD value is not "start/end" or
// "start/duration".
var ErrInvalidPeriod = errors.New("invalid PERIOD value")

// Period represents an RFC 5545 PERIOD value: either an explicit (start,
// end) pair or a (start, duration) pair.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.9
type Period struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
	// ExplicitEnd is true when the value used the "start/end" form; when
	// false, End is Start.Add(Duration).
	ExplicitEnd bool
}

// ParsePeriod parses a single PERIOD value (one entry of a possibly
// comma-separated RDATE list with VALUE=PERIOD).
func ParsePeriod(value string) (Period, error) {
	startStr, rest, ok := strings.Cut(value, "/")
	if !ok {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, value)
	}

	start, err := parsePeriodInstant(startStr)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, value)
	}

	if strings.HasPrefix(rest, "P") || strings.HasPrefix(rest, "+P") || strings.HasPrefix(rest, "-P") {
		dur, err := ParseICalDuration(rest)
		if err != nil {
			return Period{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, value)
		}
		return Period{Start: start, Duration: dur, End: start.Add(dur)}, nil
	}

	end, err := parsePeriodInstant(rest)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, value)
	}
	return Period{Start: start, End: end, Duration: end.Sub(start), ExplicitEnd: true}, nil
}

func parsePeriodInstant(value string) (time.Time, error) {
	dt, err := ParseDateTime(value)
	if err != nil {
		return time.Time{}, err
	}
	return dt.Time, nil
}
