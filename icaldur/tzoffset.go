package icaldur

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidTZOffset is returned when a UTC-OFFSET value does not match
// "+HHMM", "-HHMM" or the optional seconds form "+HHMMSS".
var ErrInvalidTZOffset = errors.New("invalid UTC-OFFSET value")

// TZOffset is a typed TZOFFSETFROM/TZOFFSETTO value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.14
type TZOffset struct {
	// Seconds is the signed offset from UTC in seconds.
	Seconds int
}

// ParseTZOffset parses "+HHMM", "-HHMM" or "+HHMMSS"/"-HHMMSS".
func ParseTZOffset(value string) (TZOffset, error) {
	if len(value) != 5 && len(value) != 7 {
		return TZOffset{}, fmt.Errorf("%w: %s", ErrInvalidTZOffset, value)
	}

	sign := 1
	switch value[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return TZOffset{}, fmt.Errorf("%w: %s", ErrInvalidTZOffset, value)
	}

	hours, err := strconv.Atoi(value[1:3])
	if err != nil {
		return TZOffset{}, fmt.Errorf("%w: %s", ErrInvalidTZOffset, value)
	}
	minutes, err := strconv.Atoi(value[3:5])
	if err != nil {
		return TZOffset{}, fmt.Errorf("%w: %s", ErrInvalidTZOffset, value)
	}
	seconds := 0
	if len(value) == 7 {
		seconds, err = strconv.Atoi(value[5:7])
		if err != nil {
			return TZOffset{}, fmt.Errorf("%w: %s", ErrInvalidTZOffset, value)
		}
	}

	total := hours*3600 + minutes*60 + seconds
	return TZOffset{Seconds: sign * total}, nil
}

// Duration converts the offset to a time.Duration.
func (o TZOffset) Duration() time.Duration {
	return time.Duration(o.Seconds) * time.Second
}

// Location returns a fixed-offset time.Location equivalent to this offset.
func (o TZOffset) Location(name string) *time.Location {
	return time.FixedZone(name, o.Seconds)
}
