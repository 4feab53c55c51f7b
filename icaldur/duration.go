// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package icaldur parses the scalar iCalendar value types: durations,
// dates, date-times, periods, calendar addresses, geo coordinates,
// UTC offsets, and alarm triggers. Each parse function is a pure function
// of the raw property value (plus parameters where the grammar needs
// them); none of them mutate or retain the input.
package icaldur

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned when a DURATION value does not match the
// RFC 5545 grammar: P[n]W, or P[n]D with an optional T[n]H[n]M[n]S tail.
var ErrInvalidDuration = errors.New("invalid DURATION value")

// durUnits fixes the time-component designators and their order: the RFC
// grammar allows hours, then minutes, then seconds, each at most once.
var durUnits = []struct {
	designator byte
	size       time.Duration
}{
	{'H', time.Hour},
	{'M', time.Minute},
	{'S', time.Second},
}

// ParseICalDuration parses an RFC 5545 DURATION value. Unlike full
// ISO 8601, the RFC's grammar has no year or month components, and the
// weeks form (PnW) cannot be combined with any other unit.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.6
func ParseICalDuration(value string) (time.Duration, error) {
	v := strings.TrimSpace(value)

	sign := time.Duration(1)
	switch {
	case strings.HasPrefix(v, "+"):
		v = v[1:]
	case strings.HasPrefix(v, "-"):
		sign = -1
		v = v[1:]
	}

	body, hasP := strings.CutPrefix(v, "P")
	if !hasP || body == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}

	if weeks, isWeeks := strings.CutSuffix(body, "W"); isWeeks {
		n, err := strconv.Atoi(weeks)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
		}
		return sign * time.Duration(n) * 7 * 24 * time.Hour, nil
	}

	datePart, timePart, hasT := strings.Cut(body, "T")
	if hasT && timePart == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}

	var total time.Duration
	if datePart != "" {
		days, hasD := strings.CutSuffix(datePart, "D")
		n, err := strconv.Atoi(days)
		if !hasD || err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
		}
		total += time.Duration(n) * 24 * time.Hour
	}

	// Walk the time components in designator order; a unit out of order or
	// repeated finds no remaining durUnits entry and fails.
	next := 0
	for timePart != "" {
		digits := 0
		for digits < len(timePart) && timePart[digits] >= '0' && timePart[digits] <= '9' {
			digits++
		}
		if digits == 0 || digits == len(timePart) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
		}
		n, err := strconv.Atoi(timePart[:digits])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
		}

		matched := false
		for ; next < len(durUnits); next++ {
			if durUnits[next].designator == timePart[digits] {
				total += time.Duration(n) * durUnits[next].size
				next++
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
		}
		timePart = timePart[digits+1:]
	}

	return sign * total, nil
}
