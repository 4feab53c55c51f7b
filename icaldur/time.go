package icaldur

import "time"

// iCalDateTimeFormat represents the standard iCal datetime format
// Format: YYYYMMDDTHHMMSSZ (e.g., 20250928T183000Z).
const iCalDateTimeFormat = "20060102T150405Z"

// iCalDateTimeFloatingFormat is the same layout without the trailing Z, used
// for floating local times and for values where no UTC designator is present.
const iCalDateTimeFloatingFormat = "20060102T150405"

// ParseIcalTime parses a DATE-TIME value that is expected to carry the UTC
// designator, falling back to the floating layout for callers (e.g. RRULE's
// UNTIL when paired with a floating DTSTART) that pass one without it.
func ParseIcalTime(value string) (time.Time, error) {
	if t, err := time.Parse(iCalDateTimeFormat, value); err == nil {
		return t, nil
	}
	return time.Parse(iCalDateTimeFloatingFormat, value)
}
