// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package chronoical parses RFC 5545 iCalendar streams and exposes a
// chronologically ordered view of their occurrences after recurrence
// expansion.
//
// Whole-calendar operations live here as free functions over
// *model.Calendar rather than as methods on the component types, so that
// individual components never need a pointer back to the calendar that
// owns them.
package chronoical

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"chronoical/model"
	"chronoical/parse"
	"chronoical/timeline"
	"chronoical/tzresolve"
)

// Default query range for Timeline: recurring components are expanded
// between these bounds unless the caller narrows them with
// LimitedTimeline.
var (
	DefaultRangeStart = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultRangeEnd   = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Parse reads iCalendar text from r and builds the typed calendar.
// Structural problems fail fast; value-level problems surface when the
// affected value is projected or read.
func Parse(r io.Reader) (*model.Calendar, error) {
	return parse.Parse(r)
}

// ParseString parses iCalendar text held in a string.
func ParseString(input string) (*model.Calendar, error) {
	return parse.ParseString(input)
}

// Timeline expands every component of cal over the default range and
// returns the merged chronological view.
func Timeline(cal *model.Calendar) (*timeline.Timeline, error) {
	return LimitedTimeline(cal, DefaultRangeStart, DefaultRangeEnd)
}

// LimitedTimeline expands every component of cal over the half-open range
// [start, end).
func LimitedTimeline(cal *model.Calendar, start, end time.Time) (*timeline.Timeline, error) {
	return timeline.Build(cal, model.Timespan{Start: start, End: end})
}

// GetTimezone returns the VTIMEZONE definition for tzid, or an
// UnknownTimezoneError when cal does not define it.
func GetTimezone(cal *model.Calendar, tzid string) (*model.TimeZone, error) {
	return tzresolve.New(cal.TimeZones).GetTimezone(tzid)
}

// Localise resolves a floating wall-clock time against one of cal's own
// VTIMEZONE definitions. Already-localised inputs come back unchanged
// apart from carrying the zone's offset, so localising twice is the same
// as localising once.
func Localise(cal *model.Calendar, dt time.Time, tzid string) (time.Time, error) {
	return tzresolve.New(cal.TimeZones).Localise(tzid, dt)
}

// OriginalICalText returns the verbatim logical lines of the source text
// between startLine and endLine inclusive (1-based, as recorded on each
// RawComponent's StartLine/EndLine), joined with CRLF. Folded physical
// lines were already rejoined by the parser, so the slice is in logical
// lines, matching the recorded ranges.
func OriginalICalText(cal *model.Calendar, startLine, endLine int) (string, error) {
	if startLine < 1 || endLine > len(cal.Lines) || startLine > endLine {
		return "", &model.ParseError{Message: "line range out of bounds"}
	}
	return strings.Join(cal.Lines[startLine-1:endLine], "\r\n"), nil
}

// NewUID returns a fresh globally unique identifier suitable for a
// component's UID property.
func NewUID() string {
	return uuid.NewString() + "@chronoical"
}
