// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import "time"

// Timespan is a half-open interval [Start, End) in absolute (already
// localized) time. The half-open convention means a timespan ending at the
// same instant another begins does not overlap it, which matches how
// back-to-back meetings are expected to behave.
type Timespan struct {
	Start time.Time
	End   time.Time
}

// Duration returns End minus Start. Point-in-time spans (DTSTART with no
// DTEND/DURATION) have a zero duration.
func (t Timespan) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// Contains reports whether instant falls within [Start, End). A zero-width
// timespan contains exactly its Start instant.
func (t Timespan) Contains(instant time.Time) bool {
	if t.Start.Equal(t.End) {
		return instant.Equal(t.Start)
	}
	return !instant.Before(t.Start) && instant.Before(t.End)
}

// Overlaps reports whether t and other share any instant.
func (t Timespan) Overlaps(other Timespan) bool {
	if t.Start.Equal(t.End) {
		return other.Contains(t.Start)
	}
	return t.Start.Before(other.End) && other.Start.Before(t.End)
}

// Before reports whether t ends at or before other begins.
func (t Timespan) Before(other Timespan) bool {
	return !t.End.After(other.Start)
}
