// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"chronoical/rrule"
)

// Recurring is implemented by every component that can stand for more than
// one occurrence on a calendar: Event, Todo, and Journal. The recur
// package expands instances purely in terms of this interface, so it never
// needs to know which concrete component it is looking at.
type Recurring interface {
	RecurUID() string
	RecurDTStart() time.Time
	RecurDuration() time.Duration
	RecurRRule() *rrule.RRule
	RecurRDates() []RecurEntry
	RecurExDates() []time.Time
	RecurRecurrenceID() *time.Time
}
