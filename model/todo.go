// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"chronoical/icaldur"
	"chronoical/rrule"
)

// TodoStatus represents the possible values for a VTODO's STATUS field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type TodoStatus string

const (
	TodoStatusNeedsAction TodoStatus = "NEEDS-ACTION"
	TodoStatusCompleted   TodoStatus = "COMPLETED"
	TodoStatusInProcess   TodoStatus = "IN-PROCESS"
	TodoStatusCancelled   TodoStatus = "CANCELLED"
)

// TodoTransp mirrors EventTransp for VTODO's TRANSP property.
type TodoTransp string

const (
	TodoTranspOpaque      TodoTransp = "OPAQUE"
	TodoTranspTransparent TodoTransp = "TRANSPARENT"
)

// Todo represents a VTODO component in the iCalendar format.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
type Todo struct {
	BaseComponent

	Class       string
	Completed   time.Time
	Created     time.Time
	Description []string
	DTStart     time.Time

	// Due and Duration are mutually exclusive.
	Due      time.Time
	Duration time.Duration

	Geo             *icaldur.Geo
	LastModified    time.Time
	Location        string
	Organizer       *Organizer
	PercentComplete int
	Priority        int
	Status          TodoStatus
	Summary         string
	Transp          TodoTransp
	URL             string

	Attach         []string
	Attendees      []icaldur.CalAddress
	Categories     []string
	Comment        []string
	Contacts       []string
	ExceptionDates []time.Time
	Related        []string
	RequestStatus  []string
	Resources      []string

	RRule  *rrule.RRule
	RDates []RecurEntry

	// Sub-components: VALARM.
	Alarms []Alarm
}

func (t *Todo) RecurUID() string        { return t.UID }
func (t *Todo) RecurDTStart() time.Time { return t.DTStart }

// RecurDuration returns Duration directly when set; otherwise, if Due is
// set, the implied duration between DTStart and Due.
func (t *Todo) RecurDuration() time.Duration {
	if t.Duration != 0 {
		return t.Duration
	}
	if !t.Due.IsZero() && !t.DTStart.IsZero() {
		return t.Due.Sub(t.DTStart)
	}
	return 0
}

func (t *Todo) RecurRRule() *rrule.RRule      { return t.RRule }
func (t *Todo) RecurRDates() []RecurEntry     { return t.RDates }
func (t *Todo) RecurExDates() []time.Time     { return t.ExceptionDates }
func (t *Todo) RecurRecurrenceID() *time.Time { return t.RecurrenceID }
