// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"chronoical/icaldur"
	"chronoical/rrule"
)

// JournalStatus represents the possible values for a VJOURNAL's STATUS field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type JournalStatus string

const (
	JournalStatusDraft     JournalStatus = "DRAFT"
	JournalStatusFinal     JournalStatus = "FINAL"
	JournalStatusCancelled JournalStatus = "CANCELLED"
)

// JournalClass represents the possible values for a VJOURNAL's CLASS field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.3
type JournalClass string

const (
	JournalClassPublic       JournalClass = "PUBLIC"
	JournalClassPrivate      JournalClass = "PRIVATE"
	JournalClassConfidential JournalClass = "CONFIDENTIAL"
)

// Journal represents a VJOURNAL component in the iCalendar format. A
// journal entry does not take up time on a calendar; its DTStart is a
// point in time, never a span.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.3
type Journal struct {
	BaseComponent

	Class        JournalClass
	Created      time.Time
	DTStart      time.Time
	LastModified time.Time
	Organizer    *Organizer
	Status       JournalStatus
	Summary      string
	URL          string

	RRule   *rrule.RRule
	RDates  []RecurEntry
	ExDates []time.Time

	Attach        []string
	Attendees     []icaldur.CalAddress
	Categories    []string
	Comment       []string
	Contacts      []string
	Description   []string
	Related       []string
	RequestStatus []string
}

func (j *Journal) RecurUID() string              { return j.UID }
func (j *Journal) RecurDTStart() time.Time       { return j.DTStart }
func (j *Journal) RecurDuration() time.Duration  { return 0 }
func (j *Journal) RecurRRule() *rrule.RRule      { return j.RRule }
func (j *Journal) RecurRDates() []RecurEntry     { return j.RDates }
func (j *Journal) RecurExDates() []time.Time     { return j.ExDates }
func (j *Journal) RecurRecurrenceID() *time.Time { return j.RecurrenceID }
