// Package model contains structs used throughout the project
package model

import (
	"time"

	"chronoical/icaldur"
	"chronoical/rrule"
)

// EventStatus represents the possible values for a VEVENT's STATUS field.
// Note VTODO's STATUS field accepts different values, see TodoStatus.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusTentative EventStatus = "TENTATIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// EventTransp represents the possible values for a VEVENT's TRANSP field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.7
type EventTransp string

const (
	EventTranspOpaque      EventTransp = "OPAQUE"
	EventTranspTransparent EventTransp = "TRANSPARENT"
)

// Event represents a VEVENT component.
// for more information see https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
type Event struct {
	BaseComponent

	// a short, one-line summary about the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.12
	Summary string
	// Used to capture lengthy textual descriptions associated with the activity.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.5
	Description string
	// dtstart in the ICAL format
	// See the datetime specification for more information: https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
	Start time.Time
	// dtend in the ICAL format. Zero when the event instead carries a
	// Duration; DTEND and DURATION are mutually exclusive per the spec.
	// See the datetime specification for more information: https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.5
	End      time.Time
	Duration time.Duration

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.7
	Location string

	// Represented by TZID in the spec.
	// The time zone identifier for the time zone used by DTSTART/DTEND.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.1
	TimeZoneId string

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
	// defines the overall status or confirmation for the calendar component.
	Status EventStatus
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.7
	Transp EventTransp
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.3
	Class string

	Created      time.Time
	LastModified time.Time
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.9
	Priority int

	Organizer *Organizer
	Attendees []icaldur.CalAddress
	Contact   string
	URL       string
	Geo       *icaldur.Geo

	Categories    []string
	Comment       []string
	Attach        []string
	Related       []string
	RequestStatus []string

	// RRule defines the recurrence rule, at most once per the spec.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.3
	RRule   *rrule.RRule
	RDates  []RecurEntry
	ExDates []time.Time

	// Sub-components: VALARM.
	Alarms []Alarm
}

func (e *Event) RecurUID() string              { return e.UID }
func (e *Event) RecurDTStart() time.Time       { return e.Start }
// RecurDuration returns DTEND minus DTSTART when DTEND is set, otherwise the
// DURATION value (zero when neither is present).
func (e *Event) RecurDuration() time.Duration {
	if !e.End.IsZero() && !e.Start.IsZero() {
		return e.End.Sub(e.Start)
	}
	return e.Duration
}
func (e *Event) RecurRRule() *rrule.RRule      { return e.RRule }
func (e *Event) RecurRDates() []RecurEntry     { return e.RDates }
func (e *Event) RecurExDates() []time.Time     { return e.ExDates }
func (e *Event) RecurRecurrenceID() *time.Time { return e.RecurrenceID }
