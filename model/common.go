// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"chronoical/icaldur"
)

// Organizer represents an ORGANIZER property, used in VEVENT, VTODO,
// VJOURNAL, and VFREEBUSY.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
type Organizer struct {
	// denoted by CN= in the spec
	CommonName string
	Address    icaldur.CalAddress
	// denoted by DIR= in the spec
	Directory string
	SentBy    string
}

// BaseComponent represents common fields found in all top level calendar
// components.
type BaseComponent struct {
	// DTStamp is technically mandatory per the spec, but real-world
	// producers routinely omit it. The parser does not enforce its
	// presence.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.2
	DTStamp time.Time

	// The unique identifier for the component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.7
	UID string

	// Sequence is used to define the revision sequence number of the component.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.4
	Sequence int

	// RecurrenceID, when set, identifies this component as a single
	// overridden instance of a recurring component sharing the same UID.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.4
	RecurrenceID *time.Time

	// Extras holds unrecognized X- and IANA properties verbatim, keyed by
	// property name, preserving source order within each key.
	Extras map[string][]string
}

// Contact is used to represent contact information
// Can be specified in Events, Todos, Journals, and FreeBusy Components
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
type Contact = string

// RecurEntry is a single RDATE/EXDATE value. The spec allows RDATE to carry
// either a DATE-TIME or a PERIOD; Period is non-nil only for the latter.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.2
type RecurEntry struct {
	Time   time.Time
	Period *icaldur.Period
}
