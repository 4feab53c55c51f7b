// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package model contains structs used throughout the project
package model

// Calendar represents a VCALENDAR component in the iCalendar format.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.4
// Documentation on the properties can be found here:
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7
type Calendar struct {
	// Required.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.4
	Version string
	// Required.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.3
	ProdID string
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.1
	CalScale string
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.7.2
	Method string

	// Non-standard but near-universal: the producer's preferred display
	// name/time zone for the whole calendar.
	XWRCalName  string
	XWRTimezone string

	TimeZones []TimeZone

	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
	Events []Event
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
	Todos []Todo
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.3
	Journals []Journal
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.4
	FreeBusys []FreeBusy

	// Extras holds unrecognized top-level X- and IANA properties.
	Extras map[string][]string

	// ExtraComponents holds the arena indices of unrecognized X- and IANA
	// components, keyed the same way as Extras (lower-cased, "-" -> "_"),
	// so their raw property lines stay reachable after parsing.
	ExtraComponents map[string][]int

	// Raw is the parsed content-line arena backing this calendar, indexed
	// by the same order components were encountered in. Lines holds the
	// original unfolded source lines, 1-indexed via RawComponent.StartLine
	// /EndLine, so OriginalICalText can slice back into the source text
	// without re-serializing anything.
	Raw   Arena
	Lines []string
}
