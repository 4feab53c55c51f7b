// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"net/url"
	"time"

	"chronoical/icaldur"
	"chronoical/rrule"
)

// ObservanceType distinguishes a VTIMEZONE's STANDARD and DAYLIGHT
// sub-components.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type ObservanceType string

const (
	ObservanceStandard ObservanceType = "STANDARD"
	ObservanceDaylight ObservanceType = "DAYLIGHT"
)

// Observance is one STANDARD or DAYLIGHT sub-component: a rule describing
// when a particular UTC offset is in effect for the enclosing time zone.
type Observance struct {
	Type ObservanceType

	DTStart        time.Time
	TZOffsetFrom   icaldur.TZOffset
	TZOffsetTo     icaldur.TZOffset
	TZName         []string
	Comment        []string

	RRule  *rrule.RRule
	RDates []time.Time
}

// TimeZone represents a VTIMEZONE component in the iCalendar format.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type TimeZone struct {
	// Represented by TZID.
	// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3.1
	TimeZoneID string

	LastMod time.Time
	TZURL   *url.URL

	// Observances holds the STANDARD/DAYLIGHT sub-components in source
	// order; tzresolve uses them to build the transition table.
	Observances []Observance
}
