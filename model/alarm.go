// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"chronoical/icaldur"
)

// AlarmAction represents the possible values for a VALARM's ACTION field.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.1
type AlarmAction string

const (
	AlarmActionAudio     AlarmAction = "AUDIO"
	AlarmActionDisplay   AlarmAction = "DISPLAY"
	AlarmActionEmail     AlarmAction = "EMAIL"
	AlarmActionProcedure AlarmAction = "PROCEDURE"
)

// Alarm represents a VALARM sub-component of VEVENT or VTODO.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.6
type Alarm struct {
	Action  AlarmAction
	Trigger icaldur.Trigger

	Attach []string
	// Duration is the DURATION property, the delay between repeats; zero
	// when DURATION is absent. The parser keeps DURATION without REPEAT (or
	// REPEAT without DURATION) as read, logging only a warning.
	Duration    time.Duration
	Description []string
	Repeat      int
	Summary     string

	Attendees []icaldur.CalAddress

	Extras map[string][]string
}
