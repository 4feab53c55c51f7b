// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import "errors"

// Calendar-level errors.
var (
	ErrNoCalendarFound                   = errors.New("empty calendar sent")
	ErrInvalidCalendarFormatMissingBegin = errors.New("invalid calendar format: must start with BEGIN:VCALENDAR")
	ErrContentAfterEndBlock              = errors.New("content after END:VCALENDAR")
)

// Duration exclusivity errors. DTEND/DURATION (and DUE/DURATION on a
// VTODO) are mutually exclusive per the spec; a component carrying both
// has no single answer for how long it lasts, so this one is fatal.
var (
	ErrInvalidDurationPropertyDtend = errors.New("invalid duration property in iCal Event: DTEND and DURATION are mutually exclusive")
	ErrInvalidDurationPropertyDue   = errors.New("invalid duration property in iCal Todo: DUE and DURATION are mutually exclusive")
)
