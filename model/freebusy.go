// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"chronoical/icaldur"
)

// FreeBusyStatus represents the possible values for a VFREEBUSY's FREEBUSY property.
// See: https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.6
type FreeBusyStatus string

const (
	FreeBusyStatusFree            FreeBusyStatus = "FREE"
	FreeBusyStatusBusy            FreeBusyStatus = "BUSY"
	FreeBusyStatusBusyTentative   FreeBusyStatus = "BUSY-TENTATIVE"
	FreeBusyStatusBusyUnavailable FreeBusyStatus = "BUSY-UNAVAILABLE"
)

// FreeBusy represents a VFREEBUSY component. Unlike VEVENT/VTODO/VJOURNAL,
// it does not recur: it directly lists the busy/free intervals it covers.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.4
type FreeBusy struct {
	DTStamp time.Time
	UID     string

	Contact   string
	DTStart   time.Time
	DTEnd     time.Time
	Organizer *Organizer
	URL       string

	Attendees     []icaldur.CalAddress
	Comment       []string
	FreeBusy      []FreeBusyTime
	RequestStatus []string

	Extras map[string][]string
}

// FreeBusyTime represents a single free/busy time interval with its status.
type FreeBusyTime struct {
	Start  time.Time
	End    time.Time
	Status FreeBusyStatus
}
