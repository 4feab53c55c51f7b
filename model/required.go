// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import "time"

// The parser deliberately does not reject components missing properties the
// RFC marks as required: real-world feeds omit them all the time, and a
// caller reading only SUMMARY lines shouldn't be blocked by a missing
// DTSTART three events down. The Must* getters below are the checked
// accessors for callers that do need those fields; each returns a
// MissingRequiredPropertyError when the property was absent.

// MustUID returns the event's UID.
func (e *Event) MustUID() (string, error) {
	if e.UID == "" {
		return "", &MissingRequiredPropertyError{Component: string(SectionTokenVEvent), Property: "UID"}
	}
	return e.UID, nil
}

// MustStart returns the event's DTSTART.
func (e *Event) MustStart() (time.Time, error) {
	if e.Start.IsZero() {
		return time.Time{}, &MissingRequiredPropertyError{Component: string(SectionTokenVEvent), Property: "DTSTART"}
	}
	return e.Start, nil
}

// MustUID returns the todo's UID.
func (t *Todo) MustUID() (string, error) {
	if t.UID == "" {
		return "", &MissingRequiredPropertyError{Component: string(SectionTokenVTodo), Property: "UID"}
	}
	return t.UID, nil
}

// MustStart returns the todo's DTSTART.
func (t *Todo) MustStart() (time.Time, error) {
	if t.DTStart.IsZero() {
		return time.Time{}, &MissingRequiredPropertyError{Component: string(SectionTokenVTodo), Property: "DTSTART"}
	}
	return t.DTStart, nil
}

// MustUID returns the journal's UID.
func (j *Journal) MustUID() (string, error) {
	if j.UID == "" {
		return "", &MissingRequiredPropertyError{Component: string(SectionTokenVJournal), Property: "UID"}
	}
	return j.UID, nil
}

// MustVersion returns the calendar's VERSION.
func (c *Calendar) MustVersion() (string, error) {
	if c.Version == "" {
		return "", &MissingRequiredPropertyError{Component: string(SectionTokenVCalendar), Property: "VERSION"}
	}
	return c.Version, nil
}

// MustProdID returns the calendar's PRODID.
func (c *Calendar) MustProdID() (string, error) {
	if c.ProdID == "" {
		return "", &MissingRequiredPropertyError{Component: string(SectionTokenVCalendar), Property: "PRODID"}
	}
	return c.ProdID, nil
}
