// Package model contains data structures representing iCalendar components.
//
// These types are produced by the parse package and are designed for
// readability. The package reflects RFC 5545 concepts while remaining
// ergonomic in Go. Whole-calendar operations (Timeline, Localise,
// OriginalICalText) live in the root chronoical package instead of as
// methods here, so that individual component types never need a pointer
// back to the Calendar that contains them.
package model
