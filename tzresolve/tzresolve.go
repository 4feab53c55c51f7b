// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tzresolve turns a calendar's VTIMEZONE definitions into a
// transition table per TZID and localizes floating DATE-TIME values
// against it, without depending on the host's IANA time zone database —
// VTIMEZONE is self-describing, so a calendar should localize the same
// way wherever it's read.
package tzresolve

import (
	"sort"
	"sync"
	"time"

	"chronoical/model"
)

// transition marks the wall-clock instant (in the VTIMEZONE's own floating
// timeline) at which a new UTC offset takes effect. loc is built once per
// observance when the table is constructed, so every Localise call for the
// same TZID hands out the identical *time.Location — times localized here
// stay comparable with == and usable as map keys.
type transition struct {
	start time.Time
	loc   *time.Location
}

// Resolver resolves floating date-times against a fixed set of VTIMEZONE
// definitions, memoizing the transition table it builds per TZID.
type Resolver struct {
	zones       map[string]model.TimeZone
	transitions sync.Map // TZID -> []transition
}

// New builds a Resolver over the VTIMEZONE components of a calendar.
func New(zones []model.TimeZone) *Resolver {
	r := &Resolver{zones: make(map[string]model.TimeZone, len(zones))}
	for _, z := range zones {
		r.zones[z.TimeZoneID] = z
	}
	return r
}

// GetTimezone returns the VTIMEZONE definition for tzid.
func (r *Resolver) GetTimezone(tzid string) (*model.TimeZone, error) {
	tz, ok := r.zones[tzid]
	if !ok {
		return nil, &model.UnknownTimezoneError{TZID: tzid}
	}
	return &tz, nil
}

// Localise attaches the correct UTC offset to a floating (zone-less) wall
// clock time, given the observance in effect for tzid at that moment.
func (r *Resolver) Localise(tzid string, floating time.Time) (time.Time, error) {
	transitions, err := r.transitionsFor(tzid)
	if err != nil {
		return time.Time{}, err
	}
	if len(transitions) == 0 {
		return floating.In(time.UTC), nil
	}

	idx := sort.Search(len(transitions), func(i int) bool {
		return transitions[i].start.After(floating)
	})
	active := transitions[0]
	if idx > 0 {
		active = transitions[idx-1]
	}

	return time.Date(floating.Year(), floating.Month(), floating.Day(),
		floating.Hour(), floating.Minute(), floating.Second(), floating.Nanosecond(), active.loc), nil
}

func (r *Resolver) transitionsFor(tzid string) ([]transition, error) {
	if cached, ok := r.transitions.Load(tzid); ok {
		return cached.([]transition), nil
	}
	tz, ok := r.zones[tzid]
	if !ok {
		return nil, &model.UnknownTimezoneError{TZID: tzid}
	}

	built := buildTransitions(tz)
	actual, _ := r.transitions.LoadOrStore(tzid, built)
	return actual.([]transition), nil
}

// horizon bounds how far forward an observance's recurrence is expanded
// to build the transition table; VTIMEZONE rules are effectively unbounded
// (DST rules repeat "forever"), so this is an intentional cutoff rather
// than a true endpoint.
var horizon = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)

func buildTransitions(tz model.TimeZone) []transition {
	var out []transition
	for _, obs := range tz.Observances {
		name := ""
		if len(obs.TZName) > 0 {
			name = obs.TZName[0]
		}
		loc := obs.TZOffsetTo.Location(name)

		starts := []time.Time{obs.DTStart}
		if obs.RRule != nil {
			occurrences, err := obs.RRule.Occurrences(obs.DTStart, horizon)
			if err == nil {
				starts = occurrences
			}
		}
		starts = append(starts, obs.RDates...)

		for _, s := range starts {
			out = append(out, transition{start: s, loc: loc})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start.Before(out[j].start) })
	return out
}
