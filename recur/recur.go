// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package recur expands a model.Recurring component (VEVENT, VTODO, or
// VJOURNAL) into the concrete Timespans it stands for within a bounded
// range. RRULE iteration itself is delegated to the rrule package; this
// package owns merging RRULE with RDATE, applying EXDATE, and giving each
// occurrence the length reported by the component's RecurDuration.
package recur

import (
	"sort"
	"time"

	"chronoical/model"
)

// lookaheadGuard caps RRULE iteration at DTSTART plus ten years when the
// query range has no end (or ends before DTSTART), so an unbounded rule
// still terminates. RRULE instances past that cap are not produced.
const lookaheadGuard = 10 * 365 * 24 * time.Hour

// Expand returns every occurrence of rec that intersects rng, sorted by
// start. Each occurrence spans [start, start+duration), except RDATE
// entries declared as a PERIOD, which keep the period's own end. excluded
// holds instants that an outside caller wants removed on top of the
// component's own EXDATE set; the timeline package passes the start times
// of RECURRENCE-ID overrides here so the base series does not double-emit
// at those instants.
//
// Priority: an RDATE at the same instant as an RRULE-generated start wins
// (its period length applies); EXDATE and excluded dominate both. The base
// DTSTART occurrence is always a candidate, whether or not the RRULE
// pattern would regenerate it.
//
// Instants are matched by absolute time: DTSTART, RDATE, EXDATE, and
// excluded entries are each parsed from separate property lines and may
// carry distinct *time.Location values for the same moment, and time.Time
// equality (which map keys use) also compares the location pointer. Every
// key is therefore normalized to UTC before insertion or deletion.
func Expand(rec model.Recurring, rng model.Timespan, excluded map[time.Time]bool) ([]model.Timespan, error) {
	dtstart := rec.RecurDTStart()
	if dtstart.IsZero() {
		return nil, nil
	}
	duration := rec.RecurDuration()

	// normalized start -> occurrence span
	occurrences := map[time.Time]model.Timespan{}
	put := func(start, end time.Time) {
		occurrences[start.UTC()] = model.Timespan{Start: start, End: end}
	}

	if rr := rec.RecurRRule(); rr != nil {
		limit := rng.End
		if limit.IsZero() || limit.Before(dtstart) {
			limit = dtstart.Add(lookaheadGuard)
		}
		generated, err := rr.Occurrences(dtstart, limit)
		if err != nil {
			return nil, err
		}
		for _, occ := range generated {
			put(occ, occ.Add(duration))
		}
	}
	put(dtstart, dtstart.Add(duration))

	// RDATE wins over an RRULE-generated start at the same instant, so a
	// PERIOD entry's own length replaces the component duration.
	for _, rd := range rec.RecurRDates() {
		if rd.Period != nil {
			put(rd.Period.Start, rd.Period.End)
			continue
		}
		put(rd.Time, rd.Time.Add(duration))
	}

	for _, ex := range rec.RecurExDates() {
		delete(occurrences, ex.UTC())
	}
	for instant, drop := range excluded {
		if drop {
			delete(occurrences, instant.UTC())
		}
	}

	out := make([]model.Timespan, 0, len(occurrences))
	for _, span := range occurrences {
		if !spanIntersects(span, rng) {
			continue
		}
		out = append(out, span)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// spanIntersects applies half-open overlap on both sides: a span ending
// exactly when the range begins does not intersect it. A zero-width span
// (a point event) intersects when the point itself is inside the range.
func spanIntersects(span, rng model.Timespan) bool {
	if !rng.Start.IsZero() {
		if span.Start.Equal(span.End) {
			if span.Start.Before(rng.Start) {
				return false
			}
		} else if !span.End.After(rng.Start) {
			return false
		}
	}
	if !rng.End.IsZero() && !span.Start.Before(rng.End) {
		return false
	}
	return true
}

// MaxEnd returns the last instant an occurrence of rec could end at or
// before horizon: a COUNT below 1000 resolves exactly, UNTIL gives UNTIL
// plus the duration, and unbounded rules (or larger COUNTs) return horizon
// itself as an advisory upper bound, since an infinite rule has no true
// maximum. RDATE entries are taken into account in every case. The
// returned instant is never before the true last occurrence end, which is
// all the timeline's pre-filter needs.
func MaxEnd(rec model.Recurring, horizon time.Time) time.Time {
	dtstart := rec.RecurDTStart()
	duration := rec.RecurDuration()
	end := dtstart.Add(duration)
	for _, rd := range rec.RecurRDates() {
		candidate := rd.Time.Add(duration)
		if rd.Period != nil {
			candidate = rd.Period.End
		}
		if candidate.After(end) {
			end = candidate
		}
	}
	rr := rec.RecurRRule()
	if rr == nil {
		return end
	}
	ruleEnd := horizon
	if rr.Until != nil {
		ruleEnd = rr.Until.Add(duration)
	} else if rr.Count != nil && *rr.Count < 1000 {
		// All exhausts the COUNT with no time cap, so the estimate cannot
		// undershoot even for sparse rules (e.g. FREQ=YEARLY;COUNT=20).
		occurrences, err := rr.All(dtstart)
		if err == nil && len(occurrences) > 0 {
			ruleEnd = occurrences[len(occurrences)-1].Add(duration)
		}
	}
	if end.After(ruleEnd) {
		return end
	}
	return ruleEnd
}
