// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package timeline merges every occurrence of every component in a
// calendar into a single chronologically ordered stream. It is the
// engine behind the root package's Timeline/LimitedTimeline operations.
package timeline

import (
	"sort"
	"time"

	"chronoical/model"
	"chronoical/recur"
)

// EntryKind identifies which kind of component an Entry was produced from.
type EntryKind string

const (
	EntryKindEvent    EntryKind = "EVENT"
	EntryKindTodo     EntryKind = "TODO"
	EntryKindJournal  EntryKind = "JOURNAL"
	EntryKindFreeBusy EntryKind = "FREEBUSY"
)

// Entry is one occurrence on the timeline: a span plus a reference back to
// the component it came from. Exactly one of the typed fields is set,
// matching Kind.
type Entry struct {
	Kind EntryKind
	UID  string
	Span model.Timespan

	Event    *model.Event
	Todo     *model.Todo
	Journal  *model.Journal
	FreeBusy *model.FreeBusyTime
}

// Timeline is a fully materialized, chronologically sorted view of a
// calendar's occurrences over some range.
type Timeline struct {
	rng     model.Timespan
	entries []Entry
}

// Build expands every recurring and non-recurring component in cal that
// intersects rng (a zero Timespan means unbounded) and merges the results
// into a single Timeline. Components whose advisory MaxEnd falls before
// the range are skipped without expansion. VTIMEZONE components are never
// emitted.
func Build(cal *model.Calendar, rng model.Timespan) (*Timeline, error) {
	var streams [][]Entry

	eventStream, err := expandEvents(cal.Events, rng)
	if err != nil {
		return nil, err
	}
	streams = append(streams, eventStream)

	todoStream, err := expandTodos(cal.Todos, rng)
	if err != nil {
		return nil, err
	}
	streams = append(streams, todoStream)

	journalStream, err := expandJournals(cal.Journals, rng)
	if err != nil {
		return nil, err
	}
	streams = append(streams, journalStream)

	streams = append(streams, expandFreeBusy(cal.FreeBusys, rng))

	return &Timeline{rng: rng, entries: mergeSorted(streams)}, nil
}

// skipByMaxEnd reports whether a component's advisory upper bound ends
// before the query range even begins, letting Build skip the expansion
// entirely. The estimator is allowed to overshoot, never undershoot, so a
// false here is always safe.
func skipByMaxEnd(rec model.Recurring, rng model.Timespan) bool {
	if rng.Start.IsZero() {
		return false
	}
	horizon := rng.End
	if horizon.IsZero() {
		horizon = rng.Start.AddDate(1000, 0, 0)
	}
	return recur.MaxEnd(rec, horizon).Before(rng.Start)
}

func expandEvents(events []model.Event, rng model.Timespan) ([]Entry, error) {
	masters := map[string]*model.Event{}
	overrides := map[string][]*model.Event{}
	for i := range events {
		e := &events[i]
		if e.RecurrenceID != nil {
			overrides[e.UID] = append(overrides[e.UID], e)
			continue
		}
		masters[e.UID] = e
	}

	var out []Entry
	for uid, master := range masters {
		if skipByMaxEnd(master, rng) {
			continue
		}
		excluded := map[time.Time]bool{}
		for _, ov := range overrides[uid] {
			excluded[*ov.RecurrenceID] = true
		}
		spans, err := recur.Expand(master, rng, excluded)
		if err != nil {
			return nil, err
		}
		for _, s := range spans {
			out = append(out, Entry{Kind: EntryKindEvent, UID: uid, Span: s, Event: master})
		}
	}
	for uid, ovs := range overrides {
		for _, ov := range ovs {
			span := model.Timespan{Start: ov.Start, End: ov.Start.Add(ov.RecurDuration())}
			if !spanInRange(span, rng) {
				continue
			}
			out = append(out, Entry{Kind: EntryKindEvent, UID: uid, Span: span, Event: ov})
		}
	}
	sortEntries(out)
	return out, nil
}

func expandTodos(todos []model.Todo, rng model.Timespan) ([]Entry, error) {
	masters := map[string]*model.Todo{}
	overrides := map[string][]*model.Todo{}
	for i := range todos {
		td := &todos[i]
		if td.RecurrenceID != nil {
			overrides[td.UID] = append(overrides[td.UID], td)
			continue
		}
		masters[td.UID] = td
	}

	var out []Entry
	for uid, master := range masters {
		if skipByMaxEnd(master, rng) {
			continue
		}
		excluded := map[time.Time]bool{}
		for _, ov := range overrides[uid] {
			excluded[*ov.RecurrenceID] = true
		}
		spans, err := recur.Expand(master, rng, excluded)
		if err != nil {
			return nil, err
		}
		for _, s := range spans {
			out = append(out, Entry{Kind: EntryKindTodo, UID: uid, Span: s, Todo: master})
		}
	}
	for uid, ovs := range overrides {
		for _, ov := range ovs {
			span := model.Timespan{Start: ov.RecurDTStart(), End: ov.RecurDTStart().Add(ov.RecurDuration())}
			if !spanInRange(span, rng) {
				continue
			}
			out = append(out, Entry{Kind: EntryKindTodo, UID: uid, Span: span, Todo: ov})
		}
	}
	sortEntries(out)
	return out, nil
}

func expandJournals(journals []model.Journal, rng model.Timespan) ([]Entry, error) {
	masters := map[string]*model.Journal{}
	overrides := map[string][]*model.Journal{}
	for i := range journals {
		j := &journals[i]
		if j.RecurrenceID != nil {
			overrides[j.UID] = append(overrides[j.UID], j)
			continue
		}
		masters[j.UID] = j
	}

	var out []Entry
	for uid, master := range masters {
		if skipByMaxEnd(master, rng) {
			continue
		}
		excluded := map[time.Time]bool{}
		for _, ov := range overrides[uid] {
			excluded[*ov.RecurrenceID] = true
		}
		spans, err := recur.Expand(master, rng, excluded)
		if err != nil {
			return nil, err
		}
		for _, s := range spans {
			out = append(out, Entry{Kind: EntryKindJournal, UID: uid, Span: s, Journal: master})
		}
	}
	for uid, ovs := range overrides {
		for _, ov := range ovs {
			span := model.Timespan{Start: ov.DTStart, End: ov.DTStart}
			if !spanInRange(span, rng) {
				continue
			}
			out = append(out, Entry{Kind: EntryKindJournal, UID: uid, Span: span, Journal: ov})
		}
	}
	sortEntries(out)
	return out, nil
}

// expandFreeBusy emits each FREEBUSY interval exactly once: VFREEBUSY
// components never recur, so there is nothing for the recur package to do
// here beyond a range check.
func expandFreeBusy(freeBusys []model.FreeBusy, rng model.Timespan) []Entry {
	var out []Entry
	for i := range freeBusys {
		fb := &freeBusys[i]
		for j := range fb.FreeBusy {
			ft := &fb.FreeBusy[j]
			span := model.Timespan{Start: ft.Start, End: ft.End}
			if !spanInRange(span, rng) {
				continue
			}
			out = append(out, Entry{Kind: EntryKindFreeBusy, UID: fb.UID, Span: span, FreeBusy: ft})
		}
	}
	sortEntries(out)
	return out
}

// spanInRange mirrors the recurrence engine's half-open intersection rule:
// a span ending exactly when the range begins is out; a zero-width span is
// in when its point lies inside the range.
func spanInRange(span, rng model.Timespan) bool {
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

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Span.Start.Before(entries[j].Span.Start) })
}

// Range returns the half-open range this timeline was built over.
func (t *Timeline) Range() model.Timespan {
	return t.rng
}

// Iterate returns every entry on the timeline in chronological order.
func (t *Timeline) Iterate() []Entry {
	return t.entries
}

// At returns every entry whose span contains instant.
func (t *Timeline) At(instant time.Time) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Span.Contains(instant) {
			out = append(out, e)
		}
	}
	return out
}

// Includes returns every entry wholly contained in [start, end).
func (t *Timeline) Includes(start, end time.Time) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if !e.Span.Start.Before(start) && !e.Span.End.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// Overlapping returns every entry sharing at least one instant with
// [start, end).
func (t *Timeline) Overlapping(start, end time.Time) []Entry {
	rng := model.Timespan{Start: start, End: end}
	var out []Entry
	for _, e := range t.entries {
		if e.Span.Overlaps(rng) {
			out = append(out, e)
		}
	}
	return out
}

// StartAfter returns every entry whose span begins strictly after instant,
// still in chronological order.
func (t *Timeline) StartAfter(instant time.Time) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Span.Start.After(instant) {
			out = append(out, e)
		}
	}
	return out
}
