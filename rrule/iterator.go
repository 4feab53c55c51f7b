package rrule

import (
	"sort"
	"time"

	extrrule "github.com/teambition/rrule-go"
)

// Occurrences drives the underlying RFC 5545 iterator (via
// github.com/teambition/rrule-go) from dtstart through limit inclusive,
// returning the generated start instants in ascending order. RDATE values
// are not included here — callers merge those in separately, per the
// recurrence engine's priority rules.
//
// When r.ByEaster is set the rule is instead expanded by EasterOccurrences,
// since rrule-go has no BYEASTER support.
func (r *RRule) Occurrences(dtstart, limit time.Time) ([]time.Time, error) {
	if len(r.ByEaster) > 0 {
		return EasterOccurrences(r, dtstart, limit), nil
	}

	opt, err := r.ToROption(dtstart)
	if err != nil {
		return nil, err
	}
	rule, err := extrrule.NewRRule(*opt)
	if err != nil {
		return nil, err
	}

	set := &extrrule.Set{}
	set.RRule(rule)

	return set.Between(dtstart, limit, true), nil
}

// All returns every instant the rule generates from dtstart, with no time
// cap: COUNT or UNTIL is the only stopping condition, so even a sparse
// rule (FREQ=YEARLY;COUNT=20 spans two decades) is exhausted completely.
// Only valid for bounded rules; an unbounded rule falls back to a single
// instant at dtstart rather than iterating forever.
func (r *RRule) All(dtstart time.Time) ([]time.Time, error) {
	if r.Count == nil && r.Until == nil {
		return []time.Time{dtstart}, nil
	}
	if len(r.ByEaster) > 0 {
		return EasterOccurrences(r, dtstart, easterLimit(r, dtstart)), nil
	}

	opt, err := r.ToROption(dtstart)
	if err != nil {
		return nil, err
	}
	rule, err := extrrule.NewRRule(*opt)
	if err != nil {
		return nil, err
	}
	return rule.All(), nil
}

// easterLimit picks a year horizon wide enough that a bounded BYEASTER
// rule exhausts its COUNT (each qualifying year yields one instant per
// offset) or reaches its UNTIL.
func easterLimit(r *RRule, dtstart time.Time) time.Time {
	if r.Until != nil {
		return *r.Until
	}
	perYear := len(r.ByEaster)
	interval := r.Interval
	if interval <= 0 {
		interval = 1
	}
	years := (*r.Count/perYear + 2) * interval
	return dtstart.AddDate(years, 0, 0)
}

// EasterOccurrences expands the non-standard BYEASTER extension: for each
// year from dtstart's year forward (respecting INTERVAL on a YEARLY
// cadence), compute Easter Sunday and emit dtstart's time-of-day on each
// (Easter + offset) day, honoring COUNT/UNTIL.
func EasterOccurrences(r *RRule, dtstart, limit time.Time) []time.Time {
	var out []time.Time
	year := dtstart.Year()
	interval := r.Interval
	if interval <= 0 {
		interval = 1
	}

	for {
		easter := easterSunday(year)
		for _, offset := range r.ByEaster {
			day := easter.AddDate(0, 0, offset)
			instant := time.Date(day.Year(), day.Month(), day.Day(),
				dtstart.Hour(), dtstart.Minute(), dtstart.Second(), 0, dtstart.Location())
			if instant.Before(dtstart) {
				continue
			}
			if r.Until != nil && instant.After(*r.Until) {
				continue
			}
			if instant.After(limit) {
				continue
			}
			out = append(out, instant)
		}
		year += interval

		if r.Count != nil && len(out) >= *r.Count {
			break
		}
		if r.Until != nil && time.Date(year, 1, 1, 0, 0, 0, 0, dtstart.Location()).After(*r.Until) {
			break
		}
		if r.Count == nil && r.Until == nil && time.Date(year, 1, 1, 0, 0, 0, 0, dtstart.Location()).After(limit) {
			break
		}
		if year-dtstart.Year() > 2000 {
			// Hard stop: no amount of valid input should need this many years.
			break
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	if r.Count != nil && len(out) > *r.Count {
		out = out[:*r.Count]
	}
	return out
}

// easterSunday computes the Gregorian Easter Sunday for year using the
// anonymous Gregorian algorithm (Meeus/Jones/Butcher).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
