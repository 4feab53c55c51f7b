package parse

import (
	"strings"
	"time"

	"chronoical/icaldur"
	"chronoical/model"
	"chronoical/tzresolve"
)

// converter carries the state the projection pass needs to turn raw
// property values into typed ones: the time zone resolver built from the
// calendar's own VTIMEZONE definitions.
type converter struct {
	resolver *tzresolve.Resolver
}

// parseTime converts a DATE or DATE-TIME property into a time.Time,
// honoring the VALUE parameter, the UTC "Z" designator, and the TZID
// parameter. A TZID referencing a VTIMEZONE that is not in this calendar
// is a parse-time error on the affected line; a floating value (no Z, no
// TZID) keeps its wall-clock fields unresolved.
func (c *converter) parseTime(p model.RawProperty) (time.Time, error) {
	if p.Params["VALUE"] == "DATE" {
		t, err := icaldur.ParseDate(p.Value)
		if err != nil {
			return time.Time{}, &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
		}
		return t, nil
	}

	dt, err := icaldur.ParseDateTime(p.Value)
	if err != nil {
		return time.Time{}, &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
	}
	if dt.UTC {
		return dt.Time, nil
	}
	if tzid := p.Params["TZID"]; tzid != "" {
		localized, err := c.resolver.Localise(tzid, dt.Time)
		if err != nil {
			return time.Time{}, &model.ParseError{Line: p.Line, Message: "cannot localise " + p.Name, Err: err}
		}
		return localized, nil
	}
	return dt.Time, nil
}

// parseTimeList converts a comma-separated DATE/DATE-TIME list property
// (EXDATE, multi-valued RDATE) into its instants, in document order.
func (c *converter) parseTimeList(p model.RawProperty) ([]time.Time, error) {
	values := strings.Split(p.Value, ",")
	out := make([]time.Time, 0, len(values))
	for _, v := range values {
		entry := p
		entry.Value = v
		t, err := c.parseTime(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// parseRecurEntries converts an RDATE property into RecurEntry values.
// VALUE=PERIOD entries keep their own period so the recurrence engine can
// give the occurrence the period's length instead of the component's.
func (c *converter) parseRecurEntries(p model.RawProperty) ([]model.RecurEntry, error) {
	if p.Params["VALUE"] != "PERIOD" {
		times, err := c.parseTimeList(p)
		if err != nil {
			return nil, err
		}
		entries := make([]model.RecurEntry, 0, len(times))
		for _, t := range times {
			entries = append(entries, model.RecurEntry{Time: t})
		}
		return entries, nil
	}

	values := strings.Split(p.Value, ",")
	entries := make([]model.RecurEntry, 0, len(values))
	for _, v := range values {
		period, err := icaldur.ParsePeriod(v)
		if err != nil {
			return nil, &model.InvalidValueError{Property: p.Name, Value: v, Err: err}
		}
		entries = append(entries, model.RecurEntry{Time: period.Start, Period: &period})
	}
	return entries, nil
}
