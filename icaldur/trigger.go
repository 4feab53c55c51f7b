package icaldur

import (
	"time"
)

// TriggerRelated is the RELATED= parameter of a TRIGGER property.
type TriggerRelated string

const (
	TriggerRelatedStart TriggerRelated = "START"
	TriggerRelatedEnd   TriggerRelated = "END"
)

// Trigger is a typed TRIGGER value: either a signed duration relative to
// the alarm's owning component, or an absolute DATE-TIME.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.3
type Trigger struct {
	// Duration is set when VALUE is DURATION (the default).
	Duration time.Duration
	// Absolute is set when VALUE=DATE-TIME.
	Absolute time.Time
	// IsAbsolute distinguishes the two forms.
	IsAbsolute bool
	// Related is START (default) or END, meaningful only when !IsAbsolute.
	Related TriggerRelated
}

// ParseTrigger parses a TRIGGER property value plus its VALUE/RELATED
// parameters.
func ParseTrigger(value string, params map[string]string) (Trigger, error) {
	related := TriggerRelated(params["RELATED"])
	if related == "" {
		related = TriggerRelatedStart
	}

	if params["VALUE"] == "DATE-TIME" {
		dt, err := ParseDateTime(value)
		if err != nil {
			return Trigger{}, err
		}
		return Trigger{Absolute: dt.Time, IsAbsolute: true}, nil
	}

	dur, err := ParseICalDuration(value)
	if err != nil {
		return Trigger{}, err
	}
	return Trigger{Duration: dur, Related: related}, nil
}
