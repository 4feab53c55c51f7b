package parse

import (
	"net/url"
	"strings"

	"chronoical/icaldur"
	"chronoical/model"
	"chronoical/rrule"
)

const timezoneLocation = "VTIMEZONE"

// buildTimeZone projects one VTIMEZONE raw component, including its
// STANDARD/DAYLIGHT observances, onto a typed TimeZone. All DATE-TIME
// values inside an observance are floating by definition: they are wall
// clock times in the zone being defined, and only the tzresolve package
// knows how to pin them to an offset.
func buildTimeZone(comp *model.RawComponent, arena model.Arena) (model.TimeZone, error) {
	var tz model.TimeZone
	for _, p := range comp.Properties {
		switch model.TimezoneToken(p.Name) {
		case model.TimezoneTokenTimeZoneID:
			setSingle(&tz.TimeZoneID, p.Value, p.Name, timezoneLocation)
		case model.TimezoneTokenLastMod:
			if err := setSingleUTCTime(&tz.LastMod, p.Value, p.Name, timezoneLocation); err != nil {
				return model.TimeZone{}, err
			}
		case model.TimezoneTokenTimeZoneURL:
			parsedURL, err := url.Parse(p.Value)
			if err != nil {
				return model.TimeZone{}, &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
			}
			tz.TZURL = parsedURL
		}
	}

	for _, childIdx := range comp.Children {
		child := arena.Get(childIdx)
		var observanceType model.ObservanceType
		switch model.SectionToken(child.Name) {
		case model.SectionTokenVStandard:
			observanceType = model.ObservanceStandard
		case model.SectionTokenVDaylight:
			observanceType = model.ObservanceDaylight
		default:
			continue
		}
		obs, err := buildObservance(child, observanceType)
		if err != nil {
			return model.TimeZone{}, err
		}
		tz.Observances = append(tz.Observances, obs)
	}

	return tz, nil
}

// buildObservance projects one STANDARD or DAYLIGHT sub-component.
func buildObservance(comp *model.RawComponent, observanceType model.ObservanceType) (model.Observance, error) {
	obs := model.Observance{Type: observanceType}
	location := string(observanceType)

	for _, p := range comp.Properties {
		switch model.TimezoneToken(p.Name) {
		case model.TimezoneTokenDTStart:
			start, err := icaldur.ParseIcalTime(p.Value)
			if err != nil {
				return model.Observance{}, &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
			}
			setSingle(&obs.DTStart, start, p.Name, location)
		case model.TimezoneTokenTimeZoneOffsetFrom:
			offset, err := icaldur.ParseTZOffset(p.Value)
			if err != nil {
				return model.Observance{}, &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
			}
			obs.TZOffsetFrom = offset
		case model.TimezoneTokenTimeZoneOffsetTo:
			offset, err := icaldur.ParseTZOffset(p.Value)
			if err != nil {
				return model.Observance{}, &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
			}
			obs.TZOffsetTo = offset
		case model.TimezoneTokenRRule:
			parsed, err := rrule.ParseRRule(p.Value)
			if err != nil {
				return model.Observance{}, &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
			}
			setSingle(&obs.RRule, parsed, p.Name, location)
		case model.TimezoneTokenRdate:
			for _, v := range strings.Split(p.Value, ",") {
				instant, err := icaldur.ParseIcalTime(v)
				if err != nil {
					return model.Observance{}, &model.InvalidValueError{Property: p.Name, Value: v, Err: err}
				}
				obs.RDates = append(obs.RDates, instant)
			}
		case model.TimezoneTokenTimeZoneName:
			obs.TZName = append(obs.TZName, p.Value)
		case model.TimezoneTokenComment:
			obs.Comment = append(obs.Comment, p.Value)
		}
	}

	return obs, nil
}
