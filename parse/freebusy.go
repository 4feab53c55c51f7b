package parse

import (
	"strings"

	"chronoical/icaldur"
	"chronoical/model"
)

const freeBusyLocation = "VFREEBUSY"

// buildFreeBusy projects one VFREEBUSY raw component onto a typed FreeBusy.
func (c *converter) buildFreeBusy(comp *model.RawComponent) (model.FreeBusy, error) {
	var freeBusy model.FreeBusy
	for _, p := range comp.Properties {
		if err := c.setFreeBusyProperty(p, &freeBusy); err != nil {
			return model.FreeBusy{}, err
		}
	}
	return freeBusy, nil
}

// setFreeBusyProperty parses a single property line and sets its value in the provided vfreebusy.
func (c *converter) setFreeBusyProperty(p model.RawProperty, freeBusy *model.FreeBusy) error {
	switch model.FreeBusyToken(p.Name) {
	case model.FreeBusyTokenDTStamp:
		return setSingleUTCTime(&freeBusy.DTStamp, p.Value, p.Name, freeBusyLocation)
	case model.FreeBusyTokenDTStart:
		start, err := c.parseTime(p)
		if err != nil {
			return err
		}
		setSingle(&freeBusy.DTStart, start, p.Name, freeBusyLocation)
	case model.FreeBusyTokenDTEnd:
		end, err := c.parseTime(p)
		if err != nil {
			return err
		}
		setSingle(&freeBusy.DTEnd, end, p.Name, freeBusyLocation)

	case model.FreeBusyTokenUID:
		setSingle(&freeBusy.UID, p.Value, p.Name, freeBusyLocation)
	case model.FreeBusyTokenContact:
		setSingle(&freeBusy.Contact, p.Value, p.Name, freeBusyLocation)
	case model.FreeBusyTokenURL:
		setSingle(&freeBusy.URL, p.Value, p.Name, freeBusyLocation)

	case model.FreeBusyTokenOrganizer:
		organizer, err := parseOrganizer(p)
		if err != nil {
			return err
		}
		freeBusy.Organizer = organizer
	case model.FreeBusyTokenAttendee:
		attendee, err := parseAttendee(p)
		if err != nil {
			return err
		}
		freeBusy.Attendees = append(freeBusy.Attendees, attendee)

	case model.FreeBusyTokenComment:
		freeBusy.Comment = append(freeBusy.Comment, p.Value)
	case model.FreeBusyTokenRequestStatus:
		freeBusy.RequestStatus = append(freeBusy.RequestStatus, p.Value)

	case model.FreeBusyTokenFreeBusy:
		intervals, err := parseFreeBusyIntervals(p)
		if err != nil {
			return err
		}
		freeBusy.FreeBusy = append(freeBusy.FreeBusy, intervals...)

	default:
		addExtra(&freeBusy.Extras, p)
	}
	return nil
}

// parseFreeBusyIntervals parses a FREEBUSY property: a comma-separated
// list of PERIOD values, with the interval's status carried by the FBTYPE
// parameter (default BUSY).
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.6
func parseFreeBusyIntervals(p model.RawProperty) ([]model.FreeBusyTime, error) {
	status := model.FreeBusyStatusBusy
	if fbType := p.Params["FBTYPE"]; fbType != "" {
		status = model.FreeBusyStatus(fbType)
	}

	values := strings.Split(p.Value, ",")
	out := make([]model.FreeBusyTime, 0, len(values))
	for _, v := range values {
		period, err := icaldur.ParsePeriod(v)
		if err != nil {
			return nil, &model.InvalidValueError{Property: p.Name, Value: v, Err: err}
		}
		out = append(out, model.FreeBusyTime{Start: period.Start, End: period.End, Status: status})
	}
	return out, nil
}
