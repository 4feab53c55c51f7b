package parse

import (
	"strings"

	"chronoical/icaldur"
	"chronoical/model"
	"chronoical/rrule"
)

const eventLocation = "VEVENT"

// buildEvent projects one VEVENT raw component onto a typed Event,
// including any nested VALARM sub-components.
func (c *converter) buildEvent(comp *model.RawComponent, arena model.Arena) (model.Event, error) {
	var event model.Event
	for _, p := range comp.Properties {
		if err := c.setEventProperty(p, &event); err != nil {
			return model.Event{}, err
		}
	}

	for _, childIdx := range comp.Children {
		child := arena.Get(childIdx)
		if child.Name != string(model.SectionTokenVAlarm) {
			// unknown sub-component: kept in the arena, nothing to project
			continue
		}
		alarm, err := c.buildAlarm(child)
		if err != nil {
			return model.Event{}, err
		}
		event.Alarms = append(event.Alarms, alarm)
	}

	return event, nil
}

// setEventProperty parses a single property line and sets its value in the provided vevent.
func (c *converter) setEventProperty(p model.RawProperty, event *model.Event) error {
	switch model.EventToken(p.Name) {
	case model.EventTokenDtstart:
		if tzid := p.Params["TZID"]; tzid != "" {
			event.TimeZoneId = tzid
		}
		start, err := c.parseTime(p)
		if err != nil {
			return err
		}
		setSingle(&event.Start, start, p.Name, eventLocation)

	// DTEND and DURATION are mutually exclusive.
	case model.EventTokenDtend:
		if event.Duration != 0 {
			return ErrInvalidDurationPropertyDtend
		}
		end, err := c.parseTime(p)
		if err != nil {
			return err
		}
		setSingle(&event.End, end, p.Name, eventLocation)
	case model.EventTokenDuration:
		if !event.End.IsZero() {
			return ErrInvalidDurationPropertyDtend
		}
		return setSingleDuration(&event.Duration, p.Value, p.Name, eventLocation)

	case model.EventTokenDTStamp:
		return setSingleUTCTime(&event.DTStamp, p.Value, p.Name, eventLocation)
	case model.EventTokenCreated:
		return setSingleUTCTime(&event.Created, p.Value, p.Name, eventLocation)
	case model.EventTokenLastModified:
		return setSingleUTCTime(&event.LastModified, p.Value, p.Name, eventLocation)

	case model.EventTokenUID:
		setSingle(&event.UID, p.Value, p.Name, eventLocation)
	case model.EventTokenSummary:
		setSingle(&event.Summary, p.Value, p.Name, eventLocation)
	case model.EventTokenDescription:
		setSingle(&event.Description, p.Value, p.Name, eventLocation)
	case model.EventTokenLocation:
		setSingle(&event.Location, p.Value, p.Name, eventLocation)
	case model.EventTokenClass:
		setSingle(&event.Class, p.Value, p.Name, eventLocation)
	case model.EventTokenContact:
		setSingle(&event.Contact, p.Value, p.Name, eventLocation)
	case model.EventTokenURL:
		setSingle(&event.URL, p.Value, p.Name, eventLocation)
	case model.EventTokenStatus:
		setSingle(&event.Status, model.EventStatus(p.Value), p.Name, eventLocation)
	case model.EventTokenTransp:
		setSingle(&event.Transp, model.EventTransp(p.Value), p.Name, eventLocation)

	case model.EventTokenSequence:
		return setSingleInt(&event.Sequence, p.Value, p.Name, eventLocation)
	case model.EventTokenPriority:
		return setSingleInt(&event.Priority, p.Value, p.Name, eventLocation)

	case model.EventTokenOrganizer:
		organizer, err := parseOrganizer(p)
		if err != nil {
			return err
		}
		event.Organizer = organizer
	case model.EventTokenAttendee:
		attendee, err := parseAttendee(p)
		if err != nil {
			return err
		}
		event.Attendees = append(event.Attendees, attendee)
	case model.EventTokenGeo:
		geo, err := icaldur.ParseGeo(p.Value)
		if err != nil {
			return &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
		}
		event.Geo = &geo

	// Repeatable properties.
	case model.EventTokenCategories:
		event.Categories = append(event.Categories, strings.Split(p.Value, ",")...)
	case model.EventTokenComment:
		event.Comment = append(event.Comment, p.Value)
	case model.EventTokenAttach:
		event.Attach = append(event.Attach, p.Value)
	case model.EventTokenRelated:
		event.Related = append(event.Related, p.Value)
	case model.EventTokenRequestStatus:
		event.RequestStatus = append(event.RequestStatus, p.Value)

	// Recurrence.
	case model.EventTokenRRule:
		parsed, err := rrule.ParseRRule(p.Value)
		if err != nil {
			return &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
		}
		setSingle(&event.RRule, parsed, p.Name, eventLocation)
	case model.EventTokenRdate:
		entries, err := c.parseRecurEntries(p)
		if err != nil {
			return err
		}
		event.RDates = append(event.RDates, entries...)
	case model.EventTokenExceptionDates:
		instants, err := c.parseTimeList(p)
		if err != nil {
			return err
		}
		event.ExDates = append(event.ExDates, instants...)
	case model.EventTokenRecurrenceID:
		instant, err := c.parseTime(p)
		if err != nil {
			return err
		}
		event.RecurrenceID = &instant

	default:
		addExtra(&event.Extras, p)
	}
	return nil
}
