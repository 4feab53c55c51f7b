package parse

import (
	"strings"

	"chronoical/icaldur"
	"chronoical/model"
	"chronoical/rrule"
)

const todoLocation = "VTODO"

// buildTodo projects one VTODO raw component onto a typed Todo, including
// any nested VALARM sub-components.
func (c *converter) buildTodo(comp *model.RawComponent, arena model.Arena) (model.Todo, error) {
	var todo model.Todo
	for _, p := range comp.Properties {
		if err := c.setTodoProperty(p, &todo); err != nil {
			return model.Todo{}, err
		}
	}

	for _, childIdx := range comp.Children {
		child := arena.Get(childIdx)
		if child.Name != string(model.SectionTokenVAlarm) {
			continue
		}
		alarm, err := c.buildAlarm(child)
		if err != nil {
			return model.Todo{}, err
		}
		todo.Alarms = append(todo.Alarms, alarm)
	}

	return todo, nil
}

// setTodoProperty parses a single property line and sets its value in the provided vtodo.
func (c *converter) setTodoProperty(p model.RawProperty, todo *model.Todo) error {
	switch model.TodoToken(p.Name) {
	case model.TodoTokenDTStart:
		start, err := c.parseTime(p)
		if err != nil {
			return err
		}
		setSingle(&todo.DTStart, start, p.Name, todoLocation)

	// DUE and DURATION are mutually exclusive.
	case model.TodoTokenDue:
		if todo.Duration != 0 {
			return ErrInvalidDurationPropertyDue
		}
		due, err := c.parseTime(p)
		if err != nil {
			return err
		}
		setSingle(&todo.Due, due, p.Name, todoLocation)
	case model.TodoTokenDuration:
		if !todo.Due.IsZero() {
			return ErrInvalidDurationPropertyDue
		}
		return setSingleDuration(&todo.Duration, p.Value, p.Name, todoLocation)

	case model.TodoTokenDTStamp:
		return setSingleUTCTime(&todo.DTStamp, p.Value, p.Name, todoLocation)
	case model.TodoTokenCompleted:
		return setSingleUTCTime(&todo.Completed, p.Value, p.Name, todoLocation)
	case model.TodoTokenCreated:
		return setSingleUTCTime(&todo.Created, p.Value, p.Name, todoLocation)
	case model.TodoTokenLastModified:
		return setSingleUTCTime(&todo.LastModified, p.Value, p.Name, todoLocation)

	case model.TodoTokenUID:
		setSingle(&todo.UID, p.Value, p.Name, todoLocation)
	case model.TodoTokenClass:
		setSingle(&todo.Class, p.Value, p.Name, todoLocation)
	case model.TodoTokenLocation:
		setSingle(&todo.Location, p.Value, p.Name, todoLocation)
	case model.TodoTokenSummary:
		setSingle(&todo.Summary, p.Value, p.Name, todoLocation)
	case model.TodoTokenURL:
		setSingle(&todo.URL, p.Value, p.Name, todoLocation)
	case model.TodoTokenStatus:
		setSingle(&todo.Status, model.TodoStatus(p.Value), p.Name, todoLocation)
	case model.TodoTokenTransp:
		setSingle(&todo.Transp, model.TodoTransp(p.Value), p.Name, todoLocation)

	case model.TodoTokenPercentComplete:
		return setSingleInt(&todo.PercentComplete, p.Value, p.Name, todoLocation)
	case model.TodoTokenPriority:
		return setSingleInt(&todo.Priority, p.Value, p.Name, todoLocation)
	case model.TodoTokenSequence:
		return setSingleInt(&todo.Sequence, p.Value, p.Name, todoLocation)

	case model.TodoTokenOrganizer:
		organizer, err := parseOrganizer(p)
		if err != nil {
			return err
		}
		todo.Organizer = organizer
	case model.TodoTokenAttendee:
		attendee, err := parseAttendee(p)
		if err != nil {
			return err
		}
		todo.Attendees = append(todo.Attendees, attendee)
	case model.TodoTokenGeo:
		geo, err := icaldur.ParseGeo(p.Value)
		if err != nil {
			return &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
		}
		todo.Geo = &geo

	// Repeatable properties.
	case model.TodoTokenDescription:
		todo.Description = append(todo.Description, p.Value)
	case model.TodoTokenAttach:
		todo.Attach = append(todo.Attach, p.Value)
	case model.TodoTokenCategories:
		todo.Categories = append(todo.Categories, strings.Split(p.Value, ",")...)
	case model.TodoTokenComment:
		todo.Comment = append(todo.Comment, p.Value)
	case model.TodoTokenContact:
		todo.Contacts = append(todo.Contacts, p.Value)
	case model.TodoTokenRelated:
		todo.Related = append(todo.Related, p.Value)
	case model.TodoTokenRequestStatus:
		todo.RequestStatus = append(todo.RequestStatus, p.Value)
	case model.TodoTokenResources:
		todo.Resources = append(todo.Resources, strings.Split(p.Value, ",")...)

	// Recurrence.
	case model.TodoTokenRRule:
		parsed, err := rrule.ParseRRule(p.Value)
		if err != nil {
			return &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
		}
		setSingle(&todo.RRule, parsed, p.Name, todoLocation)
	case model.TodoTokenRdate:
		entries, err := c.parseRecurEntries(p)
		if err != nil {
			return err
		}
		todo.RDates = append(todo.RDates, entries...)
	case model.TodoTokenExceptionDates:
		instants, err := c.parseTimeList(p)
		if err != nil {
			return err
		}
		todo.ExceptionDates = append(todo.ExceptionDates, instants...)
	case model.TodoTokenRecurrenceID:
		instant, err := c.parseTime(p)
		if err != nil {
			return err
		}
		todo.RecurrenceID = &instant

	default:
		addExtra(&todo.Extras, p)
	}
	return nil
}
