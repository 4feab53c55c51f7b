// Package parse contains the logic for parsing iCalendar files and strings into Go structs
package parse

import (
	"io"
	"strings"

	"chronoical/model"
	"chronoical/tzresolve"
)

// Parse reads RFC 5545 iCalendar text from r and builds a typed
// model.Calendar. Parsing is two passes: a structural pass frames every
// BEGIN/END block into a raw component arena with logical line ranges,
// then a projection pass dispatches each recognized component's properties
// onto the typed structs. Unrecognized properties and components are
// preserved verbatim, never rejected; structural problems (a property line
// with no colon, a BEGIN without its END) fail fast with the offending
// line number.
func Parse(r io.Reader) (*model.Calendar, error) {
	lines, err := unfoldLines(r)
	if err != nil {
		return nil, err
	}
	arena, err := buildArena(lines)
	if err != nil {
		return nil, err
	}
	return project(arena, lines)
}

// ParseString parses iCalendar text held in a string.
func ParseString(input string) (*model.Calendar, error) {
	return Parse(strings.NewReader(input))
}

// buildArena runs the structural pass: it frames BEGIN/END blocks into a
// flat arena of raw components, attaching each property line (already
// unfolded) to the innermost open component. Line numbers are logical
// line indices, 1-based, into the unfolded line slice.
func buildArena(lines []string) (model.Arena, error) {
	if len(lines) == 0 {
		return nil, ErrNoCalendarFound
	}

	var arena model.Arena
	var stack []int

	for i, line := range lines {
		lineNo := i + 1

		if name, isBegin := strings.CutPrefix(line, "BEGIN:"); isBegin {
			name = strings.ToUpper(strings.TrimSpace(name))
			if len(arena) == 0 && name != string(model.SectionTokenVCalendar) {
				return nil, ErrInvalidCalendarFormatMissingBegin
			}
			if len(arena) > 0 && len(stack) == 0 {
				return nil, &model.ParseError{Line: lineNo, Message: "content after END:VCALENDAR", Err: ErrContentAfterEndBlock}
			}
			parent := -1
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			arena = append(arena, model.RawComponent{Name: name, Parent: parent, StartLine: lineNo})
			idx := len(arena) - 1
			if parent >= 0 {
				arena[parent].Children = append(arena[parent].Children, idx)
			}
			stack = append(stack, idx)
			continue
		}

		if name, isEnd := strings.CutPrefix(line, "END:"); isEnd {
			name = strings.ToUpper(strings.TrimSpace(name))
			if len(stack) == 0 {
				return nil, &model.ParseError{Line: lineNo, Message: "END:" + name + " without a matching BEGIN"}
			}
			top := stack[len(stack)-1]
			if arena[top].Name != name {
				return nil, &model.ParseError{Line: lineNo, Message: "END:" + name + " does not close BEGIN:" + arena[top].Name}
			}
			arena[top].EndLine = lineNo
			stack = stack[:len(stack)-1]
			continue
		}

		if len(stack) == 0 {
			if len(arena) == 0 {
				return nil, ErrInvalidCalendarFormatMissingBegin
			}
			return nil, &model.ParseError{Line: lineNo, Message: "content after END:VCALENDAR", Err: ErrContentAfterEndBlock}
		}

		propertyName, params, value, err := parseIcalLine(line)
		if err != nil {
			return nil, &model.ParseError{Line: lineNo, Message: "invalid property line", Err: err}
		}
		top := stack[len(stack)-1]
		arena[top].Properties = append(arena[top].Properties, model.RawProperty{
			Name:   strings.ToUpper(propertyName),
			Params: params,
			Value:  value,
			Line:   lineNo,
		})
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, &model.UnterminatedComponentError{Component: arena[top].Name, Line: arena[top].StartLine}
	}
	return arena, nil
}

// project runs the typed pass over a structurally valid arena. Time zones
// project first so that every other component's TZID parameters can be
// resolved against them, regardless of the order components appeared in
// the source.
func project(arena model.Arena, lines []string) (*model.Calendar, error) {
	cal := &model.Calendar{Raw: arena, Lines: lines}
	root := arena.Root()

	for _, p := range root.Properties {
		parseCalendarProperty(p, cal)
	}

	for _, childIdx := range root.Children {
		child := arena.Get(childIdx)
		if child.Name != string(model.SectionTokenVTimezone) {
			continue
		}
		tz, err := buildTimeZone(child, arena)
		if err != nil {
			return nil, err
		}
		cal.TimeZones = append(cal.TimeZones, tz)
	}

	conv := &converter{resolver: tzresolve.New(cal.TimeZones)}

	for _, childIdx := range root.Children {
		child := arena.Get(childIdx)
		switch model.SectionToken(child.Name) {
		case model.SectionTokenVTimezone:
			// already projected
		case model.SectionTokenVEvent:
			event, err := conv.buildEvent(child, arena)
			if err != nil {
				return nil, err
			}
			cal.Events = append(cal.Events, event)
		case model.SectionTokenVTodo:
			todo, err := conv.buildTodo(child, arena)
			if err != nil {
				return nil, err
			}
			cal.Todos = append(cal.Todos, todo)
		case model.SectionTokenVJournal:
			journal, err := conv.buildJournal(child)
			if err != nil {
				return nil, err
			}
			cal.Journals = append(cal.Journals, journal)
		case model.SectionTokenVFreebusy:
			freeBusy, err := conv.buildFreeBusy(child)
			if err != nil {
				return nil, err
			}
			cal.FreeBusys = append(cal.FreeBusys, freeBusy)
		case model.SectionTokenVAlarm:
			return nil, &model.CalendarParentRelationError{Child: child.Name, Parent: "VEVENT or VTODO"}
		case model.SectionTokenVStandard, model.SectionTokenVDaylight:
			return nil, &model.CalendarParentRelationError{Child: child.Name, Parent: string(model.SectionTokenVTimezone)}
		default:
			if cal.ExtraComponents == nil {
				cal.ExtraComponents = map[string][]int{}
			}
			key := extrasKey(child.Name)
			cal.ExtraComponents[key] = append(cal.ExtraComponents[key], childIdx)
		}
	}

	return cal, nil
}

// extrasKey normalizes an unrecognized property or component name for the
// extras bucket: lower-cased, with "-" replaced by "_".
func extrasKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}

// addExtra files an unrecognized property into a component's extras
// bucket, preserving source order within each key.
func addExtra(extras *map[string][]string, p model.RawProperty) {
	if *extras == nil {
		*extras = map[string][]string{}
	}
	key := extrasKey(p.Name)
	(*extras)[key] = append((*extras)[key], p.Value)
}
