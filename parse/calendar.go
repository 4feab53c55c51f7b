package parse

import "chronoical/model"

const calendarLocation = "VCALENDAR"

// parseCalendarProperty sets a single top-level property on the calendar.
// Unknown property names land in the extras bucket; nothing at this level
// can fail, since all six recognized properties are plain text.
func parseCalendarProperty(p model.RawProperty, calendar *model.Calendar) {
	switch p.Name {
	case "VERSION":
		setSingle(&calendar.Version, p.Value, p.Name, calendarLocation)
	case "PRODID":
		setSingle(&calendar.ProdID, p.Value, p.Name, calendarLocation)
	case "CALSCALE":
		setSingle(&calendar.CalScale, p.Value, p.Name, calendarLocation)
	case "METHOD":
		setSingle(&calendar.Method, p.Value, p.Name, calendarLocation)
	case "X-WR-CALNAME":
		setSingle(&calendar.XWRCalName, p.Value, p.Name, calendarLocation)
	case "X-WR-TIMEZONE":
		setSingle(&calendar.XWRTimezone, p.Value, p.Name, calendarLocation)
	default:
		addExtra(&calendar.Extras, p)
	}
}
