package parse_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronoical/model"
	"chronoical/parse"
)

const basicEventInput = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Event//Event Calendar//EN
CALSCALE:GREGORIAN
METHOD:REQUEST
BEGIN:VEVENT
UID:13235@example.com
DTSTAMP:19700101T000000Z
DTSTART:20250928T183000Z
DTEND:20250928T203000Z
SUMMARY:Event Summary
DESCRIPTION:Event Description
LOCATION:555 Fake Street
ORGANIZER;CN=Org:mailto:hello@example.com
STATUS:CONFIRMED
SEQUENCE:0
TRANSP:OPAQUE
END:VEVENT
END:VCALENDAR
`

func TestParseBasicEvent(t *testing.T) {
	cal, err := parse.ParseString(basicEventInput)
	require.NoError(t, err)

	assert.Equal(t, "2.0", cal.Version)
	assert.Equal(t, "-//Event//Event Calendar//EN", cal.ProdID)
	assert.Equal(t, "GREGORIAN", cal.CalScale)
	assert.Equal(t, "REQUEST", cal.Method)

	require.Len(t, cal.Events, 1)
	event := cal.Events[0]
	assert.Equal(t, "13235@example.com", event.UID)
	assert.Equal(t, time.Date(2025, time.September, 28, 18, 30, 0, 0, time.UTC), event.Start)
	assert.Equal(t, time.Date(2025, time.September, 28, 20, 30, 0, 0, time.UTC), event.End)
	assert.Equal(t, "Event Summary", event.Summary)
	assert.Equal(t, "Event Description", event.Description)
	assert.Equal(t, "555 Fake Street", event.Location)
	assert.Equal(t, model.EventStatusConfirmed, event.Status)
	assert.Equal(t, model.EventTranspOpaque, event.Transp)

	require.NotNil(t, event.Organizer)
	assert.Equal(t, "Org", event.Organizer.CommonName)
	assert.Equal(t, "hello@example.com", event.Organizer.Address.Email)
}

func TestParseFoldedDescription(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//Test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:folded@example.com\r\n" +
		"DTSTART:20220101T090000Z\r\n" +
		"DESCRIPTION:This description spans\r\n" +
		"  three folded lines and sho\r\n" +
		"\tuld be concatenated\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.Events, 1)
	assert.Equal(t, "This description spans three folded lines and should be concatenated", cal.Events[0].Description)
}

func TestParseEventWithTZIDUsesCalendarTimezone(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VTIMEZONE
TZID:Europe/Berlin
BEGIN:DAYLIGHT
DTSTART:19700329T020000
TZOFFSETFROM:+0100
TZOFFSETTO:+0200
TZNAME:CEST
RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU
END:DAYLIGHT
BEGIN:STANDARD
DTSTART:19701025T030000
TZOFFSETFROM:+0200
TZOFFSETTO:+0100
TZNAME:CET
RRULE:FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU
END:STANDARD
END:VTIMEZONE
BEGIN:VEVENT
UID:tz@example.com
DTSTART;TZID=Europe/Berlin:20220327T020000
END:VEVENT
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)

	require.Len(t, cal.TimeZones, 1)
	tz := cal.TimeZones[0]
	assert.Equal(t, "Europe/Berlin", tz.TimeZoneID)
	require.Len(t, tz.Observances, 2)
	assert.Equal(t, model.ObservanceDaylight, tz.Observances[0].Type)
	assert.Equal(t, 2*3600, tz.Observances[0].TZOffsetTo.Seconds)
	require.NotNil(t, tz.Observances[0].RRule)

	require.Len(t, cal.Events, 1)
	event := cal.Events[0]
	assert.Equal(t, "Europe/Berlin", event.TimeZoneId)
	_, offset := event.Start.Zone()
	assert.Equal(t, 2*3600, offset, "2022-03-27T02:00 is already past the spring-forward transition")
}

func TestParseUnknownTimezoneFails(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:tz@example.com
DTSTART;TZID=Atlantis/Lost:20220327T020000
END:VEVENT
END:VCALENDAR
`
	_, err := parse.ParseString(input)
	require.Error(t, err)
	var unknown *model.UnknownTimezoneError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Atlantis/Lost", unknown.TZID)
}

func TestParseRDateAndExDate(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:rdate@example.com
DTSTART:20220601T120000Z
RDATE:20220602T120000Z,20220603T120000Z
EXDATE:20220603T120000Z
END:VEVENT
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.Events, 1)

	event := cal.Events[0]
	want := []model.RecurEntry{
		{Time: time.Date(2022, time.June, 2, 12, 0, 0, 0, time.UTC)},
		{Time: time.Date(2022, time.June, 3, 12, 0, 0, 0, time.UTC)},
	}
	if diff := cmp.Diff(want, event.RDates); diff != "" {
		t.Errorf("RDates mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, event.ExDates, 1)
	assert.Equal(t, time.Date(2022, time.June, 3, 12, 0, 0, 0, time.UTC), event.ExDates[0])
}

func TestParseRDatePeriod(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:period@example.com
DTSTART:20220601T120000Z
RDATE;VALUE=PERIOD:20220710T090000Z/20220710T113000Z,20220711T090000Z/PT2H
END:VEVENT
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.Events, 1)

	rdates := cal.Events[0].RDates
	require.Len(t, rdates, 2)
	require.NotNil(t, rdates[0].Period)
	assert.Equal(t, 150*time.Minute, rdates[0].Period.Duration)
	assert.True(t, rdates[0].Period.ExplicitEnd)
	require.NotNil(t, rdates[1].Period)
	assert.Equal(t, 2*time.Hour, rdates[1].Period.Duration)
}

func TestParseDateValuedStart(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:allday@example.com
DTSTART;VALUE=DATE:20220601
END:VEVENT
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.Events, 1)
	assert.Equal(t, time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC), cal.Events[0].Start)
}

func TestParseDuplicateSingleValuedKeepsLater(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:first@example.com
UID:second@example.com
DTSTART:20220101T090000Z
END:VEVENT
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.Events, 1)
	assert.Equal(t, "second@example.com", cal.Events[0].UID)
}

func TestParseExtrasPreserved(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
X-WR-CALNAME:Team Calendar
X-WR-TIMEZONE:Europe/Berlin
X-PUBLISHED-TTL:PT1H
BEGIN:VEVENT
UID:extras@example.com
DTSTART:20220101T090000Z
X-MICROSOFT-CDO-BUSYSTATUS:BUSY
END:VEVENT
BEGIN:X-CUSTOM-COMPONENT
X-FOO:bar
END:X-CUSTOM-COMPONENT
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)

	assert.Equal(t, "Team Calendar", cal.XWRCalName)
	assert.Equal(t, "Europe/Berlin", cal.XWRTimezone)
	assert.Equal(t, []string{"PT1H"}, cal.Extras["x_published_ttl"])

	require.Len(t, cal.Events, 1)
	assert.Equal(t, []string{"BUSY"}, cal.Events[0].Extras["x_microsoft_cdo_busystatus"])

	require.Len(t, cal.ExtraComponents["x_custom_component"], 1)
	raw := cal.Raw.Get(cal.ExtraComponents["x_custom_component"][0])
	require.NotNil(t, raw)
	assert.Equal(t, "X-CUSTOM-COMPONENT", raw.Name)
	require.Len(t, raw.Properties, 1)
	assert.Equal(t, "X-FOO", raw.Properties[0].Name)
}

func TestParseLineRangesRecorded(t *testing.T) {
	cal, err := parse.ParseString(basicEventInput)
	require.NoError(t, err)

	root := cal.Raw.Root()
	require.NotNil(t, root)
	assert.Equal(t, 1, root.StartLine)
	assert.Equal(t, len(cal.Lines), root.EndLine)

	require.Len(t, root.Children, 1)
	event := cal.Raw.Get(root.Children[0])
	assert.Equal(t, "BEGIN:VEVENT", cal.Lines[event.StartLine-1])
	assert.Equal(t, "END:VEVENT", cal.Lines[event.EndLine-1])
}

func TestParseStructuralErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "missing BEGIN:VCALENDAR",
			input: "VERSION:2.0\nEND:VCALENDAR\n",
		},
		{
			name:  "unterminated component",
			input: "BEGIN:VCALENDAR\nVERSION:2.0\nBEGIN:VEVENT\nUID:a@example.com\nEND:VCALENDAR\n",
		},
		{
			name:  "mismatched END",
			input: "BEGIN:VCALENDAR\nBEGIN:VEVENT\nEND:VTODO\nEND:VCALENDAR\n",
		},
		{
			name:  "property line with no colon",
			input: "BEGIN:VCALENDAR\nVERSION;2.0\nEND:VCALENDAR\n",
		},
		{
			name:  "content after END:VCALENDAR",
			input: "BEGIN:VCALENDAR\nVERSION:2.0\nEND:VCALENDAR\nSUMMARY:stray\n",
		},
		{
			name:  "empty input",
			input: "",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := parse.ParseString(testCase.input)
			assert.Error(t, err)
		})
	}
}

func TestParseMismatchedEndReportsLine(t *testing.T) {
	input := "BEGIN:VCALENDAR\nVERSION:2.0\nBEGIN:VEVENT\nUID:a@example.com\nEND:VCALENDAR\n"
	_, err := parse.ParseString(input)
	require.Error(t, err)
	// END:VCALENDAR cannot close the still-open VEVENT; the error names the
	// mismatch and its line.
	var parseErr *model.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 5, parseErr.Line)
}

func TestParseUnterminatedComponent(t *testing.T) {
	input := "BEGIN:VCALENDAR\nVERSION:2.0\nBEGIN:VEVENT\nUID:a@example.com\n"
	_, err := parse.ParseString(input)
	require.Error(t, err)
	var unterminated *model.UnterminatedComponentError
	require.ErrorAs(t, err, &unterminated)
	assert.Equal(t, "VEVENT", unterminated.Component)
	assert.Equal(t, 3, unterminated.Line)
}

func TestParseMalformedLineReportsLineNumber(t *testing.T) {
	input := "BEGIN:VCALENDAR\nVERSION:2.0\nBADLINE\nEND:VCALENDAR\n"
	_, err := parse.ParseString(input)
	require.Error(t, err)
	var parseErr *model.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
}

func TestParseAlarmInsideEvent(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:alarm@example.com
DTSTART:20220101T090000Z
BEGIN:VALARM
ACTION:DISPLAY
TRIGGER:-PT15M
DESCRIPTION:Reminder
END:VALARM
END:VEVENT
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.Events, 1)
	require.Len(t, cal.Events[0].Alarms, 1)

	alarm := cal.Events[0].Alarms[0]
	assert.Equal(t, model.AlarmActionDisplay, alarm.Action)
	assert.Equal(t, -15*time.Minute, alarm.Trigger.Duration)
	assert.False(t, alarm.Trigger.IsAbsolute)
	assert.Equal(t, []string{"Reminder"}, alarm.Description)
}

func TestParseAlarmOutsideEventFails(t *testing.T) {
	input := "BEGIN:VCALENDAR\nVERSION:2.0\nBEGIN:VALARM\nACTION:DISPLAY\nEND:VALARM\nEND:VCALENDAR\n"
	_, err := parse.ParseString(input)
	require.Error(t, err)
	var relation *model.CalendarParentRelationError
	assert.ErrorAs(t, err, &relation)
}

func TestParseTodo(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VTODO
UID:todo@example.com
DTSTAMP:20220101T000000Z
DTSTART:20220110T090000Z
DUE:20220110T170000Z
SUMMARY:File the report
PRIORITY:1
PERCENT-COMPLETE:40
STATUS:IN-PROCESS
CATEGORIES:WORK,FINANCE
END:VTODO
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.Todos, 1)

	todo := cal.Todos[0]
	assert.Equal(t, "todo@example.com", todo.UID)
	assert.Equal(t, model.TodoStatusInProcess, todo.Status)
	assert.Equal(t, 1, todo.Priority)
	assert.Equal(t, 40, todo.PercentComplete)
	assert.Equal(t, []string{"WORK", "FINANCE"}, todo.Categories)
	assert.Equal(t, 8*time.Hour, todo.RecurDuration(), "DUE-DTSTART drives the implied duration")
}

func TestParseTodoBothDueAndDurationFails(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VTODO
UID:todo@example.com
DUE:20220110T170000Z
DURATION:PT1H
END:VTODO
END:VCALENDAR
`
	_, err := parse.ParseString(input)
	assert.ErrorIs(t, err, parse.ErrInvalidDurationPropertyDue)
}

func TestParseEventBothEndAndDurationFails(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:event@example.com
DTEND:20220110T170000Z
DURATION:PT1H
END:VEVENT
END:VCALENDAR
`
	_, err := parse.ParseString(input)
	assert.ErrorIs(t, err, parse.ErrInvalidDurationPropertyDtend)
}

func TestParseJournal(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VJOURNAL
UID:journal@example.com
DTSTAMP:20220101T000000Z
DTSTART;VALUE=DATE:20220105
SUMMARY:Daily notes
DESCRIPTION:First paragraph
DESCRIPTION:Second paragraph
STATUS:FINAL
END:VJOURNAL
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.Journals, 1)

	journal := cal.Journals[0]
	assert.Equal(t, "journal@example.com", journal.UID)
	assert.Equal(t, model.JournalStatusFinal, journal.Status)
	assert.Equal(t, []string{"First paragraph", "Second paragraph"}, journal.Description)
	assert.Equal(t, time.Duration(0), journal.RecurDuration())
}

func TestParseFreeBusy(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VFREEBUSY
UID:fb@example.com
DTSTAMP:20220101T000000Z
DTSTART:20220101T000000Z
DTEND:20220102T000000Z
FREEBUSY;FBTYPE=BUSY-TENTATIVE:20220101T090000Z/20220101T100000Z
FREEBUSY:20220101T130000Z/PT30M,20220101T150000Z/20220101T160000Z
END:VFREEBUSY
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.FreeBusys, 1)

	fb := cal.FreeBusys[0]
	require.Len(t, fb.FreeBusy, 3)
	assert.Equal(t, model.FreeBusyStatusBusyTentative, fb.FreeBusy[0].Status)
	assert.Equal(t, model.FreeBusyStatusBusy, fb.FreeBusy[1].Status)
	assert.Equal(t, 30*time.Minute, fb.FreeBusy[1].End.Sub(fb.FreeBusy[1].Start))
}

func TestParseQuotedParameterValue(t *testing.T) {
	input := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:attendee@example.com
DTSTART:20220101T090000Z
ATTENDEE;CN=Doe, Jane;DELEGATED-FROM="mailto:bob@example.com";PARTSTAT=ACCEPTED:mailto:jane@example.com
END:VEVENT
END:VCALENDAR
`
	cal, err := parse.ParseString(input)
	require.NoError(t, err)
	require.Len(t, cal.Events[0].Attendees, 1)

	attendee := cal.Events[0].Attendees[0]
	assert.Equal(t, "jane@example.com", attendee.Email)
	assert.Equal(t, "ACCEPTED", attendee.PartStat)
}
