package parse

import (
	"log/slog"

	"chronoical/icaldur"
	"chronoical/model"
)

const alarmLocation = "VALARM"

// buildAlarm projects one VALARM raw component onto a typed Alarm.
func (c *converter) buildAlarm(comp *model.RawComponent) (model.Alarm, error) {
	var alarm model.Alarm
	for _, p := range comp.Properties {
		if err := setAlarmProperty(p, &alarm); err != nil {
			return model.Alarm{}, err
		}
	}

	// DURATION and REPEAT must appear together or not at all. Feeds that
	// get this wrong are common enough that it's a warning, not an error.
	if (alarm.Duration != 0) != (alarm.Repeat != 0) {
		slog.Warn("alarm has only one of DURATION and REPEAT; they are only meaningful together")
	}

	return alarm, nil
}

// setAlarmProperty parses a single property line and sets its value in the provided valarm.
func setAlarmProperty(p model.RawProperty, alarm *model.Alarm) error {
	switch model.AlarmToken(p.Name) {
	case model.AlarmTokenAction:
		setSingle(&alarm.Action, model.AlarmAction(p.Value), p.Name, alarmLocation)
	case model.AlarmTokenTrigger:
		trigger, err := icaldur.ParseTrigger(p.Value, p.Params)
		if err != nil {
			return &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
		}
		setSingle(&alarm.Trigger, trigger, p.Name, alarmLocation)
	case model.AlarmTokenDuration:
		return setSingleDuration(&alarm.Duration, p.Value, p.Name, alarmLocation)
	case model.AlarmTokenRepeat:
		return setSingleInt(&alarm.Repeat, p.Value, p.Name, alarmLocation)
	case model.AlarmTokenSummary:
		setSingle(&alarm.Summary, p.Value, p.Name, alarmLocation)
	case model.AlarmTokenDescription:
		alarm.Description = append(alarm.Description, p.Value)
	case model.AlarmTokenAttach:
		alarm.Attach = append(alarm.Attach, p.Value)
	case model.AlarmTokenAttendee:
		attendee, err := parseAttendee(p)
		if err != nil {
			return err
		}
		alarm.Attendees = append(alarm.Attendees, attendee)
	default:
		addExtra(&alarm.Extras, p)
	}
	return nil
}
