package tzresolve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chronoical/icaldur"
	"chronoical/model"
	"chronoical/rrule"
	"chronoical/tzresolve"
)

func newTestZone(t *testing.T) model.TimeZone {
	t.Helper()
	standardStart, err := icaldur.ParseIcalTime("19701101T020000")
	assert.NoError(t, err)
	daylightStart, err := icaldur.ParseIcalTime("19700301T020000")
	assert.NoError(t, err)

	standardRule, err := rrule.ParseRRule("FREQ=YEARLY;BYMONTH=11;BYDAY=1SU")
	assert.NoError(t, err)
	daylightRule, err := rrule.ParseRRule("FREQ=YEARLY;BYMONTH=3;BYDAY=2SU")
	assert.NoError(t, err)

	std, err := icaldur.ParseTZOffset("-0500")
	assert.NoError(t, err)
	dst, err := icaldur.ParseTZOffset("-0400")
	assert.NoError(t, err)

	return model.TimeZone{
		TimeZoneID: "America/New_York",
		Observances: []model.Observance{
			{
				Type:         model.ObservanceStandard,
				DTStart:      standardStart,
				TZOffsetFrom: dst,
				TZOffsetTo:   std,
				TZName:       []string{"EST"},
				RRule:        standardRule,
			},
			{
				Type:         model.ObservanceDaylight,
				DTStart:      daylightStart,
				TZOffsetFrom: std,
				TZOffsetTo:   dst,
				TZName:       []string{"EDT"},
				RRule:        daylightRule,
			},
		},
	}
}

func TestLocaliseWinter(t *testing.T) {
	resolver := tzresolve.New([]model.TimeZone{newTestZone(t)})
	floating := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	got, err := resolver.Localise("America/New_York", floating)
	assert.NoError(t, err)
	_, offset := got.Zone()
	assert.Equal(t, -5*3600, offset)
}

func TestLocaliseSummer(t *testing.T) {
	resolver := tzresolve.New([]model.TimeZone{newTestZone(t)})
	floating := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	got, err := resolver.Localise("America/New_York", floating)
	assert.NoError(t, err)
	_, offset := got.Zone()
	assert.Equal(t, -4*3600, offset)
}

func TestLocaliseUnknownTimezone(t *testing.T) {
	resolver := tzresolve.New(nil)
	_, err := resolver.Localise("Nowhere/Special", time.Now())
	assert.Error(t, err)
	var unknown *model.UnknownTimezoneError
	assert.ErrorAs(t, err, &unknown)
}

func TestGetTimezone(t *testing.T) {
	resolver := tzresolve.New([]model.TimeZone{newTestZone(t)})
	tz, err := resolver.GetTimezone("America/New_York")
	assert.NoError(t, err)
	assert.Equal(t, "America/New_York", tz.TimeZoneID)
}
