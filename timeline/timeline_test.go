package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chronoical/model"
	"chronoical/rrule"
	"chronoical/timeline"
)

func TestBuildMergesEventsChronologically(t *testing.T) {
	cal := &model.Calendar{
		Events: []model.Event{
			{BaseComponent: model.BaseComponent{UID: "a"}, Start: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), Duration: time.Hour},
			{BaseComponent: model.BaseComponent{UID: "b"}, Start: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Duration: time.Hour},
		},
	}

	tl, err := timeline.Build(cal, model.Timespan{})
	assert.NoError(t, err)
	entries := tl.Iterate()
	assert.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].UID)
	assert.Equal(t, "a", entries[1].UID)
}

func TestBuildHonorsRecurrenceIDOverride(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rr, err := rrule.ParseRRule("FREQ=DAILY;COUNT=3")
	assert.NoError(t, err)
	overrideInstant := start.AddDate(0, 0, 1)

	cal := &model.Calendar{
		Events: []model.Event{
			{BaseComponent: model.BaseComponent{UID: "series"}, Start: start, Duration: time.Hour, RRule: rr},
			{
				BaseComponent: model.BaseComponent{UID: "series", RecurrenceID: &overrideInstant},
				Start:         overrideInstant.Add(3 * time.Hour),
				Duration:      2 * time.Hour,
				Summary:       "rescheduled",
			},
		},
	}

	tl, err := timeline.Build(cal, model.Timespan{})
	assert.NoError(t, err)
	entries := tl.Iterate()
	assert.Len(t, entries, 3)

	var found bool
	for _, e := range entries {
		if e.Event.Summary == "rescheduled" {
			found = true
			assert.Equal(t, overrideInstant.Add(3*time.Hour), e.Span.Start)
		} else {
			assert.NotEqual(t, overrideInstant, e.Span.Start)
		}
	}
	assert.True(t, found)
}

func TestRangeQueries(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	cal := &model.Calendar{
		Events: []model.Event{
			{BaseComponent: model.BaseComponent{UID: "a"}, Start: start, Duration: time.Hour},
		},
	}
	tl, err := timeline.Build(cal, model.Timespan{})
	assert.NoError(t, err)

	mid := start.Add(30 * time.Minute)
	assert.Len(t, tl.At(mid), 1)
	assert.Len(t, tl.At(start.Add(time.Hour)), 0, "half-open span does not contain its end")

	assert.Len(t, tl.Overlapping(mid, mid.Add(2*time.Hour)), 1)
	assert.Len(t, tl.Overlapping(start.Add(time.Hour), start.Add(2*time.Hour)), 0)

	assert.Len(t, tl.Includes(start, start.Add(time.Hour)), 1)
	assert.Len(t, tl.Includes(mid, start.Add(2*time.Hour)), 0, "partially covered spans are not included")

	assert.Len(t, tl.StartAfter(start.Add(-time.Minute)), 1)
	assert.Len(t, tl.StartAfter(start), 0, "StartAfter is strict")
}
