package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chronoical/model"
)

func TestTimespanOverlaps(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := model.Timespan{Start: base, End: base.Add(time.Hour)}
	b := model.Timespan{Start: base.Add(30 * time.Minute), End: base.Add(90 * time.Minute)}
	c := model.Timespan{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c), "back-to-back spans must not overlap under half-open semantics")
}

func TestTimespanContainsZeroWidth(t *testing.T) {
	instant := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	point := model.Timespan{Start: instant, End: instant}
	assert.True(t, point.Contains(instant))
	assert.False(t, point.Contains(instant.Add(time.Second)))
}

func TestRecurringInterfaceSatisfiedByComponents(t *testing.T) {
	var _ model.Recurring = (*model.Event)(nil)
	var _ model.Recurring = (*model.Todo)(nil)
	var _ model.Recurring = (*model.Journal)(nil)
}

func TestArenaGet(t *testing.T) {
	arena := model.Arena{
		{Name: "VCALENDAR", Children: []int{1}},
		{Name: "VEVENT", Parent: 0},
	}
	assert.Equal(t, "VCALENDAR", arena.Root().Name)
	assert.Equal(t, "VEVENT", arena.Get(1).Name)
	assert.Nil(t, arena.Get(5))
}
