package icaldur

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("20220601")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("2022-06-01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDateTime(t *testing.T) {
	utc, err := ParseDateTime("20220601T120000Z")
	assert.NoError(t, err)
	assert.True(t, utc.UTC)
	assert.False(t, utc.Floating)
	assert.Equal(t, time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC), utc.Time)

	floating, err := ParseDateTime("20220601T120000")
	assert.NoError(t, err)
	assert.False(t, floating.UTC)
	assert.True(t, floating.Floating)

	_, err = ParseDateTime("not-a-datetime")
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestParsePeriodExplicitEnd(t *testing.T) {
	p, err := ParsePeriod("20220601T120000Z/20220601T130000Z")
	assert.NoError(t, err)
	assert.True(t, p.ExplicitEnd)
	assert.Equal(t, time.Hour, p.Duration)
}

func TestParsePeriodDuration(t *testing.T) {
	p, err := ParsePeriod("20220601T120000Z/PT1H30M")
	assert.NoError(t, err)
	assert.False(t, p.ExplicitEnd)
	assert.Equal(t, time.Hour+30*time.Minute, p.Duration)
	assert.Equal(t, p.Start.Add(p.Duration), p.End)
}

func TestParsePeriodInvalid(t *testing.T) {
	_, err := ParsePeriod("not-a-period")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestParseIcalTime(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        time.Time
		expectError bool
	}{
		{
			name:  "UTC designator",
			input: "20250928T183000Z",
			want:  time.Date(2025, 9, 28, 18, 30, 0, 0, time.UTC),
		},
		{
			name:  "floating fallback",
			input: "20240101T000000",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "truncated time",
			input:       "20250928T1830Z",
			expectError: true,
		},
		{
			name:        "extended ISO form is not the iCal layout",
			input:       "2025-09-28T18:30:00Z",
			expectError: true,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseIcalTime(test.input)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func BenchmarkParseIcalTime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseIcalTime("20250928T183000Z"); err != nil {
			b.Fatal(err)
		}
	}
}
