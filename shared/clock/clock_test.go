package clock_test

import (
	"testing"
	"time"

	"beautyhub/shared/clock"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "opening", input: "09:00", want: 540},
		{name: "half past", input: "17:30", want: 1050},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing colon", input: "0900", wantErr: true},
		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clock.Parse(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, clock.ErrMalformedClock)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:00", clock.Format(0))
	assert.Equal(t, "09:05", clock.Format(545))
	assert.Equal(t, "19:00", clock.Format(1140))
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("AST", -4*60*60)
	instant := time.Date(2025, time.March, 3, 23, 30, 0, 0, loc)

	date := clock.Date(instant)

	assert.Equal(t, "2025-03-03", clock.FormatDate(date))
	assert.Equal(t, time.Monday, date.Weekday())
	assert.Equal(t, 23*60+30, clock.OfDay(instant))
}

func TestParseDate(t *testing.T) {
	date, err := clock.ParseDate("2025-01-06")
	assert.NoError(t, err)
	assert.Equal(t, time.Monday, date.Weekday())

	_, err = clock.ParseDate("06/01/2025")
	assert.Error(t, err)

	assert.True(t, clock.SameDate(date, date.Add(23*time.Hour)))
	assert.False(t, clock.SameDate(date, date.Add(24*time.Hour)))
}
