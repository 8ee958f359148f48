package model_test

import (
	"slices"
	"testing"
	"time"

	"beautyhub/internal/domains/availability/model"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared/clock"
	"beautyhub/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
var monday = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func formatted(starts []int) []string {
	out := make([]string, len(starts))
	for i, start := range starts {
		out[i] = clock.Format(start)
	}

	return out
}

func TestSlotsForDate_LastSlotFitsClosing(t *testing.T) {
	schedule := tenantModel.WeeklySchedule{"monday": {Open: "09:00", Close: "18:00"}}

	seq, err := model.SlotsForDate(schedule, monday, 30, 30)
	require.NoError(t, err)

	slots := slices.Collect(seq)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", clock.Format(slots[0]))
	assert.Equal(t, "17:30", clock.Format(slots[len(slots)-1]))
}

func TestSlotsForDate_DurationLongerThanGranularity(t *testing.T) {
	schedule := tenantModel.DefaultSchedule()

	seq, err := model.SlotsForDate(schedule, monday, 45, 30)
	require.NoError(t, err)

	slots := formatted(slices.Collect(seq))

	assert.Contains(t, slots, "19:00")
	assert.NotContains(t, slots, "19:30")
	assert.Equal(t, "19:00", slots[len(slots)-1])
}

func TestSlotsForDate_EveryStartFits(t *testing.T) {
	schedule := tenantModel.DefaultSchedule()

	for _, duration := range []int{15, 30, 45, 60, 95} {
		seq, err := model.SlotsForDate(schedule, monday, duration, 30)
		require.NoError(t, err)

		for start := range seq {
			assert.GreaterOrEqual(t, start, 9*60)
			assert.LessOrEqual(t, start+duration, 20*60)
			assert.Zero(t, (start-9*60)%30)
		}
	}
}

func TestSlotsForDate_Empty(t *testing.T) {
	schedule := tenantModel.DefaultSchedule()

	sunday := monday.AddDate(0, 0, 6)

	seq, err := model.SlotsForDate(schedule, sunday, 30, 30)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))

	seq, err = model.SlotsForDate(schedule, monday, 12*60, 30)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))
}

func TestSlotsForDate_InvalidInput(t *testing.T) {
	malformed := tenantModel.WeeklySchedule{"monday": {Open: "nine", Close: "18:00"}}

	tests := []struct {
		name        string
		schedule    tenantModel.WeeklySchedule
		duration    int
		granularity int
		wantField   string
	}{
		{name: "zero duration", schedule: tenantModel.DefaultSchedule(), duration: 0, granularity: 30, wantField: model.FieldDuration},
		{name: "negative duration", schedule: tenantModel.DefaultSchedule(), duration: -15, granularity: 30, wantField: model.FieldDuration},
		{name: "zero granularity", schedule: tenantModel.DefaultSchedule(), duration: 30, granularity: 0, wantField: model.FieldGranularity},
		{name: "malformed entry", schedule: malformed, duration: 30, granularity: 30, wantField: model.FieldSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.SlotsForDate(tt.schedule, monday, tt.duration, tt.granularity)

			fail, ok := failure.Get(err)
			require.True(t, ok)
			assert.Equal(t, failure.ReasonInvalidInput, fail.Reason)
			assert.Equal(t, tt.wantField, fail.Field)
		})
	}
}

func TestCandidateDates(t *testing.T) {
	schedule := tenantModel.DefaultSchedule()

	seq, err := model.CandidateDates(schedule, monday.Add(15*time.Hour), 14)
	require.NoError(t, err)

	dates := slices.Collect(seq)

	// Two weeks minus two Sundays.
	require.Len(t, dates, 12)
	assert.Equal(t, monday, dates[0])
	assert.True(t, slices.IsSortedFunc(dates, func(a, b time.Time) int { return a.Compare(b) }))

	for _, date := range dates {
		assert.NotEqual(t, time.Sunday, date.Weekday())
	}
}

func TestCandidateDates_ClosedAllWeek(t *testing.T) {
	seq, err := model.CandidateDates(tenantModel.WeeklySchedule{}, monday, 30)
	require.NoError(t, err)

	assert.Empty(t, slices.Collect(seq))
}

func TestCandidateDates_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		schedule  tenantModel.WeeklySchedule
		horizon   int
		wantField string
	}{
		{
			name: "malformed entry on another weekday",
			schedule: tenantModel.WeeklySchedule{
				"monday":  {Open: "9am", Close: "20:00"},
				"tuesday": {Open: "09:00", Close: "20:00"},
			},
			horizon:   14,
			wantField: model.FieldSchedule,
		},
		{
			name:      "half-filled entry",
			schedule:  tenantModel.WeeklySchedule{"friday": {Open: "09:00"}},
			horizon:   7,
			wantField: model.FieldSchedule,
		},
		{
			name:      "zero horizon",
			schedule:  tenantModel.DefaultSchedule(),
			horizon:   0,
			wantField: model.FieldHorizon,
		},
		{
			name:      "horizon beyond a year",
			schedule:  tenantModel.DefaultSchedule(),
			horizon:   model.MaxHorizonDays + 1,
			wantField: model.FieldHorizon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := model.CandidateDates(tt.schedule, monday, tt.horizon)

			assert.Nil(t, seq)

			fail, ok := failure.Get(err)
			require.True(t, ok)
			assert.Equal(t, failure.ReasonInvalidInput, fail.Reason)
			assert.Equal(t, tt.wantField, fail.Field)
		})
	}
}

func TestFree(t *testing.T) {
	schedule := tenantModel.WeeklySchedule{"monday": {Open: "09:00", Close: "12:00"}}

	seq, err := model.SlotsForDate(schedule, monday, 60, 30)
	require.NoError(t, err)

	busy := []model.Interval{{Start: 10 * 60, End: 10*60 + 30}}

	free := formatted(slices.Collect(model.Free(seq, 60, 9*60+30, busy)))

	// 09:00 is before notBefore, 09:30 and 10:00 hit the busy half hour.
	assert.Equal(t, []string{"10:30", "11:00"}, free)
}
