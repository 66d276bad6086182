package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"13:40", 820},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := TimeToMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestTimeToMinutesInvalid(t *testing.T) {
	for _, in := range []string{"24:00", "9:00", "09:60", "0900", "", "ab:cd"} {
		_, err := TimeToMinutes(in)
		require.Error(t, err, in)
		assert.True(t, httperr.IsKind(err, httperr.KindFormat), in)
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:00", MinutesToTime(540))
	assert.Equal(t, "16:40", MinutesToTime(1000))
}

func TestIsValidDateString(t *testing.T) {
	assert.True(t, IsValidDateString("2026-09-15"))
	assert.False(t, IsValidDateString("2026-13-01"))
	assert.False(t, IsValidDateString("2026-02-30"))
	assert.False(t, IsValidDateString("15-09-2026"))
	assert.False(t, IsValidDateString(""))
}

func TestSlotsNeeded(t *testing.T) {
	r := DefaultRules()

	cases := []struct {
		duration int
		want     int
	}{
		{0, 1},
		{-5, 1},
		{10, 1},
		{20, 1},
		{21, 2},
		{40, 2},
		{60, 3},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, r.SlotsNeeded(tc.duration), "duração %d", tc.duration)
	}
}

func TestIsValidSlotBoundary(t *testing.T) {
	r := DefaultRules()
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, r.IsValidSlotBoundary(day.Add(9*time.Hour)))
	assert.True(t, r.IsValidSlotBoundary(day.Add(9*time.Hour+20*time.Minute)))
	assert.True(t, r.IsValidSlotBoundary(day.Add(9*time.Hour+40*time.Minute)))

	assert.False(t, r.IsValidSlotBoundary(day.Add(9*time.Hour+10*time.Minute)))
	assert.False(t, r.IsValidSlotBoundary(day.Add(9*time.Hour+30*time.Second)))
	assert.False(t, r.IsValidSlotBoundary(day.Add(9*time.Hour+5*time.Nanosecond)))
}

func TestRangesOverlap(t *testing.T) {
	base := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	// sobreposição parcial e total
	assert.True(t, RangesOverlap(at(0), at(40), at(20), at(60)))
	assert.True(t, RangesOverlap(at(0), at(60), at(20), at(40)))

	// encostados não conflitam (intervalos semiabertos)
	assert.False(t, RangesOverlap(at(0), at(20), at(20), at(40)))
	assert.False(t, RangesOverlap(at(20), at(40), at(0), at(20)))

	// disjuntos
	assert.False(t, RangesOverlap(at(0), at(20), at(40), at(60)))
}
