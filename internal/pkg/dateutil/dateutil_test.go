package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	t.Parallel()

	start, end := MonthRange(2025, time.June)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthRange_DecemberRollsOver(t *testing.T) {
	t.Parallel()

	start, end := MonthRange(2025, time.December)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30, DaysInMonth(2025, time.June))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
}

func TestEffectiveDays(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	// In-progress month stops at today.
	assert.Equal(t, 15, EffectiveDays(2025, time.June, today))
	// Past and future months get their full day count.
	assert.Equal(t, 31, EffectiveDays(2025, time.May, today))
	assert.Equal(t, 31, EffectiveDays(2025, time.July, today))
	assert.Equal(t, 30, EffectiveDays(2024, time.June, today))
}

func TestLocalDateOf(t *testing.T) {
	t.Parallel()

	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC is 01:30 the next day in IST: the attendance date must be
	// the local day, not the UTC day.
	instant := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), LocalDateOf(instant, ist))

	// Morning instants stay on the same day.
	instant = time.Date(2025, 6, 10, 3, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), LocalDateOf(instant, ist))
}

func TestLocalDayBounds(t *testing.T) {
	t.Parallel()

	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// A request created at 01:00 IST on June 10 is 19:30 UTC on June 9.
	// The bounds of its local day must still contain it, or an
	// early-morning pending correction would vanish from the today-state
	// lookup.
	created := time.Date(2025, 6, 9, 19, 30, 0, 0, time.UTC)
	start, end := LocalDayBounds(created, ist)
	assert.Equal(t, time.Date(2025, 6, 9, 18, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 10, 18, 30, 0, 0, time.UTC), end)
	assert.True(t, !created.Before(start) && created.Before(end))

	// An instant after 00:00 UTC of the next local day belongs to
	// tomorrow's window, not today's.
	late := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)
	assert.False(t, late.Before(end))

	// The bounds agree with LocalDateOf on which day an instant is.
	assert.Equal(t, LocalDateOf(created, ist), LocalDateOf(start.In(ist), ist))
}

func TestParseMonth(t *testing.T) {
	t.Parallel()

	year, month, err := ParseMonth("2025-06")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.June, month)

	_, _, err = ParseMonth("2025/06")
	assert.Error(t, err)
	_, _, err = ParseMonth("June 2025")
	assert.Error(t, err)
}

func TestPrevMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2025-05", PrevMonth(2025, time.June))
	assert.Equal(t, "2024-12", PrevMonth(2025, time.January))
}

func TestMinutesToHM(t *testing.T) {
	t.Parallel()

	m := 510
	assert.Equal(t, "8h 30m", MinutesToHM(&m))
	zero := 0
	assert.Equal(t, "0h 0m", MinutesToHM(&zero))
	assert.Equal(t, "—", MinutesToHM(nil))
}

func TestResolveDateRange_DefaultsToCurrentMonth(t *testing.T) {
	t.Parallel()

	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start, end := ResolveDateRange(nil, nil, now, ist)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestResolveDateRange_ExplicitBoundsKept(t *testing.T) {
	t.Parallel()

	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	s := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	e := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	start, end := ResolveDateRange(&s, &e, time.Now(), ist)
	assert.Equal(t, s, start)
	assert.Equal(t, e, end)
}
