package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const standardWorkMinutes = 510

func TestDeriveMinutes(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC)

	t.Run("overtime beyond the standard day", func(t *testing.T) {
		clockOut := clockIn.Add(8*time.Hour + 45*time.Minute) // 525 minutes
		day := AttendanceDay{ClockIn: &clockIn, ClockOut: &clockOut}

		day.DeriveMinutes(standardWorkMinutes)

		assert.Equal(t, 525, *day.TotalMinutes)
		assert.Equal(t, 15, *day.OvertimeMinutes)
	})

	t.Run("short day has zero overtime", func(t *testing.T) {
		clockOut := clockIn.Add(4 * time.Hour)
		day := AttendanceDay{ClockIn: &clockIn, ClockOut: &clockOut}

		day.DeriveMinutes(standardWorkMinutes)

		assert.Equal(t, 240, *day.TotalMinutes)
		assert.Equal(t, 0, *day.OvertimeMinutes)
	})

	t.Run("exactly the standard day", func(t *testing.T) {
		clockOut := clockIn.Add(510 * time.Minute)
		day := AttendanceDay{ClockIn: &clockIn, ClockOut: &clockOut}

		day.DeriveMinutes(standardWorkMinutes)

		assert.Equal(t, 510, *day.TotalMinutes)
		assert.Equal(t, 0, *day.OvertimeMinutes)
	})

	t.Run("clock skew clamps at zero", func(t *testing.T) {
		clockOut := clockIn.Add(-10 * time.Minute)
		day := AttendanceDay{ClockIn: &clockIn, ClockOut: &clockOut}

		day.DeriveMinutes(standardWorkMinutes)

		assert.Equal(t, 0, *day.TotalMinutes)
		assert.Equal(t, 0, *day.OvertimeMinutes)
	})

	t.Run("partial seconds truncate", func(t *testing.T) {
		clockOut := clockIn.Add(90*time.Minute + 59*time.Second)
		day := AttendanceDay{ClockIn: &clockIn, ClockOut: &clockOut}

		day.DeriveMinutes(standardWorkMinutes)

		assert.Equal(t, 90, *day.TotalMinutes)
	})

	t.Run("open pair leaves minutes untouched", func(t *testing.T) {
		day := AttendanceDay{ClockIn: &clockIn}

		day.DeriveMinutes(standardWorkMinutes)

		assert.Nil(t, day.TotalMinutes)
		assert.Nil(t, day.OvertimeMinutes)
	})
}
