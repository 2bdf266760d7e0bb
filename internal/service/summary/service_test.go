package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dates(days ...int) []time.Time {
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		out = append(out, date(2025, time.March, d))
	}
	return out
}

func TestCompute(t *testing.T) {
	t.Run("disjoint attendance and holidays", func(t *testing.T) {
		got := Compute("2025-03", 5100, 120, dates(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), dates(15, 16), 15)

		assert.Equal(t, 10, got.PresentDays)
		assert.Equal(t, 2, got.PaidHolidays)
		assert.Equal(t, 12, got.PayableDays)
		assert.Equal(t, 3, got.AbsentDays)
		assert.Equal(t, 5100, got.TotalWorkingMinutes)
		assert.Equal(t, 120, got.OvertimeMinutes)
	})

	t.Run("worked holiday counts once in payable days", func(t *testing.T) {
		got := Compute("2025-03", 1020, 0, dates(3, 4), dates(4), 10)

		assert.Equal(t, 2, got.PresentDays)
		assert.Equal(t, 1, got.PaidHolidays)
		assert.Equal(t, 2, got.PayableDays)
		assert.Equal(t, 8, got.AbsentDays)
	})

	t.Run("empty month", func(t *testing.T) {
		got := Compute("2025-03", 0, 0, nil, nil, 31)

		assert.Equal(t, 0, got.PresentDays)
		assert.Equal(t, 0, got.PayableDays)
		assert.Equal(t, 31, got.AbsentDays)
	})

	t.Run("absent days never go negative", func(t *testing.T) {
		// A correction can land attendance on a not-yet-elapsed date.
		got := Compute("2025-03", 2040, 0, dates(1, 2, 3, 4), nil, 3)

		assert.Equal(t, 0, got.AbsentDays)
	})

	t.Run("duplicate attendance dates collapse", func(t *testing.T) {
		got := Compute("2025-03", 1020, 0, append(dates(5), dates(5)...), nil, 10)

		assert.Equal(t, 1, got.PresentDays)
		assert.Equal(t, 1, got.PayableDays)
	})
}

func TestPayableAmount(t *testing.T) {
	rate := decimal.NewFromInt(1000)

	t.Run("whole worked days", func(t *testing.T) {
		// 5100 minutes = exactly 10 standard days.
		got := PayableAmount(5100, 0, rate, 510)

		assert.True(t, got.Equal(decimal.NewFromInt(10000)), "got %s", got)
	})

	t.Run("holidays paid on top of worked days", func(t *testing.T) {
		got := PayableAmount(5100, 2, rate, 510)

		assert.True(t, got.Equal(decimal.NewFromInt(12000)), "got %s", got)
	})

	t.Run("fractional days rounded half-up to cents", func(t *testing.T) {
		// 255 minutes = 0.5 day.
		got := PayableAmount(255, 0, rate, 510)

		assert.True(t, got.Equal(decimal.NewFromInt(500)), "got %s", got)
	})

	t.Run("repeating fraction", func(t *testing.T) {
		// 100/510 day * 1000 = 196.0784... rounds to 196.08.
		got := PayableAmount(100, 0, rate, 510)

		assert.Equal(t, "196.08", got.StringFixed(2))
	})

	t.Run("zero everything", func(t *testing.T) {
		got := PayableAmount(0, 0, rate, 510)

		assert.True(t, got.IsZero())
	})
}

func TestDashboardStatus(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	assert.NoError(t, err)

	at := func(hour, minute int) *time.Time {
		// Build the instant in IST, pass it around as UTC.
		t := time.Date(2025, 3, 10, hour, minute, 0, 0, loc).UTC()
		return &t
	}

	t.Run("before the cutoff", func(t *testing.T) {
		assert.Equal(t, "Present", DashboardStatus(at(8, 45), loc, "09:00"))
	})

	t.Run("at the cutoff exactly", func(t *testing.T) {
		assert.Equal(t, "Present", DashboardStatus(at(9, 0), loc, "09:00"))
	})

	t.Run("after the cutoff", func(t *testing.T) {
		assert.Equal(t, "Late", DashboardStatus(at(9, 1), loc, "09:00"))
	})

	t.Run("no clock-in", func(t *testing.T) {
		assert.Equal(t, "Not In Yet", DashboardStatus(nil, loc, "09:00"))
	})
}
