package request

import (
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/request"
	"github.com/stretchr/testify/assert"
)

func TestResolveTodayState(t *testing.T) {
	clockIn := time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC)
	clockOut := clockIn.Add(9 * time.Hour)
	requested := clockIn.Add(15 * time.Minute)

	pendingIn := &request.CorrectionRequest{
		RequestType:   request.TypeForgotClockIn,
		RequestedTime: &requested,
		Status:        request.StatusPending,
	}
	pendingOut := &request.CorrectionRequest{
		RequestType: request.TypeForgotClockOut,
		Status:      request.StatusPending,
	}

	t.Run("no row and no pending requests", func(t *testing.T) {
		state := ResolveTodayState(nil, nil, nil)

		assert.Equal(t, request.StateNotClockedIn, state.State)
		assert.Equal(t, request.SourceNone, state.Source)
		assert.True(t, state.CanClockIn)
		assert.True(t, state.CanRequestIn)
		assert.False(t, state.CanClockOut)
	})

	t.Run("open attendance row", func(t *testing.T) {
		day := &attendance.AttendanceDay{ClockIn: &clockIn}

		state := ResolveTodayState(day, nil, nil)

		assert.Equal(t, request.StateClockedIn, state.State)
		assert.Equal(t, request.SourceAttendance, state.Source)
		assert.Equal(t, &clockIn, state.EffectiveClockIn)
		assert.True(t, state.CanClockOut)
		assert.False(t, state.CanClockIn)
	})

	t.Run("closed attendance row", func(t *testing.T) {
		day := &attendance.AttendanceDay{ClockIn: &clockIn, ClockOut: &clockOut}

		state := ResolveTodayState(day, nil, nil)

		assert.Equal(t, request.StateClockedOut, state.State)
		assert.Equal(t, request.SourceAttendance, state.Source)
		assert.False(t, state.CanClockIn)
		assert.False(t, state.CanClockOut)
		assert.False(t, state.CanRequestIn)
		assert.False(t, state.CanRequestOut)
	})

	t.Run("attendance row wins over pending requests", func(t *testing.T) {
		day := &attendance.AttendanceDay{ClockIn: &clockIn}

		state := ResolveTodayState(day, pendingIn, pendingOut)

		assert.Equal(t, request.SourceAttendance, state.Source)
	})

	t.Run("pending clock-in request acts as virtual clock-in", func(t *testing.T) {
		state := ResolveTodayState(nil, pendingIn, nil)

		assert.Equal(t, request.StateClockedIn, state.State)
		assert.Equal(t, request.SourceRequest, state.Source)
		assert.Equal(t, &requested, state.EffectiveClockIn)
		assert.True(t, state.CanClockOut)
		assert.True(t, state.CanRequestOut)
		assert.False(t, state.CanClockIn)
	})

	t.Run("pending clock-in plus pending clock-out", func(t *testing.T) {
		state := ResolveTodayState(nil, pendingIn, pendingOut)

		assert.Equal(t, request.StateClockedIn, state.State)
		assert.False(t, state.CanRequestOut)
	})

	t.Run("pending clock-out request alone", func(t *testing.T) {
		state := ResolveTodayState(nil, nil, pendingOut)

		assert.Equal(t, request.StateClockedOut, state.State)
		assert.Equal(t, request.SourceRequest, state.Source)
		assert.False(t, state.CanClockIn)
		assert.False(t, state.CanClockOut)
	})

	t.Run("clock-in and clock-out are never both enabled", func(t *testing.T) {
		days := []*attendance.AttendanceDay{
			nil,
			{ClockIn: &clockIn},
			{ClockIn: &clockIn, ClockOut: &clockOut},
		}
		ins := []*request.CorrectionRequest{nil, pendingIn}
		outs := []*request.CorrectionRequest{nil, pendingOut}

		for _, day := range days {
			for _, in := range ins {
				for _, out := range outs {
					state := ResolveTodayState(day, in, out)
					assert.False(t, state.CanClockIn && state.CanClockOut,
						"both actions enabled for day=%v in=%v out=%v", day, in, out)
				}
			}
		}
	})
}
