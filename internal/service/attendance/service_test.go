package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo stubs only what the cursor and edit paths touch.
type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	byMonth      map[string][]attendance.AttendanceDay
	monthsByUser map[string][]string

	byID    map[string]attendance.AttendanceDay
	updated *attendance.AttendanceDay
}

func (f *fakeAttendanceRepo) ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.AttendanceDay, error) {
	var days []attendance.AttendanceDay
	for _, day := range f.byMonth[start.Format("2006-01")] {
		if day.UserID == userID {
			days = append(days, day)
		}
	}
	return days, nil
}

func (f *fakeAttendanceRepo) AvailableMonthsForUser(ctx context.Context, userID string) ([]string, error) {
	return f.monthsByUser[userID], nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.AttendanceDay, error) {
	day, ok := f.byID[id]
	if !ok {
		return attendance.AttendanceDay{}, attendance.ErrAttendanceNotFound
	}
	return day, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, day attendance.AttendanceDay) error {
	f.updated = &day
	return nil
}

func newTestService(repo *fakeAttendanceRepo) *AttendanceServiceImpl {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		loc:                  loc,
		standardWorkMinutes:  510,
	}
}

func monthDay(userID string, y int, m time.Month, d int) attendance.AttendanceDay {
	return attendance.AttendanceDay{
		UserID:         userID,
		AttendanceDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

func TestMonthlyAttendanceCursor(t *testing.T) {
	repo := &fakeAttendanceRepo{
		byMonth: map[string][]attendance.AttendanceDay{
			"2025-03": {monthDay("u1", 2025, time.March, 3), monthDay("u1", 2025, time.March, 4)},
			"2025-01": {monthDay("u1", 2025, time.January, 10)},
			"2024-11": {monthDay("u2", 2024, time.November, 5)},
		},
		monthsByUser: map[string][]string{
			"u1": {"2025-03", "2025-01"},
			"u2": {"2024-11"},
		},
	}
	svc := newTestService(repo)

	t.Run("month with data and older history", func(t *testing.T) {
		page, err := svc.MonthlyAttendance(context.Background(), "u1", "2025-03")
		require.NoError(t, err)
		require.NotNil(t, page)

		assert.Equal(t, "2025-03", page.Month)
		assert.Len(t, page.Attendances, 2)
		require.NotNil(t, page.PrevMonth)
		assert.Equal(t, "2025-01", *page.PrevMonth)
	})

	t.Run("empty month between recorded months still pages back", func(t *testing.T) {
		page, err := svc.MonthlyAttendance(context.Background(), "u1", "2025-02")
		require.NoError(t, err)
		require.NotNil(t, page)

		assert.Empty(t, page.Attendances)
		require.NotNil(t, page.PrevMonth)
		assert.Equal(t, "2025-01", *page.PrevMonth)
	})

	t.Run("oldest month has no previous", func(t *testing.T) {
		page, err := svc.MonthlyAttendance(context.Background(), "u1", "2025-01")
		require.NoError(t, err)
		require.NotNil(t, page)

		assert.Nil(t, page.PrevMonth)
	})

	t.Run("past the oldest data returns nil", func(t *testing.T) {
		page, err := svc.MonthlyAttendance(context.Background(), "u1", "2024-12")
		require.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("other users' months never extend the cursor", func(t *testing.T) {
		// u2 has November 2024 data; u1's listing must still end at
		// January 2025 instead of paging into company-wide history.
		page, err := svc.MonthlyAttendance(context.Background(), "u1", "2025-01")
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Nil(t, page.PrevMonth)

		page, err = svc.MonthlyAttendance(context.Background(), "u2", "2024-11")
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Len(t, page.Attendances, 1)
		assert.Nil(t, page.PrevMonth)
	})

	t.Run("malformed month is an error", func(t *testing.T) {
		_, err := svc.MonthlyAttendance(context.Background(), "u1", "March-2025")
		assert.Error(t, err)
	})
}

func TestEditTime(t *testing.T) {
	baseIn := time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC)

	newRepo := func() *fakeAttendanceRepo {
		return &fakeAttendanceRepo{
			byID: map[string]attendance.AttendanceDay{
				"a1": {
					ID:             "a1",
					UserID:         "u1",
					AttendanceDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					ClockIn:        &baseIn,
				},
			},
		}
	}

	t.Run("setting clock-out derives minutes and marks manual", func(t *testing.T) {
		repo := newRepo()
		svc := newTestService(repo)

		out := baseIn.Add(9 * time.Hour).Format(time.RFC3339)
		resp, err := svc.EditTime(context.Background(), attendance.AdminTimeEditRequest{
			AttendanceID: "a1",
			ClockOut:     &out,
		})
		require.NoError(t, err)

		assert.True(t, resp.IsManual)
		require.NotNil(t, repo.updated)
		assert.Equal(t, 540, *repo.updated.TotalMinutes)
		assert.Equal(t, 30, *repo.updated.OvertimeMinutes)
	})

	t.Run("no fields to update", func(t *testing.T) {
		svc := newTestService(newRepo())

		_, err := svc.EditTime(context.Background(), attendance.AdminTimeEditRequest{AttendanceID: "a1"})
		assert.ErrorIs(t, err, attendance.ErrNoFieldsToUpdate)
	})

	t.Run("clock-out before clock-in is rejected", func(t *testing.T) {
		repo := newRepo()
		svc := newTestService(repo)

		out := baseIn.Add(-time.Minute).Format(time.RFC3339)
		_, err := svc.EditTime(context.Background(), attendance.AdminTimeEditRequest{
			AttendanceID: "a1",
			ClockOut:     &out,
		})
		assert.ErrorIs(t, err, attendance.ErrInvalidClockOrder)
		assert.Nil(t, repo.updated)
	})

	t.Run("unknown attendance id", func(t *testing.T) {
		svc := newTestService(newRepo())

		out := baseIn.Add(time.Hour).Format(time.RFC3339)
		_, err := svc.EditTime(context.Background(), attendance.AdminTimeEditRequest{
			AttendanceID: "missing",
			ClockOut:     &out,
		})
		assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	})
}
