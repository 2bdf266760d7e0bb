package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/request"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testDB *database.DB

// requireDB connects once; without TEST_DATABASE_URL the suite is skipped
// so unit runs stay green on machines without Postgres.
func requireDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}
	return testDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"attendance_requests", "refresh_tokens", "attendance", "paid_holidays", "users"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, ctx context.Context, db *database.DB, email string) string {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	var userID string
	err := db.QueryRow(ctx, `
		INSERT INTO users (name, email, role, password_hash, is_active)
		VALUES ('Test User', $1, 'user', $2, true)
		RETURNING id
	`, email, string(hashed)).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func TestAttendanceRepository_CreateEnforcesOneRowPerDay(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	repo := postgresql.NewAttendanceRepository(db)
	userID := createTestUser(t, ctx, db, "one-row@example.com")

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	clockIn := time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC)

	first, err := repo.Create(ctx, attendance.AttendanceDay{
		UserID:         userID,
		AttendanceDate: today,
		ClockIn:        &clockIn,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = repo.Create(ctx, attendance.AttendanceDay{
		UserID:         userID,
		AttendanceDate: today,
		ClockIn:        &clockIn,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	// A different day is fine.
	_, err = repo.Create(ctx, attendance.AttendanceDay{
		UserID:         userID,
		AttendanceDate: today.AddDate(0, 0, 1),
		ClockIn:        &clockIn,
	})
	assert.NoError(t, err)
}

func TestAttendanceRepository_GetByUserAndDate(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	repo := postgresql.NewAttendanceRepository(db)
	userID := createTestUser(t, ctx, db, "by-date@example.com")

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got, err := repo.GetByUserAndDate(ctx, userID, today)
	require.NoError(t, err)
	assert.Nil(t, got)

	clockIn := time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC)
	_, err = repo.Create(ctx, attendance.AttendanceDay{
		UserID:         userID,
		AttendanceDate: today,
		ClockIn:        &clockIn,
	})
	require.NoError(t, err)

	got, err = repo.GetByUserAndDate(ctx, userID, today)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)
	assert.True(t, got.ClockIn.Equal(clockIn))
}

func TestAttendanceRepository_SumAndDistinctDates(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	repo := postgresql.NewAttendanceRepository(db)
	userID := createTestUser(t, ctx, db, "sums@example.com")

	for day, minutes := range map[int]int{3: 510, 4: 525, 5: 240} {
		date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
		clockIn := date.Add(3 * time.Hour)
		clockOut := clockIn.Add(time.Duration(minutes) * time.Minute)
		rec := attendance.AttendanceDay{
			UserID:         userID,
			AttendanceDate: date,
			ClockIn:        &clockIn,
			ClockOut:       &clockOut,
		}
		rec.DeriveMinutes(510)
		_, err := repo.Create(ctx, rec)
		require.NoError(t, err)
	}

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	total, overtime, err := repo.SumMinutesInRange(ctx, userID, start, end)
	require.NoError(t, err)
	assert.Equal(t, 1275, total)
	assert.Equal(t, 15, overtime)

	dates, err := repo.DistinctDatesInRange(ctx, userID, start, end)
	require.NoError(t, err)
	assert.Len(t, dates, 3)

	months, err := repo.AvailableMonths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03"}, months)
}

func TestAttendanceRepository_AvailableMonthsForUser(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	repo := postgresql.NewAttendanceRepository(db)
	first := createTestUser(t, ctx, db, "months-a@example.com")
	second := createTestUser(t, ctx, db, "months-b@example.com")

	for userID, date := range map[string]time.Time{
		first:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		second: time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC),
	} {
		clockIn := date.Add(3 * time.Hour)
		_, err := repo.Create(ctx, attendance.AttendanceDay{
			UserID:         userID,
			AttendanceDate: date,
			ClockIn:        &clockIn,
		})
		require.NoError(t, err)
	}

	// Each user sees only their own months; the admin view stays global.
	months, err := repo.AvailableMonthsForUser(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03"}, months)

	months, err = repo.AvailableMonthsForUser(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-11"}, months)

	months, err = repo.AvailableMonths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03", "2024-11"}, months)
}

func TestRequestRepository_PendingWindowCoversEarlyLocalMorning(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	repo := postgresql.NewRequestRepository(db)
	userID := createTestUser(t, ctx, db, "early-morning@example.com")

	requested := time.Date(2025, 6, 9, 19, 30, 0, 0, time.UTC)
	created, err := repo.Create(ctx, request.CorrectionRequest{
		UserID:        userID,
		RequestType:   request.TypeForgotClockIn,
		RequestedTime: &requested,
		Reason:        "forgot to clock in",
		Status:        request.StatusPending,
	})
	require.NoError(t, err)

	// 19:30 UTC is 01:00 the next day in Kolkata. Pin created_at there so
	// the lookup has to reach before 00:00 UTC to find it.
	_, err = db.Exec(ctx, `UPDATE attendance_requests SET created_at = $1 WHERE id = $2`, requested, created.ID)
	require.NoError(t, err)

	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	dayStart, dayEnd := dateutil.LocalDayBounds(requested, ist)

	got, err := repo.GetPendingByUserAndType(ctx, userID, dayStart, dayEnd, request.TypeForgotClockIn)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	// The same request is not yesterday's.
	prevStart, prevEnd := dateutil.LocalDayBounds(requested.AddDate(0, 0, -1), ist)
	got, err = repo.GetPendingByUserAndType(ctx, userID, prevStart, prevEnd, request.TypeForgotClockIn)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRequestRepository_DecideIsSingleShot(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	repo := postgresql.NewRequestRepository(db)
	userID := createTestUser(t, ctx, db, "decide@example.com")
	adminID := createTestUser(t, ctx, db, "admin-decide@example.com")

	requested := time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC)
	created, err := repo.Create(ctx, request.CorrectionRequest{
		UserID:        userID,
		RequestType:   request.TypeForgotClockIn,
		RequestedTime: &requested,
		Reason:        "forgot my badge",
		Status:        request.StatusPending,
	})
	require.NoError(t, err)

	won, err := repo.Decide(ctx, created.ID, request.StatusApproved, adminID, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, won)

	// The second decision loses: the status guard only matches PENDING.
	won, err = repo.Decide(ctx, created.ID, request.StatusRejected, adminID, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, won)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, got.Status)
	assert.NotNil(t, got.ReviewedAt)
}
