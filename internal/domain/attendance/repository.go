package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows. The storage
// layer carries a unique constraint on (user_id, attendance_date); Create
// surfaces a violation as ErrAlreadyClockedIn so concurrent clock-ins are
// serialized by the database rather than an application-level check.
type AttendanceRepository interface {
	Create(ctx context.Context, day AttendanceDay) (AttendanceDay, error)

	GetByID(ctx context.Context, id string) (AttendanceDay, error)

	// GetByUserAndDate returns nil when the user has no row for the date.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*AttendanceDay, error)

	// Update persists the clock pair, derived minutes and is_manual flag.
	Update(ctx context.Context, day AttendanceDay) error

	// ListByUser returns all rows for a user, most recent first.
	ListByUser(ctx context.Context, userID string) ([]AttendanceDay, error)

	// ListByUserAndRange returns rows with attendance_date in [start, end).
	ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]AttendanceDay, error)

	// ListByRange returns rows for all users in [start, end] inclusive,
	// joined with user names, ordered by user then date. Export feed.
	ListByRange(ctx context.Context, start, end time.Time) ([]AttendanceDay, error)

	// ListForDate returns one entry per active user for the given date,
	// with a null clock-in for users who have not clocked in. Dashboard feed.
	ListForDate(ctx context.Context, date time.Time) ([]TodayAttendanceItem, error)

	// SumMinutesInRange sums total and overtime minutes over [start, end).
	SumMinutesInRange(ctx context.Context, userID string, start, end time.Time) (total, overtime int, err error)

	// DistinctDatesInRange returns the distinct attendance dates in [start, end).
	DistinctDatesInRange(ctx context.Context, userID string, start, end time.Time) ([]time.Time, error)

	// MissingClockOutCount counts dates in [start, end) strictly before
	// today with a clock-in but no clock-out.
	MissingClockOutCount(ctx context.Context, userID string, start, end, today time.Time) (int, error)

	// AvailableMonths returns the distinct YYYY-MM months that have any
	// attendance, most recent first.
	AvailableMonths(ctx context.Context) ([]string, error)

	// AvailableMonthsForUser returns the distinct YYYY-MM months with
	// attendance for one user, most recent first. The month cursor pages
	// over this list so a user never lands on months that hold only other
	// people's data.
	AvailableMonthsForUser(ctx context.Context, userID string) ([]string, error)
}
