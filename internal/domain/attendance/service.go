package attendance

import "context"

type AttendanceService interface {
	// ClockIn opens today's attendance row. Fails with ErrAlreadyClockedIn
	// when a row already exists for the user's local day.
	ClockIn(ctx context.Context, userID string) (AttendanceResponse, error)

	// ClockOut closes today's open row and derives worked minutes.
	ClockOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// MyAttendance lists the user's rows, most recent first.
	MyAttendance(ctx context.Context, userID string) ([]AttendanceResponse, error)

	// MonthlyAttendance lists one user's rows for the month selected by the
	// YYYY-MM cursor; an empty cursor means the current month. Returns nil
	// when the month has no rows and no older months exist.
	MonthlyAttendance(ctx context.Context, userID string, month string) (*MonthlyAttendanceResponse, error)

	// EditTime retroactively corrects one or both clock instants.
	EditTime(ctx context.Context, req AdminTimeEditRequest) (AttendanceResponse, error)

	// AvailableMonths lists the YYYY-MM months that have any attendance.
	AvailableMonths(ctx context.Context) ([]string, error)
}
