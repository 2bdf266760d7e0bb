package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, attendance_date, clock_in, clock_out,
	total_minutes, overtime_minutes, is_manual, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.AttendanceDay, error) {
	var day attendance.AttendanceDay
	err := row.Scan(
		&day.ID, &day.UserID, &day.AttendanceDate, &day.ClockIn, &day.ClockOut,
		&day.TotalMinutes, &day.OvertimeMinutes, &day.IsManual, &day.CreatedAt, &day.UpdatedAt,
	)
	return day, err
}

// Create inserts a new attendance row. The unique index on
// (user_id, attendance_date) serializes concurrent clock-ins: the loser of
// the race gets ErrAlreadyClockedIn instead of a duplicate row.
func (a *attendanceRepository) Create(ctx context.Context, day attendance.AttendanceDay) (attendance.AttendanceDay, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (
			user_id, attendance_date, clock_in, clock_out,
			total_minutes, overtime_minutes, is_manual
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.UserID,
		day.AttendanceDate,
		day.ClockIn,
		day.ClockOut,
		day.TotalMinutes,
		day.OvertimeMinutes,
		day.IsManual,
	).Scan(&day.ID, &day.CreatedAt, &day.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.AttendanceDay{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceDay{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return day, nil
}

func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.AttendanceDay, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1`

	day, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceDay{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceDay{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return day, nil
}

func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.AttendanceDay, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE user_id = $1 AND attendance_date = $2 LIMIT 1`

	day, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &day, nil
}

func (a *attendanceRepository) Update(ctx context.Context, day attendance.AttendanceDay) error {
	q := database.GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET clock_in = $2, clock_out = $3, total_minutes = $4,
		    overtime_minutes = $5, is_manual = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		day.ID, day.ClockIn, day.ClockOut, day.TotalMinutes, day.OvertimeMinutes, day.IsManual,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (a *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.AttendanceDay, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE user_id = $1 ORDER BY attendance_date DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (a *attendanceRepository) ListByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.AttendanceDay, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1 AND attendance_date >= $2 AND attendance_date < $3
		ORDER BY attendance_date ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]attendance.AttendanceDay, error) {
	var days []attendance.AttendanceDay
	for rows.Next() {
		day, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (a *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceDay, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.user_id, a.attendance_date, a.clock_in, a.clock_out,
		       a.total_minutes, a.overtime_minutes, a.is_manual, a.created_at, a.updated_at,
		       u.name AS user_name
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.attendance_date >= $1 AND a.attendance_date <= $2
		ORDER BY u.name ASC, a.attendance_date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for export: %w", err)
	}
	defer rows.Close()

	var days []attendance.AttendanceDay
	for rows.Next() {
		var day attendance.AttendanceDay
		if err := rows.Scan(
			&day.ID, &day.UserID, &day.AttendanceDate, &day.ClockIn, &day.ClockOut,
			&day.TotalMinutes, &day.OvertimeMinutes, &day.IsManual, &day.CreatedAt, &day.UpdatedAt,
			&day.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

// ListForDate left-joins active users against today's rows so the dashboard
// shows everyone, clocked in or not.
func (a *attendanceRepository) ListForDate(ctx context.Context, date time.Time) ([]attendance.TodayAttendanceItem, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, u.id, u.name, a.clock_in
		FROM users u
		LEFT JOIN attendance a ON a.user_id = u.id AND a.attendance_date = $1
		WHERE u.role = 'user' AND u.is_active
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}
	defer rows.Close()

	var items []attendance.TodayAttendanceItem
	for rows.Next() {
		var item attendance.TodayAttendanceItem
		if err := rows.Scan(&item.AttendanceID, &item.UserID, &item.UserName, &item.ClockIn); err != nil {
			return nil, fmt.Errorf("failed to scan today attendance row: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (a *attendanceRepository) SumMinutesInRange(ctx context.Context, userID string, start, end time.Time) (int, int, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `
		SELECT COALESCE(SUM(total_minutes), 0), COALESCE(SUM(overtime_minutes), 0)
		FROM attendance
		WHERE user_id = $1 AND attendance_date >= $2 AND attendance_date < $3
	`

	var total, overtime int
	if err := q.QueryRow(ctx, query, userID, start, end).Scan(&total, &overtime); err != nil {
		return 0, 0, fmt.Errorf("failed to sum minutes in range: %w", err)
	}

	return total, overtime, nil
}

func (a *attendanceRepository) DistinctDatesInRange(ctx context.Context, userID string, start, end time.Time) ([]time.Time, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `
		SELECT DISTINCT attendance_date
		FROM attendance
		WHERE user_id = $1 AND attendance_date >= $2 AND attendance_date < $3
		ORDER BY attendance_date ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct attendance dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan attendance date: %w", err)
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

func (a *attendanceRepository) MissingClockOutCount(ctx context.Context, userID string, start, end, today time.Time) (int, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(DISTINCT attendance_date)
		FROM attendance
		WHERE user_id = $1
		  AND attendance_date >= $2 AND attendance_date < $3
		  AND attendance_date < $4
		  AND clock_in IS NOT NULL
		  AND clock_out IS NULL
	`

	var count int
	if err := q.QueryRow(ctx, query, userID, start, end, today).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count missing clock-outs: %w", err)
	}

	return count, nil
}

func (a *attendanceRepository) AvailableMonths(ctx context.Context) ([]string, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `
		SELECT DISTINCT to_char(attendance_date, 'YYYY-MM') AS month
		FROM attendance
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list available months: %w", err)
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("failed to scan month: %w", err)
		}
		months = append(months, m)
	}

	return months, rows.Err()
}

func (a *attendanceRepository) AvailableMonthsForUser(ctx context.Context, userID string) ([]string, error) {
	q := database.GetQuerier(ctx, a.db)

	query := `
		SELECT DISTINCT to_char(attendance_date, 'YYYY-MM') AS month
		FROM attendance
		WHERE user_id = $1
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user months: %w", err)
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("failed to scan month: %w", err)
		}
		months = append(months, m)
	}

	return months, rows.Err()
}
