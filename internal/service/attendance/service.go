package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository

	loc                 *time.Location
	standardWorkMinutes int
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	loc *time.Location,
	standardWorkMinutes int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		loc:                  loc,
		standardWorkMinutes:  standardWorkMinutes,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func mapToResponse(day attendance.AttendanceDay) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:              day.ID,
		UserID:          day.UserID,
		UserName:        day.UserName,
		AttendanceDate:  day.AttendanceDate.Format("2006-01-02"),
		ClockIn:         timePtrToString(day.ClockIn),
		ClockOut:        timePtrToString(day.ClockOut),
		TotalMinutes:    day.TotalMinutes,
		OvertimeMinutes: day.OvertimeMinutes,
		IsManual:        day.IsManual,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	nowUTC := time.Now().UTC()
	today := dateutil.LocalDateOf(nowUTC, a.loc)

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	// The existence check above only narrows the race window; the unique
	// constraint on (user_id, attendance_date) decides the winner, and the
	// repository surfaces the loss as ErrAlreadyClockedIn.
	day := attendance.AttendanceDay{
		UserID:         userID,
		AttendanceDate: today,
		ClockIn:        &nowUTC,
		IsManual:       false,
	}

	created, err := a.AttendanceRepository.Create(ctx, day)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	nowUTC := time.Now().UTC()
	today := dateutil.LocalDateOf(nowUTC, a.loc)

	day, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if day == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if day.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	day.ClockOut = &nowUTC
	day.DeriveMinutes(a.standardWorkMinutes)

	if err := a.AttendanceRepository.Update(ctx, *day); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(*day), nil
}

// MyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MyAttendance(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	days, err := a.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, mapToResponse(day))
	}

	return responses, nil
}

// MonthlyAttendance implements attendance.AttendanceService. The month
// cursor pages backwards through a user's history one month at a time; nil
// signals the caller ran out of data rather than an error.
func (a *AttendanceServiceImpl) MonthlyAttendance(ctx context.Context, userID string, month string) (*attendance.MonthlyAttendanceResponse, error) {
	if month == "" {
		month = dateutil.FormatMonth(dateutil.LocalDateOf(time.Now().UTC(), a.loc))
	}

	year, m, err := dateutil.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	start, end := dateutil.MonthRange(year, m)
	days, err := a.AttendanceRepository.ListByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	months, err := a.AttendanceRepository.AvailableMonthsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Older data exists when any of the user's recorded months sorts
	// before this one.
	var prev *string
	for _, recorded := range months {
		if recorded < month {
			p := recorded
			prev = &p
			break
		}
	}

	if len(days) == 0 && prev == nil {
		return nil, nil
	}

	responses := make([]attendance.AttendanceResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, mapToResponse(day))
	}

	return &attendance.MonthlyAttendanceResponse{
		Month:       month,
		PrevMonth:   prev,
		Attendances: responses,
	}, nil
}

// EditTime implements attendance.AttendanceService. Admin-only retroactive
// correction of either clock instant; derived minutes recompute only when
// both instants are present after the edit.
func (a *AttendanceServiceImpl) EditTime(ctx context.Context, req attendance.AdminTimeEditRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	newClockIn, newClockOut := req.Times()
	if newClockIn == nil && newClockOut == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoFieldsToUpdate
	}

	day, err := a.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if newClockIn != nil {
		t := newClockIn.UTC()
		day.ClockIn = &t
	}
	if newClockOut != nil {
		t := newClockOut.UTC()
		day.ClockOut = &t
	}

	if day.ClockIn != nil && day.ClockOut != nil {
		if !day.ClockOut.After(*day.ClockIn) {
			return attendance.AttendanceResponse{}, attendance.ErrInvalidClockOrder
		}
		day.DeriveMinutes(a.standardWorkMinutes)
	}
	day.IsManual = true

	if err := a.AttendanceRepository.Update(ctx, day); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(day), nil
}

// AvailableMonths implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AvailableMonths(ctx context.Context) ([]string, error) {
	return a.AttendanceRepository.AvailableMonths(ctx)
}
