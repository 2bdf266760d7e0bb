package attendance

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name,omitempty"`
	AttendanceDate  string  `json:"attendance_date"`
	ClockIn         *string `json:"clock_in"`
	ClockOut        *string `json:"clock_out"`
	TotalMinutes    *int    `json:"total_minutes"`
	OvertimeMinutes *int    `json:"overtime_minutes"`
	IsManual        bool    `json:"is_manual"`
}

// TodayAttendanceItem is one dashboard row: every active user with their
// clock-in for today, if any.
type TodayAttendanceItem struct {
	AttendanceID *string
	UserID       string
	UserName     string
	ClockIn      *time.Time
}

type AdminTimeEditRequest struct {
	AttendanceID string  `json:"-"`
	ClockIn      *string `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`

	clockIn  *time.Time
	clockOut *time.Time
}

func (r *AdminTimeEditRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockIn != nil {
		t, ok := validator.IsValidInstant(*r.ClockIn)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in must be RFC 3339"})
		} else {
			r.clockIn = &t
		}
	}
	if r.ClockOut != nil {
		t, ok := validator.IsValidInstant(*r.ClockOut)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock_out must be RFC 3339"})
		} else {
			r.clockOut = &t
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Times returns the parsed instants; call Validate first.
func (r *AdminTimeEditRequest) Times() (clockIn, clockOut *time.Time) {
	return r.clockIn, r.clockOut
}

// MonthlyAttendanceResponse is one page of the per-user monthly listing.
// Month is the YYYY-MM cursor this page covers; PrevMonth is the cursor for
// the next older page, absent when no older data exists.
type MonthlyAttendanceResponse struct {
	Month       string               `json:"month"`
	PrevMonth   *string              `json:"prev_month"`
	Attendances []AttendanceResponse `json:"attendances"`
}
