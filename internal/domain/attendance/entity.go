package attendance

import (
	"time"
)

// AttendanceDay is one clock-in/clock-out pair for one user on one local
// calendar day. AttendanceDate is the user's local day derived from the
// organizational timezone, not the UTC date of the clock-in instant.
type AttendanceDay struct {
	ID              string
	UserID          string
	AttendanceDate  time.Time
	ClockIn         *time.Time
	ClockOut        *time.Time
	TotalMinutes    *int
	OvertimeMinutes *int
	// IsManual marks rows touched by a correction request or admin edit
	// rather than a live clock action.
	IsManual  bool
	CreatedAt time.Time
	UpdatedAt *time.Time

	// Joined for listings
	UserName *string
}

// DeriveMinutes recomputes the worked and overtime minutes from the clock
// pair. Worked minutes clamp at zero so clock skew can never produce a
// negative duration; overtime is whatever exceeds the standard work day.
func (a *AttendanceDay) DeriveMinutes(standardWorkMinutes int) {
	if a.ClockIn == nil || a.ClockOut == nil {
		return
	}
	total := int(a.ClockOut.Sub(*a.ClockIn).Minutes())
	if total < 0 {
		total = 0
	}
	overtime := total - standardWorkMinutes
	if overtime < 0 {
		overtime = 0
	}
	a.TotalMinutes = &total
	a.OvertimeMinutes = &overtime
}
