package summary

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary aggregates one user's ledger for one month.
type MonthlySummary struct {
	Month               string `json:"month"`
	TotalWorkingMinutes int    `json:"totalWorkingMinutes"`
	OvertimeMinutes     int    `json:"overtimeMinutes"`
	PresentDays         int    `json:"presentDays"`
	PaidHolidays        int    `json:"paidHolidays"`
	PayableDays         int    `json:"payableDays"`
	AbsentDays          int    `json:"absentDays"`
}

// PayrollRow is one user's payout line for a month. Users with zero present
// days are omitted entirely.
type PayrollRow struct {
	UserID               string          `json:"userId"`
	UserName             string          `json:"userName"`
	PerDayRate           decimal.Decimal `json:"perDayRate"`
	PresentDays          int             `json:"presentDays"`
	PaidHolidays         int             `json:"paidHolidays"`
	AbsentDays           int             `json:"absentDays"`
	TotalWorkingMinutes  int             `json:"totalWorkingMinutes"`
	OvertimeMinutes      int             `json:"overtimeMinutes"`
	PayableAmount        decimal.Decimal `json:"payableAmount"`
	MissingClockOutCount int             `json:"missingClockOutCount"`
}

// TodayAttendanceDashboardItem is one user's row on the admin dashboard.
type TodayAttendanceDashboardItem struct {
	AttendanceID *string `json:"attendance_id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name"`
	ClockIn      *string `json:"clock_in"`
	Status       string  `json:"status"` // Present | Late | Not In Yet
}

type PendingRequestDashboardItem struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	RequestType   string  `json:"request_type"`
	RequestedTime *string `json:"requested_time"`
	Status        string  `json:"status"`
}

type AdminDashboard struct {
	TodayAttendance []TodayAttendanceDashboardItem `json:"today_attendance"`
	PendingRequests []PendingRequestDashboardItem  `json:"pending_requests"`
}
