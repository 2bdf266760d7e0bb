package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
	"github.com/attendly/attendance-backend-go/internal/domain/request"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

type SummaryServiceImpl struct {
	attendance.AttendanceRepository
	holiday.HolidayRepository
	user.UserRepository
	requestService request.RequestService

	loc                 *time.Location
	standardWorkMinutes int
	lateCutoff          string
}

func NewSummaryService(
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	userRepo user.UserRepository,
	requestService request.RequestService,
	loc *time.Location,
	standardWorkMinutes int,
	lateCutoff string,
) summary.SummaryService {
	return &SummaryServiceImpl{
		AttendanceRepository: attendanceRepo,
		HolidayRepository:    holidayRepo,
		UserRepository:       userRepo,
		requestService:       requestService,
		loc:                  loc,
		standardWorkMinutes:  standardWorkMinutes,
		lateCutoff:           lateCutoff,
	}
}

// Compute folds the fetched ledger aggregates into a MonthlySummary.
// Payable days are the set union of attended and holiday dates, so a day
// that is both counts once; absent days can never go negative even when
// payable days exceed the elapsed days (e.g. a future-dated correction).
func Compute(month string, totalMinutes, overtimeMinutes int, attendanceDates, holidayDates []time.Time, effectiveDays int) summary.MonthlySummary {
	payable := make(map[string]struct{}, len(attendanceDates)+len(holidayDates))
	for _, d := range attendanceDates {
		payable[d.Format("2006-01-02")] = struct{}{}
	}
	presentDays := len(payable)
	for _, d := range holidayDates {
		payable[d.Format("2006-01-02")] = struct{}{}
	}

	absentDays := effectiveDays - len(payable)
	if absentDays < 0 {
		absentDays = 0
	}

	return summary.MonthlySummary{
		Month:               month,
		TotalWorkingMinutes: totalMinutes,
		OvertimeMinutes:     overtimeMinutes,
		PresentDays:         presentDays,
		PaidHolidays:        len(holidayDates),
		PayableDays:         len(payable),
		AbsentDays:          absentDays,
	}
}

// PayableAmount prices a month: fractional worked days plus paid holidays,
// times the per-day rate, rounded half-up to two decimal places. Note the
// formula re-adds holidays on top of worked days, so a worked holiday is
// paid twice here even though PayableDays counts it once; this mirrors the
// long-standing payout behavior and changing it is a payroll policy call.
func PayableAmount(totalMinutes, paidHolidays int, perDayRate decimal.Decimal, standardWorkMinutes int) decimal.Decimal {
	workedDays := decimal.NewFromInt(int64(totalMinutes)).
		Div(decimal.NewFromInt(int64(standardWorkMinutes)))
	payableDays := workedDays.Add(decimal.NewFromInt(int64(paidHolidays)))
	// Round is half away from zero; amounts here are non-negative, which
	// makes it exactly round-half-up.
	return payableDays.Mul(perDayRate).Round(2)
}

// effectiveRange bounds a month's queries: the full month for past months,
// through the end of today for the in-progress month.
func (s *SummaryServiceImpl) effectiveRange(year int, month time.Month, today time.Time) (start, end time.Time, effectiveDays int) {
	start, end = dateutil.MonthRange(year, month)
	effectiveDays = dateutil.EffectiveDays(year, month, today)
	if today.Year() == year && today.Month() == month {
		end = today.AddDate(0, 0, 1)
	}
	return start, end, effectiveDays
}

// MonthlySummary implements summary.SummaryService.
func (s *SummaryServiceImpl) MonthlySummary(ctx context.Context, userID string, month string) (summary.MonthlySummary, error) {
	year, m, err := dateutil.ParseMonth(month)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	today := dateutil.LocalDateOf(time.Now().UTC(), s.loc)
	start, end, effectiveDays := s.effectiveRange(year, m, today)

	totalMinutes, overtimeMinutes, err := s.AttendanceRepository.SumMinutesInRange(ctx, userID, start, end)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	attendanceDates, err := s.AttendanceRepository.DistinctDatesInRange(ctx, userID, start, end)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	holidayDates, err := s.HolidayRepository.ActiveDatesInRange(ctx, start, end)
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	return Compute(month, totalMinutes, overtimeMinutes, attendanceDates, holidayDates, effectiveDays), nil
}

// PayrollForMonth implements summary.SummaryService.
func (s *SummaryServiceImpl) PayrollForMonth(ctx context.Context, month string) ([]summary.PayrollRow, error) {
	year, m, err := dateutil.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	users, err := s.UserRepository.ListPayable(ctx)
	if err != nil {
		return nil, err
	}

	today := dateutil.LocalDateOf(time.Now().UTC(), s.loc)
	start, end, _ := s.effectiveRange(year, m, today)

	rows := make([]summary.PayrollRow, 0, len(users))
	for _, u := range users {
		if u.PerDayRate == nil {
			continue
		}

		monthSummary, err := s.MonthlySummary(ctx, u.ID, month)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize user %s: %w", u.ID, err)
		}
		if monthSummary.PresentDays == 0 {
			continue
		}

		missing, err := s.AttendanceRepository.MissingClockOutCount(ctx, u.ID, start, end, today)
		if err != nil {
			return nil, fmt.Errorf("failed to count missing clock-outs for user %s: %w", u.ID, err)
		}

		rows = append(rows, summary.PayrollRow{
			UserID:               u.ID,
			UserName:             u.Name,
			PerDayRate:           *u.PerDayRate,
			PresentDays:          monthSummary.PresentDays,
			PaidHolidays:         monthSummary.PaidHolidays,
			AbsentDays:           monthSummary.AbsentDays,
			TotalWorkingMinutes:  monthSummary.TotalWorkingMinutes,
			OvertimeMinutes:      monthSummary.OvertimeMinutes,
			PayableAmount:        PayableAmount(monthSummary.TotalWorkingMinutes, monthSummary.PaidHolidays, *u.PerDayRate, s.standardWorkMinutes),
			MissingClockOutCount: missing,
		})
	}

	return rows, nil
}

// DashboardStatus classifies a clock-in against the local late cutoff.
func DashboardStatus(clockIn *time.Time, loc *time.Location, lateCutoff string) string {
	if clockIn == nil {
		return "Not In Yet"
	}

	local := clockIn.In(loc)
	cutoff, err := time.Parse("15:04", lateCutoff)
	if err != nil {
		return "Present"
	}

	limit := time.Date(local.Year(), local.Month(), local.Day(), cutoff.Hour(), cutoff.Minute(), 0, 0, loc)
	if local.After(limit) {
		return "Late"
	}
	return "Present"
}

// Dashboard implements summary.SummaryService.
func (s *SummaryServiceImpl) Dashboard(ctx context.Context) (summary.AdminDashboard, error) {
	today := dateutil.LocalDateOf(time.Now().UTC(), s.loc)

	items, err := s.AttendanceRepository.ListForDate(ctx, today)
	if err != nil {
		return summary.AdminDashboard{}, err
	}

	todayAttendance := make([]summary.TodayAttendanceDashboardItem, 0, len(items))
	for _, item := range items {
		var clockIn *string
		if item.ClockIn != nil {
			formatted := item.ClockIn.UTC().Format(time.RFC3339)
			clockIn = &formatted
		}
		todayAttendance = append(todayAttendance, summary.TodayAttendanceDashboardItem{
			AttendanceID: item.AttendanceID,
			UserID:       item.UserID,
			UserName:     item.UserName,
			ClockIn:      clockIn,
			Status:       DashboardStatus(item.ClockIn, s.loc, s.lateCutoff),
		})
	}

	pending, err := s.requestService.PendingRequests(ctx)
	if err != nil {
		return summary.AdminDashboard{}, err
	}

	// The dashboard card shows only the oldest few.
	if len(pending) > 5 {
		pending = pending[:5]
	}
	pendingItems := make([]summary.PendingRequestDashboardItem, 0, len(pending))
	for _, req := range pending {
		name := ""
		if req.UserName != nil {
			name = *req.UserName
		}
		pendingItems = append(pendingItems, summary.PendingRequestDashboardItem{
			ID:            req.ID,
			UserID:        req.UserID,
			UserName:      name,
			RequestType:   req.RequestType,
			RequestedTime: req.RequestedTime,
			Status:        req.Status,
		})
	}

	return summary.AdminDashboard{
		TodayAttendance: todayAttendance,
		PendingRequests: pendingItems,
	}, nil
}
