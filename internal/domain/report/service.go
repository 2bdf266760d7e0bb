package report

import "context"

type ReportService interface {
	// AttendanceWorkbook renders every user's attendance in [startDate,
	// endDate] as an Excel workbook. Absent bounds default to the current
	// month in the organizational timezone.
	AttendanceWorkbook(ctx context.Context, startDate, endDate *string) (Workbook, error)
}
