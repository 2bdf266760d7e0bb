package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Attendance"

	// Each user occupies five data columns plus one spacer.
	blockWidth = 6
)

var blockHeaders = []string{"Date", "In", "Out", "Total Hours", "Overtime"}

type ReportServiceImpl struct {
	attendance.AttendanceRepository

	loc *time.Location
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		loc:                  loc,
	}
}

// AttendanceWorkbook implements report.ReportService.
func (s *ReportServiceImpl) AttendanceWorkbook(ctx context.Context, startDate, endDate *string) (report.Workbook, error) {
	var errs validator.ValidationErrors
	var startPtr, endPtr *time.Time

	if startDate != nil {
		t, ok := validator.IsValidDate(*startDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		} else {
			startPtr = &t
		}
	}
	if endDate != nil {
		t, ok := validator.IsValidDate(*endDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		} else {
			endPtr = &t
		}
	}
	if len(errs) > 0 {
		return report.Workbook{}, errs
	}

	start, end := dateutil.ResolveDateRange(startPtr, endPtr, time.Now().UTC(), s.loc)
	if end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not precede start_date"})
		return report.Workbook{}, errs
	}

	days, err := s.AttendanceRepository.ListByRange(ctx, start, end)
	if err != nil {
		return report.Workbook{}, err
	}

	buf, err := s.render(days)
	if err != nil {
		return report.Workbook{}, fmt.Errorf("failed to render attendance workbook: %w", err)
	}

	return report.Workbook{
		FileName: fmt.Sprintf("attendance_%s_%s.xlsx", start.Format("2006-01-02"), end.Format("2006-01-02")),
		Content:  buf,
	}, nil
}

// userBlock is one user's contiguous slice of the export feed.
type userBlock struct {
	name string
	days []attendance.AttendanceDay
}

// groupByUser splits the feed into per-user blocks. The feed is already
// ordered by user then date, so a single pass suffices.
func groupByUser(days []attendance.AttendanceDay) []userBlock {
	var blocks []userBlock
	for _, day := range days {
		name := day.UserID
		if day.UserName != nil {
			name = *day.UserName
		}
		if len(blocks) == 0 || blocks[len(blocks)-1].name != name {
			blocks = append(blocks, userBlock{name: name})
		}
		last := &blocks[len(blocks)-1]
		last.days = append(last.days, day)
	}
	return blocks
}

// render lays users out side by side: a merged bold name header over each
// five-column block, a header row, then one row per attendance date.
func (s *ReportServiceImpl) render(days []attendance.AttendanceDay) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	nameStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, block := range groupByUser(days) {
		startCol := i*blockWidth + 1

		firstCell, err := excelize.CoordinatesToCellName(startCol, 1)
		if err != nil {
			return nil, err
		}
		lastCell, err := excelize.CoordinatesToCellName(startCol+len(blockHeaders)-1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.MergeCell(sheetName, firstCell, lastCell); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, firstCell, block.name); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, firstCell, lastCell, nameStyle); err != nil {
			return nil, err
		}

		for j, header := range blockHeaders {
			cell, err := excelize.CoordinatesToCellName(startCol+j, 2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, header); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
				return nil, err
			}
		}

		dateCol, err := excelize.ColumnNumberToName(startCol)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, dateCol, dateCol, 12); err != nil {
			return nil, err
		}

		for r, day := range block.days {
			row := r + 3
			values := []string{
				day.AttendanceDate.Format("2006-01-02"),
				s.clockCell(day.ClockIn),
				s.clockCell(day.ClockOut),
				dateutil.MinutesToHM(day.TotalMinutes),
				dateutil.MinutesToHM(day.OvertimeMinutes),
			}
			for j, v := range values {
				cell, err := excelize.CoordinatesToCellName(startCol+j, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheetName, cell, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return f.WriteToBuffer()
}

// clockCell renders a clock instant as local wall time; empty slots get the
// same em dash the duration cells use.
func (s *ReportServiceImpl) clockCell(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.In(s.loc).Format("15:04")
}
