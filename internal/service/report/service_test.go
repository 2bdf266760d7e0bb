package report

import (
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func testDays() []attendance.AttendanceDay {
	clockIn := time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC)
	clockOut := clockIn.Add(510 * time.Minute)

	return []attendance.AttendanceDay{
		{
			UserID:          "u1",
			UserName:        strPtr("Asha"),
			AttendanceDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			ClockIn:         &clockIn,
			ClockOut:        &clockOut,
			TotalMinutes:    intPtr(510),
			OvertimeMinutes: intPtr(0),
		},
		{
			UserID:         "u1",
			UserName:       strPtr("Asha"),
			AttendanceDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			ClockIn:        &clockIn,
		},
		{
			UserID:         "u2",
			UserName:       strPtr("Ravi"),
			AttendanceDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestGroupByUser(t *testing.T) {
	blocks := groupByUser(testDays())

	require.Len(t, blocks, 2)
	assert.Equal(t, "Asha", blocks[0].name)
	assert.Len(t, blocks[0].days, 2)
	assert.Equal(t, "Ravi", blocks[1].name)
	assert.Len(t, blocks[1].days, 1)
}

func TestGroupByUserFallsBackToUserID(t *testing.T) {
	blocks := groupByUser([]attendance.AttendanceDay{{UserID: "u9"}})

	require.Len(t, blocks, 1)
	assert.Equal(t, "u9", blocks[0].name)
}

func TestRenderWorkbookLayout(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	svc := &ReportServiceImpl{loc: loc}

	buf, err := svc.render(testDays())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(sheetName, cell)
		require.NoError(t, err)
		return v
	}

	// First user block starts at column A.
	assert.Equal(t, "Asha", get("A1"))
	assert.Equal(t, "Date", get("A2"))
	assert.Equal(t, "Overtime", get("E2"))
	assert.Equal(t, "2025-03-10", get("A3"))
	// 03:30 UTC is 09:00 IST.
	assert.Equal(t, "09:00", get("B3"))
	assert.Equal(t, "8h 30m", get("D3"))

	// Open day renders dashes.
	assert.Equal(t, "—", get("C4"))
	assert.Equal(t, "—", get("D4"))

	// Second user block starts six columns over, at G.
	assert.Equal(t, "Ravi", get("G1"))
	assert.Equal(t, "Date", get("G2"))
	assert.Equal(t, "2025-03-10", get("G3"))
	assert.Equal(t, "—", get("H3"))

	// Spacer column stays empty.
	assert.Equal(t, "", get("F1"))
}
