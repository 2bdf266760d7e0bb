package http

import (
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/request"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	TodayState(w http.ResponseWriter, r *http.Request)
	MyAttendance(w http.ResponseWriter, r *http.Request)
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
	MySummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	requestService    request.RequestService
	summaryService    summary.SummaryService
}

func NewAttendanceHandler(
	attendanceService attendance.AttendanceService,
	requestService request.RequestService,
	summaryService summary.SummaryService,
) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		requestService:    requestService,
		summaryService:    summaryService,
	}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	day, err := h.attendanceService.ClockIn(r.Context(), userID)
	if err != nil {
		slog.Error("ClockIn service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", day)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	day, err := h.attendanceService.ClockOut(r.Context(), userID)
	if err != nil {
		slog.Error("ClockOut service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", day)
}

// TodayState implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TodayState(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	state, err := h.requestService.TodayState(r.Context(), userID)
	if err != nil {
		slog.Error("TodayState service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// MyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	days, err := h.attendanceService.MyAttendance(r.Context(), userID)
	if err != nil {
		slog.Error("MyAttendance service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}

// MonthlyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	month := r.URL.Query().Get("month")
	if month != "" && !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	page, err := h.attendanceService.MonthlyAttendance(r.Context(), userID, month)
	if err != nil {
		slog.Error("MonthlyAttendance service error", "error", err, "user_id", userID, "month", month)
		response.HandleError(w, err)
		return
	}

	// Nil means the cursor walked past all recorded months.
	response.Success(w, page)
}

// MySummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MySummary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month is required", nil)
		return
	}
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	monthSummary, err := h.summaryService.MonthlySummary(r.Context(), userID, month)
	if err != nil {
		slog.Error("MySummary service error", "error", err, "user_id", userID, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthSummary)
}
