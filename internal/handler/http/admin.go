package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/domain/request"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	PendingRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	EditTime(w http.ResponseWriter, r *http.Request)
	UserMonthlyAttendance(w http.ResponseWriter, r *http.Request)
	UserSummary(w http.ResponseWriter, r *http.Request)
	AvailableMonths(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	attendanceService attendance.AttendanceService
	requestService    request.RequestService
	summaryService    summary.SummaryService
	reportService     report.ReportService
}

func NewAdminHandler(
	attendanceService attendance.AttendanceService,
	requestService request.RequestService,
	summaryService summary.SummaryService,
	reportService report.ReportService,
) AdminHandler {
	return &AdminHandlerImpl{
		attendanceService: attendanceService,
		requestService:    requestService,
		summaryService:    summaryService,
		reportService:     reportService,
	}
}

// Dashboard implements AdminHandler.
func (h *AdminHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.summaryService.Dashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

// PendingRequests implements AdminHandler.
func (h *AdminHandlerImpl) PendingRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.PendingRequests(r.Context())
	if err != nil {
		slog.Error("PendingRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ApproveRequest implements AdminHandler.
func (h *AdminHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	adminID := middleware.UserIDFromContext(r.Context())

	approved, err := h.requestService.Approve(r.Context(), requestID, adminID)
	if err != nil {
		slog.Error("ApproveRequest service error", "error", err, "request_id", requestID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request approved", approved)
}

// RejectRequest implements AdminHandler.
func (h *AdminHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	adminID := middleware.UserIDFromContext(r.Context())

	rejected, err := h.requestService.Reject(r.Context(), requestID, adminID)
	if err != nil {
		slog.Error("RejectRequest service error", "error", err, "request_id", requestID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request rejected", rejected)
}

// EditTime implements AdminHandler.
func (h *AdminHandlerImpl) EditTime(w http.ResponseWriter, r *http.Request) {
	var editReq attendance.AdminTimeEditRequest

	if err := json.NewDecoder(r.Body).Decode(&editReq); err != nil {
		slog.Error("EditTime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	editReq.AttendanceID = chi.URLParam(r, "id")

	if err := editReq.Validate(); err != nil {
		slog.Error("EditTime validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	edited, err := h.attendanceService.EditTime(r.Context(), editReq)
	if err != nil {
		slog.Error("EditTime service error", "error", err, "attendance_id", editReq.AttendanceID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", edited)
}

// UserMonthlyAttendance implements AdminHandler.
func (h *AdminHandlerImpl) UserMonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	month := r.URL.Query().Get("month")
	if month != "" && !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	page, err := h.attendanceService.MonthlyAttendance(r.Context(), userID, month)
	if err != nil {
		slog.Error("UserMonthlyAttendance service error", "error", err, "user_id", userID, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, page)
}

// UserSummary implements AdminHandler.
func (h *AdminHandlerImpl) UserSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

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
		slog.Error("UserSummary service error", "error", err, "user_id", userID, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthSummary)
}

// AvailableMonths implements AdminHandler.
func (h *AdminHandlerImpl) AvailableMonths(w http.ResponseWriter, r *http.Request) {
	months, err := h.attendanceService.AvailableMonths(r.Context())
	if err != nil {
		slog.Error("AvailableMonths service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, months)
}

// Payroll implements AdminHandler.
func (h *AdminHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month is required", nil)
		return
	}
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	rows, err := h.summaryService.PayrollForMonth(r.Context(), month)
	if err != nil {
		slog.Error("Payroll service error", "error", err, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// ExportAttendance implements AdminHandler.
func (h *AdminHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	var startDate, endDate *string
	if v := r.URL.Query().Get("start_date"); v != "" {
		startDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		endDate = &v
	}

	workbook, err := h.reportService.AttendanceWorkbook(r.Context(), startDate, endDate)
	if err != nil {
		slog.Error("ExportAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, workbook.FileName, xlsxContentType, workbook.Content)
}
