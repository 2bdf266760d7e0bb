package request

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/request"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/dateutil"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type RequestServiceImpl struct {
	db *database.DB
	request.RequestRepository
	attendance.AttendanceRepository

	loc                 *time.Location
	standardWorkMinutes int
}

func NewRequestService(
	db *database.DB,
	requestRepo request.RequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	loc *time.Location,
	standardWorkMinutes int,
) request.RequestService {
	return &RequestServiceImpl{
		db:                   db,
		RequestRepository:    requestRepo,
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

func mapToResponse(req request.CorrectionRequest) request.RequestResponse {
	return request.RequestResponse{
		ID:            req.ID,
		UserID:        req.UserID,
		UserName:      req.UserName,
		AttendanceID:  req.AttendanceID,
		RequestType:   string(req.RequestType),
		RequestedTime: timePtrToString(req.RequestedTime),
		Reason:        req.Reason,
		Status:        string(req.Status),
		ReviewedBy:    req.ReviewedBy,
		ReviewedAt:    timePtrToString(req.ReviewedAt),
		CreatedAt:     req.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateRequest implements request.RequestService.
func (s *RequestServiceImpl) CreateRequest(ctx context.Context, req request.CreateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	today := dateutil.LocalDateOf(time.Now().UTC(), s.loc)

	var attendanceID *string
	todayAttendance, err := s.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to resolve today's attendance: %w", err)
	}
	if todayAttendance != nil {
		attendanceID = &todayAttendance.ID
	}

	created, err := s.RequestRepository.Create(ctx, request.CorrectionRequest{
		UserID:        req.UserID,
		AttendanceID:  attendanceID,
		RequestType:   request.RequestType(req.RequestType),
		RequestedTime: req.Time(),
		Reason:        req.Reason,
		Status:        request.StatusPending,
	})
	if err != nil {
		return request.RequestResponse{}, err
	}

	return mapToResponse(created), nil
}

// Approve implements request.RequestService. The ledger mutation and the
// PENDING->APPROVED transition commit as one transaction; a concurrent
// approval loses the status-guarded update and the whole unit rolls back
// with ErrRequestAlreadyProcessed.
func (s *RequestServiceImpl) Approve(ctx context.Context, requestID, adminID string) (request.RequestResponse, error) {
	req, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if req.Status != request.StatusPending {
		return request.RequestResponse{}, request.ErrRequestAlreadyProcessed
	}
	if req.RequestedTime == nil {
		return request.RequestResponse{}, validator.ValidationErrors{
			{Field: "requested_time", Message: "request has no requested_time to apply"},
		}
	}

	now := time.Now().UTC()

	err = database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var day *attendance.AttendanceDay
		if req.AttendanceID != nil {
			linked, err := s.AttendanceRepository.GetByID(txCtx, *req.AttendanceID)
			if err != nil {
				return err
			}
			day = &linked
		}

		switch req.RequestType {
		case request.TypeForgotClockIn:
			if err := s.applyForgotClockIn(txCtx, &req, day); err != nil {
				return err
			}
		case request.TypeForgotClockOut:
			if err := s.applyForgotClockOut(txCtx, &req, day); err != nil {
				return err
			}
		default:
			return request.ErrUnsupportedRequestType
		}

		won, err := s.RequestRepository.Decide(txCtx, req.ID, request.StatusApproved, adminID, now)
		if err != nil {
			return err
		}
		if !won {
			return request.ErrRequestAlreadyProcessed
		}
		return nil
	})
	if err != nil {
		return request.RequestResponse{}, err
	}

	req.Status = request.StatusApproved
	req.ReviewedBy = &adminID
	req.ReviewedAt = &now
	return mapToResponse(req), nil
}

func (s *RequestServiceImpl) applyForgotClockIn(ctx context.Context, req *request.CorrectionRequest, day *attendance.AttendanceDay) error {
	requested := req.RequestedTime.UTC()

	if day != nil {
		day.ClockIn = &requested
		if day.ClockOut != nil {
			day.DeriveMinutes(s.standardWorkMinutes)
		}
		day.IsManual = true
		return s.AttendanceRepository.Update(ctx, *day)
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.AttendanceDay{
		UserID:         req.UserID,
		AttendanceDate: dateutil.LocalDateOf(requested, s.loc),
		ClockIn:        &requested,
		IsManual:       true,
	})
	if err != nil {
		return err
	}

	req.AttendanceID = &created.ID
	return s.RequestRepository.SetAttendanceID(ctx, req.ID, created.ID)
}

func (s *RequestServiceImpl) applyForgotClockOut(ctx context.Context, req *request.CorrectionRequest, day *attendance.AttendanceDay) error {
	if day == nil || day.ClockIn == nil {
		return request.ErrMissingClockIn
	}

	requested := req.RequestedTime.UTC()
	day.ClockOut = &requested
	day.DeriveMinutes(s.standardWorkMinutes)
	day.IsManual = true
	return s.AttendanceRepository.Update(ctx, *day)
}

// Reject implements request.RequestService.
func (s *RequestServiceImpl) Reject(ctx context.Context, requestID, adminID string) (request.RequestResponse, error) {
	req, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if req.Status != request.StatusPending {
		return request.RequestResponse{}, request.ErrRequestAlreadyProcessed
	}

	now := time.Now().UTC()
	won, err := s.RequestRepository.Decide(ctx, req.ID, request.StatusRejected, adminID, now)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if !won {
		return request.RequestResponse{}, request.ErrRequestAlreadyProcessed
	}

	req.Status = request.StatusRejected
	req.ReviewedBy = &adminID
	req.ReviewedAt = &now
	return mapToResponse(req), nil
}

// TodayState implements request.RequestService.
func (s *RequestServiceImpl) TodayState(ctx context.Context, userID string) (request.TodayState, error) {
	now := time.Now().UTC()
	today := dateutil.LocalDateOf(now, s.loc)
	dayStart, dayEnd := dateutil.LocalDayBounds(now, s.loc)

	day, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return request.TodayState{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	pendingIn, err := s.RequestRepository.GetPendingByUserAndType(ctx, userID, dayStart, dayEnd, request.TypeForgotClockIn)
	if err != nil {
		return request.TodayState{}, fmt.Errorf("failed to get pending clock-in request: %w", err)
	}

	pendingOut, err := s.RequestRepository.GetPendingByUserAndType(ctx, userID, dayStart, dayEnd, request.TypeForgotClockOut)
	if err != nil {
		return request.TodayState{}, fmt.Errorf("failed to get pending clock-out request: %w", err)
	}

	return ResolveTodayState(day, pendingIn, pendingOut), nil
}

// ResolveTodayState merges the ledger with today's pending corrections into
// the actions the user may take right now. Decision order matters: a real
// attendance row always wins over pending requests, and a pending
// correction masks the matching direct action so the two can never both be
// offered. The result never enables clock-in and clock-out together.
func ResolveTodayState(day *attendance.AttendanceDay, pendingIn, pendingOut *request.CorrectionRequest) request.TodayState {
	if day != nil {
		if day.ClockOut != nil {
			return request.TodayState{
				State:             request.StateClockedOut,
				Source:            request.SourceAttendance,
				EffectiveClockIn:  day.ClockIn,
				EffectiveClockOut: day.ClockOut,
				Message:           "You have already clocked out",
			}
		}
		return request.TodayState{
			State:            request.StateClockedIn,
			Source:           request.SourceAttendance,
			EffectiveClockIn: day.ClockIn,
			CanClockOut:      true,
		}
	}

	if pendingIn != nil {
		// The pending virtual clock-in is treated as sufficient to allow a
		// real clock-out later in the day.
		return request.TodayState{
			State:            request.StateClockedIn,
			Source:           request.SourceRequest,
			EffectiveClockIn: pendingIn.RequestedTime,
			CanClockOut:      true,
			CanRequestOut:    pendingOut == nil,
			Message:          "Clock-in request pending approval",
		}
	}

	if pendingOut != nil {
		return request.TodayState{
			State:   request.StateClockedOut,
			Source:  request.SourceRequest,
			Message: "Clock-out request pending approval",
		}
	}

	return request.TodayState{
		State:        request.StateNotClockedIn,
		Source:       request.SourceNone,
		CanClockIn:   true,
		CanRequestIn: true,
	}
}

// MyRequests implements request.RequestService.
func (s *RequestServiceImpl) MyRequests(ctx context.Context, userID string) ([]request.RequestResponse, error) {
	reqs, err := s.RequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]request.RequestResponse, 0, len(reqs))
	for _, req := range reqs {
		responses = append(responses, mapToResponse(req))
	}

	return responses, nil
}

// PendingRequests implements request.RequestService.
func (s *RequestServiceImpl) PendingRequests(ctx context.Context) ([]request.RequestResponse, error) {
	reqs, err := s.RequestRepository.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]request.RequestResponse, 0, len(reqs))
	for _, req := range reqs {
		responses = append(responses, mapToResponse(req))
	}

	return responses, nil
}
