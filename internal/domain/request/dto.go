package request

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	UserID        string  `json:"-"`
	RequestType   string  `json:"request_type"`
	RequestedTime *string `json:"requested_time"`
	Reason        string  `json:"reason"`

	requestedTime *time.Time
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	switch RequestType(r.RequestType) {
	case TypeForgotClockIn, TypeForgotClockOut:
		if r.RequestedTime == nil {
			errs = append(errs, validator.ValidationError{Field: "requested_time", Message: "requested_time is required for this request type"})
		}
	case TypeTimeEdit:
	default:
		errs = append(errs, validator.ValidationError{Field: "request_type", Message: "unknown request type"})
	}

	if r.RequestedTime != nil {
		t, ok := validator.IsValidInstant(*r.RequestedTime)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "requested_time", Message: "requested_time must be RFC 3339"})
		} else {
			r.requestedTime = &t
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Time returns the parsed requested instant; call Validate first.
func (r *CreateRequestRequest) Time() *time.Time {
	return r.requestedTime
}

type RequestResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      *string `json:"user_name,omitempty"`
	AttendanceID  *string `json:"attendance_id"`
	RequestType   string  `json:"request_type"`
	RequestedTime *string `json:"requested_time"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ReviewedBy    *string `json:"reviewed_by"`
	ReviewedAt    *string `json:"reviewed_at"`
	CreatedAt     string  `json:"created_at"`
}

// TodayState describes what the user can do right now, merging the ledger
// with any pending corrections for today.
type TodayState struct {
	State             string     `json:"state"`  // NOT_CLOCKED_IN | CLOCKED_IN | CLOCKED_OUT
	Source            string     `json:"source"` // ATTENDANCE | REQUEST | NONE
	EffectiveClockIn  *time.Time `json:"effective_clock_in,omitempty"`
	EffectiveClockOut *time.Time `json:"effective_clock_out,omitempty"`
	CanClockIn        bool       `json:"can_clock_in"`
	CanClockOut       bool       `json:"can_clock_out"`
	CanRequestIn      bool       `json:"can_request_clock_in"`
	CanRequestOut     bool       `json:"can_request_clock_out"`
	Message           string     `json:"message,omitempty"`
}

const (
	StateNotClockedIn = "NOT_CLOCKED_IN"
	StateClockedIn    = "CLOCKED_IN"
	StateClockedOut   = "CLOCKED_OUT"

	SourceAttendance = "ATTENDANCE"
	SourceRequest    = "REQUEST"
	SourceNone       = "NONE"
)
