package request

import "time"

type RequestType string

const (
	TypeForgotClockIn  RequestType = "FORGOT_CLOCK_IN"
	TypeForgotClockOut RequestType = "FORGOT_CLOCK_OUT"
	// TypeTimeEdit is declared for request creation but has no approval
	// path; approving one fails with ErrUnsupportedRequestType.
	TypeTimeEdit RequestType = "TIME_EDIT"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// CorrectionRequest is one attempt to fix a missed clock action. Once the
// status leaves PENDING the row is immutable.
type CorrectionRequest struct {
	ID            string
	UserID        string
	AttendanceID  *string
	RequestType   RequestType
	RequestedTime *time.Time
	Reason        string
	Status        Status
	AdminComment  *string
	ReviewedBy    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time

	// Joined for listings
	UserName *string
}
