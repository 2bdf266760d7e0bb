package request

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, req CorrectionRequest) (CorrectionRequest, error)

	GetByID(ctx context.Context, id string) (CorrectionRequest, error)

	// GetPendingByUserAndType returns the user's PENDING request of the
	// given type created within [from, to), or nil. Callers pass the UTC
	// bounds of the organizational day so the lookup matches created_at
	// instants, not UTC calendar dates.
	GetPendingByUserAndType(ctx context.Context, userID string, from, to time.Time, reqType RequestType) (*CorrectionRequest, error)

	// ListByUser returns the user's requests, most recent first.
	ListByUser(ctx context.Context, userID string) ([]CorrectionRequest, error)

	// ListPending returns all PENDING requests with user names, oldest first.
	ListPending(ctx context.Context) ([]CorrectionRequest, error)

	// Decide transitions the request out of PENDING. It reports false when
	// the request was no longer PENDING, so of two concurrent approvals
	// exactly one wins.
	Decide(ctx context.Context, id string, status Status, reviewedBy string, reviewedAt time.Time) (bool, error)

	// SetAttendanceID records the ledger row an approval created or touched.
	SetAttendanceID(ctx context.Context, id string, attendanceID string) error
}
