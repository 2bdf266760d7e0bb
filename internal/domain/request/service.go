package request

import "context"

type RequestService interface {
	// CreateRequest files a PENDING correction for today. The ledger is not
	// touched until approval.
	CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	// Approve applies the correction to the ledger and finalizes the
	// request as one atomic unit.
	Approve(ctx context.Context, requestID, adminID string) (RequestResponse, error)

	// Reject finalizes the request with no ledger effect.
	Reject(ctx context.Context, requestID, adminID string) (RequestResponse, error)

	// TodayState reports the user's current attendance state.
	TodayState(ctx context.Context, userID string) (TodayState, error)

	// MyRequests lists the user's correction requests, most recent first.
	MyRequests(ctx context.Context, userID string) ([]RequestResponse, error)

	// PendingRequests lists every PENDING request for admin review.
	PendingRequests(ctx context.Context) ([]RequestResponse, error)
}
