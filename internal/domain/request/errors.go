package request

import "errors"

var (
	ErrRequestNotFound         = errors.New("correction request not found")
	ErrRequestAlreadyProcessed = errors.New("correction request has already been approved or rejected")
	ErrMissingClockIn          = errors.New("no clock-in exists to anchor the requested clock-out")
	ErrUnsupportedRequestType  = errors.New("correction request type is not supported by approval")
)
