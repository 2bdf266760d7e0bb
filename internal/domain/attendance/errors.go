package attendance

import "errors"

// Attendance domain errors
var (
	// Clock action errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")
	ErrNotClockedIn      = errors.New("you have not clocked in today")

	// Admin edit errors
	ErrInvalidClockOrder = errors.New("clock-out must be after clock-in")
	ErrNoFieldsToUpdate  = errors.New("no clock fields supplied")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
