package attendance

import "errors"

var (
	// ErrAlreadyMarked signals a second non-correction mark for the same
	// (date, employee). The caller surfaces it; there is no retry.
	ErrAlreadyMarked = errors.New("attendance already marked for today")

	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidStatus  = errors.New("invalid attendance status")
)
