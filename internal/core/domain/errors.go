package domain

import "errors"

// Validation and identity errors.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")
)

// Row lookup errors for the mutable tables.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrLeaveNotFound = errors.New("leave application not found")
)

// Attendance state-machine errors.
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("haven't checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)

// Document store errors.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentLimit    = errors.New("document limit reached")
)

// ErrStorage marks a failure writing a table back to disk. Schema mismatches
// on load are self-healed and never surface; write failures always do.
var ErrStorage = errors.New("storage failure")
