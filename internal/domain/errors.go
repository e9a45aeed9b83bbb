package domain

import "errors"

// Storage-level errors returned by repositories.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Workflow errors wrapped by the Conflict responses of the application flow.
var (
	ErrJobClosed      = errors.New("job is not accepting applications")
	ErrAlreadyApplied = errors.New("already applied for this job")
)
