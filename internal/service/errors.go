package service

import "errors"

var (
	// ErrNotFound reports a missing user, task or reward.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied reports an unknown or non-admin actor on an
	// admin-only operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAlreadyCompleted reports a duplicate completion under the ledger's
	// key scheme: per day for daily tasks, once ever for weekly tasks.
	ErrAlreadyCompleted = errors.New("task already completed")

	// ErrInvalidInput reports an out-of-range or malformed value.
	ErrInvalidInput = errors.New("invalid input")
)
