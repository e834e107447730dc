package storage

import "errors"

var (
	ErrDuplicateID     = errors.New("booking id already exists")
	ErrNotFound        = errors.New("booking not found")
	ErrPastStartTime   = errors.New("booking start time cannot be in the past")
	ErrTimeConflict    = errors.New("booking time conflicts with existing booking")
	ErrInvalidInterval = errors.New("booking end time must be after start time")

	ErrResourceExists   = errors.New("resource already exists")
	ErrResourceNotFound = errors.New("resource not found")
)
