package operation

import "errors"

var (
	ErrOperationNotFound = errors.New("operation not found")
	ErrGroupNotFound     = errors.New("group not found in operation")
	ErrInvalidTransition = errors.New("invalid operation status transition")
)
