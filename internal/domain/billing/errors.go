package billing

import "errors"

var (
	ErrBillNotFound  = errors.New("bill not found")
	ErrBillExists    = errors.New("bill already exists for this group")
	ErrBillCompleted = errors.New("bill completed, totals can no longer change")
	ErrGroupMismatch = errors.New("submitted group does not belong to the operation")
	ErrInvalidStatus = errors.New("invalid bill status")
)
