package response

import (
	"errors"
	"net/http"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
	"github.com/harborops/stevedoring-backend-go/internal/domain/setting"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Billing domain errors
	case errors.Is(err, billing.ErrBillNotFound):
		NotFound(w, "Bill not found")
	case errors.Is(err, billing.ErrBillExists):
		Conflict(w, "A bill already exists for this group")
	case errors.Is(err, billing.ErrBillCompleted):
		Conflict(w, "Bill is completed and can no longer change")
	case errors.Is(err, billing.ErrGroupMismatch):
		Conflict(w, "Group does not belong to the operation")
	case errors.Is(err, billing.ErrInvalidStatus):
		BadRequest(w, "Invalid bill status", nil)

	// Operation domain errors
	case errors.Is(err, operation.ErrOperationNotFound):
		NotFound(w, "Operation not found")
	case errors.Is(err, operation.ErrGroupNotFound):
		NotFound(w, "Group not found in operation")
	case errors.Is(err, operation.ErrInvalidTransition):
		Conflict(w, "Invalid operation status transition")

	// Setting domain errors
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
