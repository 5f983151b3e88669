package setting

import (
	"context"

	"github.com/harborops/stevedoring-backend-go/internal/pkg/validator"
)

type SettingResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type UpdateSettingRequest struct {
	Name  string `json:"-"`
	Value int    `json:"value"`
}

func (r *UpdateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidSettingName(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must be an uppercase setting name"})
	}
	if r.Value <= 0 {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SettingService exposes named configuration values to callers and keeps the
// billing calendar cache coherent on writes.
type SettingService interface {
	Get(ctx context.Context, name string) (SettingResponse, error)
	Update(ctx context.Context, req UpdateSettingRequest) (SettingResponse, error)
}
