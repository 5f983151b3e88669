package billing

import "context"

// BillRepository defines data access for bills and their per-worker details.
// Details are owned by their bill and deleted in cascade with it.
type BillRepository interface {
	Create(ctx context.Context, bill Bill) (Bill, error)
	GetByID(ctx context.Context, id string) (Bill, error)
	GetByOperationAndGroup(ctx context.Context, operationID, groupID string) (Bill, error)
	ListByOperation(ctx context.Context, operationID string) ([]Bill, error)
	Update(ctx context.Context, bill Bill) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateGroupHours(ctx context.Context, id string, hours float64) error
	Delete(ctx context.Context, id string) error

	CreateDetails(ctx context.Context, billID string, details []BillDetail) ([]BillDetail, error)
	GetDetails(ctx context.Context, billID string) ([]BillDetail, error)
	DeleteDetails(ctx context.Context, billID string) error

	// SumGroupHours re-sums group_hours across all bills of the operation.
	SumGroupHours(ctx context.Context, operationID string) (float64, error)
}
