package billing

import "context"

// BillService is the billing/payroll engine surface exposed to the transport
// layer and to the operation lifecycle job.
type BillService interface {
	CreateBills(ctx context.Context, operationID string, req CreateBillsRequest) (CreateBillsResponse, error)
	GetBill(ctx context.Context, id string) (BillResponse, error)
	ListBills(ctx context.Context, operationID string) ([]BillResponse, error)
	UpdateBill(ctx context.Context, req UpdateBillRequest) (BillResponse, error)
	UpdateBillStatus(ctx context.Context, id string, req UpdateBillStatusRequest) error
	DeleteBill(ctx context.Context, id string) error

	// RecalculateGroupHours is invoked by the schedule collaborator whenever
	// a group's worker windows change.
	RecalculateGroupHours(ctx context.Context, operationID, groupID string) (RecalculateResponse, error)
}
