package operation

import (
	"context"
	"time"
)

// OperationRepository defines data access for operations, group summaries and
// raw worker time windows. Summaries are assembled by the schedule/tariff
// collaborator; the billing engine only reads them.
type OperationRepository interface {
	GetByID(ctx context.Context, id string) (Operation, error)

	// Group summaries
	GetGroupSummaries(ctx context.Context, operationID string) ([]GroupSummary, error)
	GetGroupSummary(ctx context.Context, operationID, groupID string) (GroupSummary, error)

	// Raw schedule windows per (operation, group)
	GetTimeWindows(ctx context.Context, operationID, groupID string) ([]TimeWindow, error)

	// Duration reconciliation
	UpdateDuration(ctx context.Context, operationID string, hours float64) error

	// Lifecycle
	ListPendingStarted(ctx context.Context, now time.Time) ([]Operation, error)
	ListInProgressEnded(ctx context.Context, now time.Time) ([]Operation, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
