package billing

import (
	"context"
	"log/slog"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/database"
	"github.com/harborops/stevedoring-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Reconciler keeps the duration fields coherent: a group's bill carries the
// rounded mean of its worker windows, and the parent operation carries the
// sum over all its bills. Both writes run as one transactional unit.
type Reconciler struct {
	db       *database.DB
	billRepo billing.BillRepository
	opRepo   operation.OperationRepository
}

func NewReconciler(db *database.DB, billRepo billing.BillRepository, opRepo operation.OperationRepository) *Reconciler {
	return &Reconciler{db: db, billRepo: billRepo, opRepo: opRepo}
}

// GroupHoursFromWindows computes the group duration from raw worker windows:
// the mean of each window's span in hours, rounded to two decimals. Inverted
// windows are a data-entry anomaly and are swapped, not rejected.
func GroupHoursFromWindows(windows []operation.TimeWindow) float64 {
	if len(windows) == 0 {
		return 0
	}
	var sum float64
	for _, w := range windows {
		start, end := w.Start, w.End
		if end.Before(start) {
			slog.Warn("inverted time window self-corrected", "worker_id", w.WorkerID)
			start, end = end, start
		}
		sum += end.Sub(start).Hours()
	}
	mean := safeDiv(sum, float64(len(windows)), "reconciler.mean")
	return decimal.NewFromFloat(mean).Round(2).InexactFloat64()
}

// RecalculateGroupHours reloads the group's worker windows, persists the
// recomputed duration onto its bill, and re-sums all bill durations into the
// parent operation. Idempotent for an unchanged schedule.
func (r *Reconciler) RecalculateGroupHours(ctx context.Context, operationID, groupID string) (groupHours, opDuration float64, err error) {
	windows, err := r.opRepo.GetTimeWindows(ctx, operationID, groupID)
	if err != nil {
		return 0, 0, err
	}
	groupHours = GroupHoursFromWindows(windows)

	err = postgresql.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		bill, err := r.billRepo.GetByOperationAndGroup(txCtx, operationID, groupID)
		if err != nil {
			return err
		}
		if err := r.billRepo.UpdateGroupHours(txCtx, bill.ID, groupHours); err != nil {
			return err
		}

		opDuration, err = r.billRepo.SumGroupHours(txCtx, operationID)
		if err != nil {
			return err
		}
		return r.opRepo.UpdateDuration(txCtx, operationID, opDuration)
	})
	if err != nil {
		return 0, 0, err
	}

	return groupHours, opDuration, nil
}

// ReconcileOperation re-sums the operation duration without touching any
// group, used after a bill is removed.
func (r *Reconciler) ReconcileOperation(ctx context.Context, operationID string) (float64, error) {
	opDuration, err := r.billRepo.SumGroupHours(ctx, operationID)
	if err != nil {
		return 0, err
	}
	if err := r.opRepo.UpdateDuration(ctx, operationID, opDuration); err != nil {
		return 0, err
	}
	return opDuration, nil
}
