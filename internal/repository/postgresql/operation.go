package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type operationRepository struct {
	db *database.DB
}

func NewOperationRepository(db *database.DB) operation.OperationRepository {
	return &operationRepository{db: db}
}

func (r *operationRepository) GetByID(ctx context.Context, id string) (operation.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, starts_at, ends_at, duration, status, created_at, updated_at
		FROM operations
		WHERE id = $1
	`

	var op operation.Operation
	err := q.QueryRow(ctx, query, id).Scan(
		&op.ID, &op.Name, &op.StartsAt, &op.EndsAt, &op.Duration, &op.Status, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return operation.Operation{}, operation.ErrOperationNotFound
		}
		return operation.Operation{}, fmt.Errorf("failed to get operation: %w", err)
	}

	return op, nil
}

const groupSummaryColumns = `
	g.id, g.starts_at, g.ends_at, g.unit_of_measure, g.alternative_paid_service,
	t.group_tariff, t.full_tariff, t.compensatory_tariff,
	t.facturation_unit, t.paysheet_unit, t.facturation_tariff, t.paysheet_tariff,
	g.agreed_hours
`

func (r *operationRepository) GetGroupSummaries(ctx context.Context, operationID string) ([]operation.GroupSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM operation_groups g
		JOIN group_tariffs t ON t.group_id = g.id
		WHERE g.operation_id = $1
		ORDER BY g.starts_at, g.id
	`, groupSummaryColumns)

	rows, err := q.Query(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group summaries: %w", err)
	}
	defer rows.Close()

	var summaries []operation.GroupSummary
	for rows.Next() {
		var g operation.GroupSummary
		if err := rows.Scan(
			&g.GroupID, &g.StartsAt, &g.EndsAt, &g.UnitOfMeasure, &g.AlternativePaidService,
			&g.GroupTariff, &g.FullTariff, &g.CompensatoryTariff,
			&g.FacturationUnit, &g.PaysheetUnit, &g.FacturationTariff, &g.PaysheetTariff,
			&g.AgreedHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group summary: %w", err)
		}
		summaries = append(summaries, g)
	}

	for i := range summaries {
		workers, err := r.getWorkers(ctx, operationID, summaries[i].GroupID)
		if err != nil {
			return nil, err
		}
		summaries[i].Workers = workers
		summaries[i].WorkerCount = len(workers)
	}

	return summaries, nil
}

func (r *operationRepository) GetGroupSummary(ctx context.Context, operationID, groupID string) (operation.GroupSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM operation_groups g
		JOIN group_tariffs t ON t.group_id = g.id
		WHERE g.operation_id = $1 AND g.id = $2
	`, groupSummaryColumns)

	var g operation.GroupSummary
	err := q.QueryRow(ctx, query, operationID, groupID).Scan(
		&g.GroupID, &g.StartsAt, &g.EndsAt, &g.UnitOfMeasure, &g.AlternativePaidService,
		&g.GroupTariff, &g.FullTariff, &g.CompensatoryTariff,
		&g.FacturationUnit, &g.PaysheetUnit, &g.FacturationTariff, &g.PaysheetTariff,
		&g.AgreedHours,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return operation.GroupSummary{}, operation.ErrGroupNotFound
		}
		return operation.GroupSummary{}, fmt.Errorf("failed to get group summary: %w", err)
	}

	workers, err := r.getWorkers(ctx, operationID, groupID)
	if err != nil {
		return operation.GroupSummary{}, err
	}
	g.Workers = workers
	g.WorkerCount = len(workers)

	return g, nil
}

func (r *operationRepository) getWorkers(ctx context.Context, operationID, groupID string) ([]operation.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.full_name
		FROM group_workers gw
		JOIN workers w ON w.id = gw.worker_id
		JOIN operation_groups g ON g.id = gw.group_id
		WHERE g.operation_id = $1 AND gw.group_id = $2
		ORDER BY w.full_name
	`

	rows, err := q.Query(ctx, query, operationID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group workers: %w", err)
	}
	defer rows.Close()

	var workers []operation.Worker
	for rows.Next() {
		var w operation.Worker
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, fmt.Errorf("failed to scan group worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, nil
}

func (r *operationRepository) GetTimeWindows(ctx context.Context, operationID, groupID string) ([]operation.TimeWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT gw.worker_id, gw.starts_at, gw.ends_at
		FROM group_workers gw
		JOIN operation_groups g ON g.id = gw.group_id
		WHERE g.operation_id = $1 AND gw.group_id = $2
		ORDER BY gw.worker_id
	`

	rows, err := q.Query(ctx, query, operationID, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time windows: %w", err)
	}
	defer rows.Close()

	var windows []operation.TimeWindow
	for rows.Next() {
		var w operation.TimeWindow
		if err := rows.Scan(&w.WorkerID, &w.Start, &w.End); err != nil {
			return nil, fmt.Errorf("failed to scan time window: %w", err)
		}
		windows = append(windows, w)
	}

	return windows, nil
}

func (r *operationRepository) UpdateDuration(ctx context.Context, operationID string, hours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE operations SET duration = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query, operationID, hours).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return operation.ErrOperationNotFound
		}
		return fmt.Errorf("failed to update operation duration: %w", err)
	}

	return nil
}

func (r *operationRepository) ListPendingStarted(ctx context.Context, now time.Time) ([]operation.Operation, error) {
	return r.listByStatusAndTime(ctx, operation.StatusPending, "starts_at <= $2", now)
}

func (r *operationRepository) ListInProgressEnded(ctx context.Context, now time.Time) ([]operation.Operation, error) {
	return r.listByStatusAndTime(ctx, operation.StatusInProgress, "ends_at <= $2", now)
}

func (r *operationRepository) listByStatusAndTime(ctx context.Context, status operation.Status, cond string, now time.Time) ([]operation.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, name, starts_at, ends_at, duration, status, created_at, updated_at
		FROM operations
		WHERE status = $1 AND %s
		ORDER BY starts_at
	`, cond)

	rows, err := q.Query(ctx, query, status, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var ops []operation.Operation
	for rows.Next() {
		var op operation.Operation
		if err := rows.Scan(
			&op.ID, &op.Name, &op.StartsAt, &op.EndsAt, &op.Duration, &op.Status, &op.CreatedAt, &op.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		ops = append(ops, op)
	}

	return ops, nil
}

func (r *operationRepository) UpdateStatus(ctx context.Context, id string, status operation.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE operations SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return operation.ErrOperationNotFound
		}
		return fmt.Errorf("failed to update operation status: %w", err)
	}

	return nil
}
