package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
	billingsvc "github.com/harborops/stevedoring-backend-go/internal/service/billing"
)

// OperationJobs drives the operation lifecycle on the clock: operations whose
// window has opened move to in-progress, operations whose window has closed
// complete and receive a default bill for any group still unbilled.
type OperationJobs struct {
	opRepo   operation.OperationRepository
	billSvc  billing.BillService
	interval time.Duration
}

func NewOperationJobs(opRepo operation.OperationRepository, billSvc billing.BillService, interval time.Duration) *OperationJobs {
	return &OperationJobs{
		opRepo:   opRepo,
		billSvc:  billSvc,
		interval: interval,
	}
}

func (j *OperationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("transition_operations", j.interval, j.TransitionOperations)
}

func (j *OperationJobs) TransitionOperations(ctx context.Context) error {
	now := time.Now().UTC()

	started, err := j.opRepo.ListPendingStarted(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to list pending operations: %w", err)
	}
	for _, op := range started {
		if err := j.opRepo.UpdateStatus(ctx, op.ID, operation.StatusInProgress); err != nil {
			slog.Error("Cron: Failed to start operation", "operation_id", op.ID, "error", err)
			continue
		}
		slog.Info("Cron: Operation started", "operation_id", op.ID, "name", op.Name)
	}

	ended, err := j.opRepo.ListInProgressEnded(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to list ended operations: %w", err)
	}
	for _, op := range ended {
		if err := j.opRepo.UpdateStatus(ctx, op.ID, operation.StatusCompleted); err != nil {
			slog.Error("Cron: Failed to complete operation", "operation_id", op.ID, "error", err)
			continue
		}
		slog.Info("Cron: Operation completed", "operation_id", op.ID, "name", op.Name)

		if err := j.autoBill(ctx, op.ID); err != nil {
			slog.Error("Cron: Failed to auto-bill completed operation", "operation_id", op.ID, "error", err)
		}
	}

	return nil
}

// autoBill posts a default bill for every group of a completed operation.
// Groups already billed are reported back as conflicts and skipped; the
// default figures put the schedule-derived duration in the ordinary-day
// bucket with an equal worker split.
func (j *OperationJobs) autoBill(ctx context.Context, operationID string) error {
	summaries, err := j.opRepo.GetGroupSummaries(ctx, operationID)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		return nil
	}

	req := billing.CreateBillsRequest{Groups: make([]billing.GroupBillInput, 0, len(summaries))}
	for _, g := range summaries {
		hours := g.AgreedHours
		if windows, err := j.opRepo.GetTimeWindows(ctx, operationID, g.GroupID); err == nil && len(windows) > 0 {
			hours = billingsvc.GroupHoursFromWindows(windows)
		}
		req.Groups = append(req.Groups, billing.GroupBillInput{
			GroupID:       g.GroupID,
			BillHours:     billing.HoursInput{OrdinaryDay: hours},
			PaysheetHours: billing.HoursInput{OrdinaryDay: hours},
		})
	}

	resp, err := j.billSvc.CreateBills(ctx, operationID, req)
	if err != nil {
		return err
	}
	for _, f := range resp.Failures {
		if f.Reason == billing.ErrBillExists.Error() {
			continue
		}
		slog.Warn("Cron: Group rejected during auto-billing", "operation_id", operationID, "group_id", f.GroupID, "reason", f.Reason)
	}
	slog.Info("Cron: Auto-billed completed operation", "operation_id", operationID, "bills", len(resp.Bills), "failures", len(resp.Failures))
	return nil
}
