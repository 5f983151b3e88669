package billing

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/database"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/validator"
	"github.com/harborops/stevedoring-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BillServiceImpl orchestrates one billing run per group: classify, price,
// apportion, persist, reconcile. Group recomputations are serialized per
// (operation, group) so concurrent requests cannot interleave a bill write
// with its detail rows.
type BillServiceImpl struct {
	db         *database.DB
	billRepo   billing.BillRepository
	opRepo     operation.OperationRepository
	cal        *CalendarPolicy
	locks      *groupLocks
	reconciler *Reconciler
}

func NewBillService(db *database.DB, billRepo billing.BillRepository, opRepo operation.OperationRepository, cal *CalendarPolicy) billing.BillService {
	return &BillServiceImpl{
		db:         db,
		billRepo:   billRepo,
		opRepo:     opRepo,
		cal:        cal,
		locks:      newGroupLocks(),
		reconciler: NewReconciler(db, billRepo, opRepo),
	}
}

// round2 snaps a monetary figure to two decimals at the persistence boundary.
func round2(v float64) float64 {
	return decimal.NewFromFloat(safeNum(v, "round")).Round(2).InexactFloat64()
}

// createdByFromContext resolves the acting user from the access token. Jobs
// run without a token and record the system actor.
func createdByFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err == nil {
		if id, ok := claims["user_id"].(string); ok && id != "" {
			return id
		}
	}
	return "system"
}

func (s *BillServiceImpl) compute(ctx context.Context, g operation.GroupSummary, in billing.GroupBillInput, recorded *float64, status billing.Status, op operation.Operation, fallbackAmount *float64, isUpdate bool) modeResult {
	switch Classify(g) {
	case ModeJornal:
		return computeJornal(g, in, op)
	case ModeHours:
		return computeHours(ctx, s.cal, g, in, recorded, status)
	case ModeAlternativeService:
		return computeAlternative(ctx, s.cal, g, in, recorded, status, op, fallbackAmount, isUpdate)
	default:
		return computeQuantity(g, in, fallbackAmount)
	}
}

// checkPayCoverage rejects a pay-share list that names workers but leaves a
// roster member without an entry: a partial list would silently dilute the
// named workers' shares.
func checkPayCoverage(g operation.GroupSummary, pays []billing.PayShare) error {
	if len(pays) == 0 {
		return nil
	}
	named := make(map[string]struct{}, len(pays))
	for _, p := range pays {
		named[p.WorkerID] = struct{}{}
	}
	for _, w := range g.Workers {
		if _, ok := named[w.ID]; !ok {
			return validator.ValidationErrors{{
				Field:   "pays",
				Message: "pay share missing for worker " + w.ID,
			}}
		}
	}
	return nil
}

// buildDetails apportions the two rounded group totals across the roster.
// Shares are rounded to cents and the last worker absorbs the rounding
// remainder, so the detail rows sum exactly to the bill totals.
func buildDetails(res modeResult, g operation.GroupSummary, pays []billing.PayShare) []billing.BillDetail {
	billTotal := round2(res.billingTotal)
	payTotal := round2(res.paysheetTotal)

	details := make([]billing.BillDetail, 0, len(g.Workers))
	var billSum, paySum float64
	for i, w := range g.Workers {
		d := billing.BillDetail{
			WorkerID: w.ID,
			PayRate:  PayRate(res.monetaryRate, res.amount, pays, w.ID, g.WorkerCount),
			PayUnit:  shareWeight(pays, w.ID),
		}
		if i == len(g.Workers)-1 {
			d.TotalBill = round2(billTotal - billSum)
			d.TotalPaysheet = round2(payTotal - paySum)
		} else {
			d.TotalBill = round2(WorkerShare(res.billingTotal, pays, w.ID, g.WorkerCount))
			d.TotalPaysheet = round2(WorkerShare(res.paysheetTotal, pays, w.ID, g.WorkerCount))
			billSum += d.TotalBill
			paySum += d.TotalPaysheet
		}
		details = append(details, d)
	}
	return details
}

func (s *BillServiceImpl) toResponse(ctx context.Context, b billing.Bill, g *operation.GroupSummary) billing.BillResponse {
	resp := billing.BillResponse{
		ID:              b.ID,
		OperationID:     b.OperationID,
		GroupID:         b.GroupID,
		WeekNumber:      b.WeekNumber,
		TotalBill:       b.TotalBill,
		TotalPaysheet:   b.TotalPaysheet,
		NumberOfWorkers: b.NumberOfWorkers,
		GroupHours:      b.GroupHours,
		BillingHours:    billing.HoursInputFrom(b.BillingHours),
		PaysheetHours:   billing.HoursInputFrom(b.PaysheetHours),
		Status:          string(b.Status),
		Observation:     b.Observation,
		Details:         make([]billing.BillDetailResponse, 0, len(b.Details)),
	}
	for _, d := range b.Details {
		resp.Details = append(resp.Details, billing.BillDetailResponse{
			ID:            d.ID,
			WorkerID:      d.WorkerID,
			PayRate:       d.PayRate,
			PayUnit:       d.PayUnit,
			TotalBill:     d.TotalBill,
			TotalPaysheet: d.TotalPaysheet,
		})
	}

	// Compensation preview is derived on every read, never persisted.
	if g != nil {
		pc := s.cal.CompensatoryResult(ctx, b.GroupHours, b.Status, g.StartsAt, g.EndsAt, g.WorkerCount, g.PaysheetTariff)
		resp.PaysheetCompensatory = &billing.CompensatoryResponse{Hours: pc.Hours, Amount: pc.Amount, Percentage: pc.Percentage}
		if g.CompensatoryTariff == operation.FlagYes {
			bc := s.cal.CompensatoryResult(ctx, b.GroupHours, b.Status, g.StartsAt, g.EndsAt, g.WorkerCount, g.FacturationTariff)
			resp.BillingCompensatory = &billing.CompensatoryResponse{Hours: bc.Hours, Amount: bc.Amount, Percentage: bc.Percentage}
		}
	}

	return resp
}

func (s *BillServiceImpl) CreateBills(ctx context.Context, operationID string, req billing.CreateBillsRequest) (billing.CreateBillsResponse, error) {
	if err := req.Validate(); err != nil {
		return billing.CreateBillsResponse{}, err
	}

	op, err := s.opRepo.GetByID(ctx, operationID)
	if err != nil {
		return billing.CreateBillsResponse{}, err
	}

	summaries, err := s.opRepo.GetGroupSummaries(ctx, operationID)
	if err != nil {
		return billing.CreateBillsResponse{}, err
	}
	byGroup := make(map[string]operation.GroupSummary, len(summaries))
	for _, g := range summaries {
		byGroup[g.GroupID] = g
	}

	createdBy := createdByFromContext(ctx)

	var resp billing.CreateBillsResponse
	for _, in := range req.Groups {
		created, err := s.createGroupBill(ctx, op, byGroup, in, req.FallbackAmount, createdBy)
		if err != nil {
			resp.Failures = append(resp.Failures, billing.GroupFailure{GroupID: in.GroupID, Reason: err.Error()})
			continue
		}
		resp.Bills = append(resp.Bills, created)
	}

	if len(resp.Bills) > 0 {
		if _, err := s.reconciler.ReconcileOperation(ctx, operationID); err != nil {
			return resp, err
		}
	}

	return resp, nil
}

// createGroupBill handles one group of a billing request under its lock. A
// failure here rejects the group only; sibling groups still post.
func (s *BillServiceImpl) createGroupBill(ctx context.Context, op operation.Operation, byGroup map[string]operation.GroupSummary, in billing.GroupBillInput, fallbackAmount *float64, createdBy string) (billing.BillResponse, error) {
	unlock := s.locks.Lock(op.ID, in.GroupID)
	defer unlock()

	g, ok := byGroup[in.GroupID]
	if !ok {
		return billing.BillResponse{}, billing.ErrGroupMismatch
	}
	if err := checkPayCoverage(g, in.Pays); err != nil {
		return billing.BillResponse{}, err
	}

	if _, err := s.billRepo.GetByOperationAndGroup(ctx, op.ID, in.GroupID); err == nil {
		return billing.BillResponse{}, billing.ErrBillExists
	} else if !errors.Is(err, billing.ErrBillNotFound) {
		return billing.BillResponse{}, err
	}

	res := s.compute(ctx, g, in, nil, billing.StatusActive, op, fallbackAmount, false)

	bill := billing.Bill{
		OperationID:     op.ID,
		GroupID:         g.GroupID,
		WeekNumber:      res.weekNumber,
		TotalBill:       round2(res.billingTotal),
		TotalPaysheet:   round2(res.paysheetTotal),
		NumberOfWorkers: g.WorkerCount,
		GroupHours:      round2(res.groupHours),
		BillingHours:    in.BillHours.Distribution(),
		PaysheetHours:   in.PaysheetHours.Distribution(),
		Status:          billing.StatusActive,
		Observation:     in.Observation,
		CreatedBy:       createdBy,
	}
	details := buildDetails(res, g, in.Pays)

	var created billing.Bill
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.billRepo.Create(txCtx, bill)
		if err != nil {
			return err
		}
		created.Details, err = s.billRepo.CreateDetails(txCtx, created.ID, details)
		return err
	})
	if err != nil {
		return billing.BillResponse{}, err
	}

	return s.toResponse(ctx, created, &g), nil
}

func (s *BillServiceImpl) GetBill(ctx context.Context, id string) (billing.BillResponse, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return billing.BillResponse{}, err
	}

	// A group dropped from the schedule only loses its preview figures.
	var summary *operation.GroupSummary
	if g, err := s.opRepo.GetGroupSummary(ctx, bill.OperationID, bill.GroupID); err == nil {
		summary = &g
	}

	return s.toResponse(ctx, bill, summary), nil
}

func (s *BillServiceImpl) ListBills(ctx context.Context, operationID string) ([]billing.BillResponse, error) {
	if _, err := s.opRepo.GetByID(ctx, operationID); err != nil {
		return nil, err
	}

	bills, err := s.billRepo.ListByOperation(ctx, operationID)
	if err != nil {
		return nil, err
	}

	summaries, err := s.opRepo.GetGroupSummaries(ctx, operationID)
	if err != nil {
		return nil, err
	}
	byGroup := make(map[string]operation.GroupSummary, len(summaries))
	for _, g := range summaries {
		byGroup[g.GroupID] = g
	}

	responses := make([]billing.BillResponse, 0, len(bills))
	for _, b := range bills {
		var summary *operation.GroupSummary
		if g, ok := byGroup[b.GroupID]; ok {
			summary = &g
		}
		responses = append(responses, s.toResponse(ctx, b, summary))
	}

	return responses, nil
}

func (s *BillServiceImpl) UpdateBill(ctx context.Context, req billing.UpdateBillRequest) (billing.BillResponse, error) {
	if err := req.Validate(); err != nil {
		return billing.BillResponse{}, err
	}

	bill, err := s.billRepo.GetByID(ctx, req.ID)
	if err != nil {
		return billing.BillResponse{}, err
	}

	// The first read only supplies the lock key. Re-read under the lock
	// and check the status there, so a concurrent transition cannot slip
	// in between.
	unlock := s.locks.Lock(bill.OperationID, bill.GroupID)
	defer unlock()

	bill, err = s.billRepo.GetByID(ctx, req.ID)
	if err != nil {
		return billing.BillResponse{}, err
	}
	if bill.Status == billing.StatusCompleted && req.TouchesTotals() {
		return billing.BillResponse{}, billing.ErrBillCompleted
	}
	if req.GroupID != nil && *req.GroupID != bill.GroupID {
		return billing.BillResponse{}, billing.ErrGroupMismatch
	}

	if !req.TouchesTotals() {
		if req.Observation != nil {
			bill.Observation = req.Observation
			if err := s.billRepo.Update(ctx, bill); err != nil {
				return billing.BillResponse{}, err
			}
		}
		return s.GetBill(ctx, bill.ID)
	}

	op, err := s.opRepo.GetByID(ctx, bill.OperationID)
	if err != nil {
		return billing.BillResponse{}, err
	}
	g, err := s.opRepo.GetGroupSummary(ctx, bill.OperationID, bill.GroupID)
	if err != nil {
		return billing.BillResponse{}, err
	}

	in := billing.GroupBillInput{
		GroupID:       bill.GroupID,
		BillHours:     billing.HoursInputFrom(bill.BillingHours),
		PaysheetHours: billing.HoursInputFrom(bill.PaysheetHours),
		Amount:        req.Amount,
		GroupHours:    req.GroupHours,
		Observation:   req.Observation,
		Pays:          req.Pays,
	}
	if req.BillHours != nil {
		in.BillHours = *req.BillHours
	}
	if req.PaysheetHours != nil {
		in.PaysheetHours = *req.PaysheetHours
	}
	// Keep the stored apportionment when the update does not resubmit one.
	if len(in.Pays) == 0 {
		for _, d := range bill.Details {
			in.Pays = append(in.Pays, billing.PayShare{WorkerID: d.WorkerID, Weight: d.PayUnit})
		}
	}
	if err := checkPayCoverage(g, in.Pays); err != nil {
		return billing.BillResponse{}, err
	}

	// Amounts are not persisted; an omitted amount is reconstructed from the
	// paysheet total so quantity groups survive a partial update.
	var fallbackAmount *float64
	if req.Amount == nil {
		a := safeDiv(bill.TotalPaysheet, g.PaysheetTariff, "update.amount_fallback")
		fallbackAmount = &a
	}

	recorded := bill.GroupHours
	res := s.compute(ctx, g, in, &recorded, bill.Status, op, fallbackAmount, true)

	bill.WeekNumber = res.weekNumber
	bill.TotalBill = round2(res.billingTotal)
	bill.TotalPaysheet = round2(res.paysheetTotal)
	bill.NumberOfWorkers = g.WorkerCount
	bill.GroupHours = round2(res.groupHours)
	bill.BillingHours = in.BillHours.Distribution()
	bill.PaysheetHours = in.PaysheetHours.Distribution()
	if req.Observation != nil {
		bill.Observation = req.Observation
	}
	details := buildDetails(res, g, in.Pays)

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.billRepo.Update(txCtx, bill); err != nil {
			return err
		}
		if err := s.billRepo.DeleteDetails(txCtx, bill.ID); err != nil {
			return err
		}
		var err error
		bill.Details, err = s.billRepo.CreateDetails(txCtx, bill.ID, details)
		return err
	})
	if err != nil {
		return billing.BillResponse{}, err
	}

	if _, err := s.reconciler.ReconcileOperation(ctx, bill.OperationID); err != nil {
		return billing.BillResponse{}, err
	}

	return s.toResponse(ctx, bill, &g), nil
}

func (s *BillServiceImpl) UpdateBillStatus(ctx context.Context, id string, req billing.UpdateBillStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill.Status == billing.StatusCompleted {
		// COMPLETED is terminal.
		return billing.ErrBillCompleted
	}

	return s.billRepo.UpdateStatus(ctx, id, billing.Status(req.Status))
}

func (s *BillServiceImpl) DeleteBill(ctx context.Context, id string) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(bill.OperationID, bill.GroupID)
	defer unlock()

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.billRepo.DeleteDetails(txCtx, bill.ID); err != nil {
			return err
		}
		return s.billRepo.Delete(txCtx, bill.ID)
	})
	if err != nil {
		return err
	}

	_, err = s.reconciler.ReconcileOperation(ctx, bill.OperationID)
	return err
}

func (s *BillServiceImpl) RecalculateGroupHours(ctx context.Context, operationID, groupID string) (billing.RecalculateResponse, error) {
	unlock := s.locks.Lock(operationID, groupID)
	defer unlock()

	groupHours, opDuration, err := s.reconciler.RecalculateGroupHours(ctx, operationID, groupID)
	if err != nil {
		return billing.RecalculateResponse{}, err
	}

	return billing.RecalculateResponse{GroupHours: groupHours, OpDuration: opDuration}, nil
}
