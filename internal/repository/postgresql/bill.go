package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type billRepository struct {
	db *database.DB
}

func NewBillRepository(db *database.DB) billing.BillRepository {
	return &billRepository{db: db}
}

const billColumns = `
	id, operation_id, group_id, week_number, total_bill, total_paysheet,
	number_of_workers, group_hours,
	billing_hod, billing_hon, billing_hed, billing_hen,
	billing_hfod, billing_hfon, billing_hfed, billing_hfen,
	paysheet_hod, paysheet_hon, paysheet_hed, paysheet_hen,
	paysheet_hfod, paysheet_hfon, paysheet_hfed, paysheet_hfen,
	status, observation, created_by, created_at, updated_at
`

func scanBill(row pgx.Row) (billing.Bill, error) {
	var b billing.Bill
	err := row.Scan(
		&b.ID, &b.OperationID, &b.GroupID, &b.WeekNumber, &b.TotalBill, &b.TotalPaysheet,
		&b.NumberOfWorkers, &b.GroupHours,
		&b.BillingHours.OrdinaryDay, &b.BillingHours.OrdinaryNight, &b.BillingHours.ExtraDay, &b.BillingHours.ExtraNight,
		&b.BillingHours.HolidayOrdinaryDay, &b.BillingHours.HolidayOrdinaryNight, &b.BillingHours.HolidayExtraDay, &b.BillingHours.HolidayExtraNight,
		&b.PaysheetHours.OrdinaryDay, &b.PaysheetHours.OrdinaryNight, &b.PaysheetHours.ExtraDay, &b.PaysheetHours.ExtraNight,
		&b.PaysheetHours.HolidayOrdinaryDay, &b.PaysheetHours.HolidayOrdinaryNight, &b.PaysheetHours.HolidayExtraDay, &b.PaysheetHours.HolidayExtraNight,
		&b.Status, &b.Observation, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *billRepository) Create(ctx context.Context, bill billing.Bill) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}

	query := fmt.Sprintf(`
		INSERT INTO bills (
			id, operation_id, group_id, week_number, total_bill, total_paysheet,
			number_of_workers, group_hours,
			billing_hod, billing_hon, billing_hed, billing_hen,
			billing_hfod, billing_hfon, billing_hfed, billing_hfen,
			paysheet_hod, paysheet_hon, paysheet_hed, paysheet_hen,
			paysheet_hfod, paysheet_hfon, paysheet_hfed, paysheet_hfen,
			status, observation, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING %s
	`, billColumns)

	created, err := scanBill(q.QueryRow(ctx, query,
		bill.ID, bill.OperationID, bill.GroupID, bill.WeekNumber, bill.TotalBill, bill.TotalPaysheet,
		bill.NumberOfWorkers, bill.GroupHours,
		bill.BillingHours.OrdinaryDay, bill.BillingHours.OrdinaryNight, bill.BillingHours.ExtraDay, bill.BillingHours.ExtraNight,
		bill.BillingHours.HolidayOrdinaryDay, bill.BillingHours.HolidayOrdinaryNight, bill.BillingHours.HolidayExtraDay, bill.BillingHours.HolidayExtraNight,
		bill.PaysheetHours.OrdinaryDay, bill.PaysheetHours.OrdinaryNight, bill.PaysheetHours.ExtraDay, bill.PaysheetHours.ExtraNight,
		bill.PaysheetHours.HolidayOrdinaryDay, bill.PaysheetHours.HolidayOrdinaryNight, bill.PaysheetHours.HolidayExtraDay, bill.PaysheetHours.HolidayExtraNight,
		bill.Status, bill.Observation, bill.CreatedBy,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_bill_operation_group") {
			return billing.Bill{}, billing.ErrBillExists
		}
		return billing.Bill{}, fmt.Errorf("failed to create bill: %w", err)
	}

	return created, nil
}

func (r *billRepository) GetByID(ctx context.Context, id string) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM bills WHERE id = $1`, billColumns)

	b, err := scanBill(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.Bill{}, billing.ErrBillNotFound
		}
		return billing.Bill{}, fmt.Errorf("failed to get bill: %w", err)
	}

	details, err := r.GetDetails(ctx, b.ID)
	if err != nil {
		return billing.Bill{}, err
	}
	b.Details = details

	return b, nil
}

func (r *billRepository) GetByOperationAndGroup(ctx context.Context, operationID, groupID string) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM bills WHERE operation_id = $1 AND group_id = $2`, billColumns)

	b, err := scanBill(q.QueryRow(ctx, query, operationID, groupID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.Bill{}, billing.ErrBillNotFound
		}
		return billing.Bill{}, fmt.Errorf("failed to get bill by operation and group: %w", err)
	}

	details, err := r.GetDetails(ctx, b.ID)
	if err != nil {
		return billing.Bill{}, err
	}
	b.Details = details

	return b, nil
}

func (r *billRepository) ListByOperation(ctx context.Context, operationID string) ([]billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM bills WHERE operation_id = $1 ORDER BY created_at`, billColumns)

	rows, err := q.Query(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []billing.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}

	for i := range bills {
		details, err := r.GetDetails(ctx, bills[i].ID)
		if err != nil {
			return nil, err
		}
		bills[i].Details = details
	}

	return bills, nil
}

func (r *billRepository) Update(ctx context.Context, bill billing.Bill) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bills SET
			group_id = $2, week_number = $3, total_bill = $4, total_paysheet = $5,
			number_of_workers = $6, group_hours = $7,
			billing_hod = $8, billing_hon = $9, billing_hed = $10, billing_hen = $11,
			billing_hfod = $12, billing_hfon = $13, billing_hfed = $14, billing_hfen = $15,
			paysheet_hod = $16, paysheet_hon = $17, paysheet_hed = $18, paysheet_hen = $19,
			paysheet_hfod = $20, paysheet_hfon = $21, paysheet_hfed = $22, paysheet_hfen = $23,
			observation = $24, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		bill.ID,
		bill.GroupID, bill.WeekNumber, bill.TotalBill, bill.TotalPaysheet,
		bill.NumberOfWorkers, bill.GroupHours,
		bill.BillingHours.OrdinaryDay, bill.BillingHours.OrdinaryNight, bill.BillingHours.ExtraDay, bill.BillingHours.ExtraNight,
		bill.BillingHours.HolidayOrdinaryDay, bill.BillingHours.HolidayOrdinaryNight, bill.BillingHours.HolidayExtraDay, bill.BillingHours.HolidayExtraNight,
		bill.PaysheetHours.OrdinaryDay, bill.PaysheetHours.OrdinaryNight, bill.PaysheetHours.ExtraDay, bill.PaysheetHours.ExtraNight,
		bill.PaysheetHours.HolidayOrdinaryDay, bill.PaysheetHours.HolidayOrdinaryNight, bill.PaysheetHours.HolidayExtraDay, bill.PaysheetHours.HolidayExtraNight,
		bill.Observation,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.ErrBillNotFound
		}
		return fmt.Errorf("failed to update bill: %w", err)
	}

	return nil
}

func (r *billRepository) UpdateStatus(ctx context.Context, id string, status billing.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE bills SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.ErrBillNotFound
		}
		return fmt.Errorf("failed to update bill status: %w", err)
	}

	return nil
}

func (r *billRepository) UpdateGroupHours(ctx context.Context, id string, hours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE bills SET group_hours = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query, id, hours).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.ErrBillNotFound
		}
		return fmt.Errorf("failed to update bill group hours: %w", err)
	}

	return nil
}

func (r *billRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM bills WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.ErrBillNotFound
		}
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	return nil
}

func (r *billRepository) CreateDetails(ctx context.Context, billID string, details []billing.BillDetail) ([]billing.BillDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bill_details (id, bill_id, worker_id, pay_rate, pay_unit, total_bill, total_paysheet)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, bill_id, worker_id, pay_rate, pay_unit, total_bill, total_paysheet, created_at, updated_at
	`

	created := make([]billing.BillDetail, 0, len(details))
	for _, d := range details {
		if d.ID == "" {
			d.ID = uuid.New().String()
		}
		var row billing.BillDetail
		err := q.QueryRow(ctx, query,
			d.ID, billID, d.WorkerID, d.PayRate, d.PayUnit, d.TotalBill, d.TotalPaysheet,
		).Scan(
			&row.ID, &row.BillID, &row.WorkerID, &row.PayRate, &row.PayUnit,
			&row.TotalBill, &row.TotalPaysheet, &row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create bill detail: %w", err)
		}
		created = append(created, row)
	}

	return created, nil
}

func (r *billRepository) GetDetails(ctx context.Context, billID string) ([]billing.BillDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, bill_id, worker_id, pay_rate, pay_unit, total_bill, total_paysheet, created_at, updated_at
		FROM bill_details
		WHERE bill_id = $1
		ORDER BY worker_id
	`

	rows, err := q.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill details: %w", err)
	}
	defer rows.Close()

	var details []billing.BillDetail
	for rows.Next() {
		var d billing.BillDetail
		if err := rows.Scan(
			&d.ID, &d.BillID, &d.WorkerID, &d.PayRate, &d.PayUnit,
			&d.TotalBill, &d.TotalPaysheet, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bill detail: %w", err)
		}
		details = append(details, d)
	}

	return details, nil
}

func (r *billRepository) DeleteDetails(ctx context.Context, billID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM bill_details WHERE bill_id = $1`, billID); err != nil {
		return fmt.Errorf("failed to delete bill details: %w", err)
	}

	return nil
}

func (r *billRepository) SumGroupHours(ctx context.Context, operationID string) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COALESCE(SUM(group_hours), 0) FROM bills WHERE operation_id = $1`

	var total float64
	if err := q.QueryRow(ctx, query, operationID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum group hours: %w", err)
	}

	return total, nil
}
