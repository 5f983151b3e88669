package billing

import (
	"github.com/harborops/stevedoring-backend-go/internal/pkg/validator"
)

// HoursInput carries the eight hour-category buckets on the wire. The field
// codes follow the tariff sheet: H(oliday) O(rdinary)/E(xtra) D(ay)/N(ight).
type HoursInput struct {
	OrdinaryDay          float64 `json:"hod"`
	OrdinaryNight        float64 `json:"hon"`
	ExtraDay             float64 `json:"hed"`
	ExtraNight           float64 `json:"hen"`
	HolidayOrdinaryDay   float64 `json:"hfod"`
	HolidayOrdinaryNight float64 `json:"hfon"`
	HolidayExtraDay      float64 `json:"hfed"`
	HolidayExtraNight    float64 `json:"hfen"`
}

// Distribution converts the wire form into the entity form.
func (h HoursInput) Distribution() HoursDistribution {
	return HoursDistribution{
		OrdinaryDay:          h.OrdinaryDay,
		OrdinaryNight:        h.OrdinaryNight,
		ExtraDay:             h.ExtraDay,
		ExtraNight:           h.ExtraNight,
		HolidayOrdinaryDay:   h.HolidayOrdinaryDay,
		HolidayOrdinaryNight: h.HolidayOrdinaryNight,
		HolidayExtraDay:      h.HolidayExtraDay,
		HolidayExtraNight:    h.HolidayExtraNight,
	}
}

// HoursInputFrom converts the entity form into the wire form.
func HoursInputFrom(d HoursDistribution) HoursInput {
	return HoursInput{
		OrdinaryDay:          d.OrdinaryDay,
		OrdinaryNight:        d.OrdinaryNight,
		ExtraDay:             d.ExtraDay,
		ExtraNight:           d.ExtraNight,
		HolidayOrdinaryDay:   d.HolidayOrdinaryDay,
		HolidayOrdinaryNight: d.HolidayOrdinaryNight,
		HolidayExtraDay:      d.HolidayExtraDay,
		HolidayExtraNight:    d.HolidayExtraNight,
	}
}

func (h HoursInput) validate(field string, errs validator.ValidationErrors) validator.ValidationErrors {
	buckets := []struct {
		code string
		v    float64
	}{
		{"hod", h.OrdinaryDay}, {"hon", h.OrdinaryNight},
		{"hed", h.ExtraDay}, {"hen", h.ExtraNight},
		{"hfod", h.HolidayOrdinaryDay}, {"hfon", h.HolidayOrdinaryNight},
		{"hfed", h.HolidayExtraDay}, {"hfen", h.HolidayExtraNight},
	}
	for _, b := range buckets {
		if b.v < 0 {
			errs = append(errs, validator.ValidationError{Field: field + "." + b.code, Message: "must be non-negative"})
		}
	}
	return errs
}

// PayShare - a worker's apportionment weight within a group
type PayShare struct {
	WorkerID string  `json:"worker_id"`
	Weight   float64 `json:"weight"`
}

// GroupBillInput - the client-submitted figures for one group
type GroupBillInput struct {
	GroupID       string     `json:"group_id"`
	BillHours     HoursInput `json:"bill_hours"`
	PaysheetHours HoursInput `json:"paysheet_hours"`
	Amount        *float64   `json:"amount,omitempty"`
	GroupHours    *float64   `json:"group_hours,omitempty"` // duration override, normally derived
	Observation   *string    `json:"observation,omitempty"`
	Pays          []PayShare `json:"pays,omitempty"`
}

func (g *GroupBillInput) validate(prefix string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(g.GroupID) {
		errs = append(errs, validator.ValidationError{Field: prefix + ".group_id", Message: "is required"})
	}
	errs = g.BillHours.validate(prefix+".bill_hours", errs)
	errs = g.PaysheetHours.validate(prefix+".paysheet_hours", errs)
	if g.Amount != nil && *g.Amount < 0 {
		errs = append(errs, validator.ValidationError{Field: prefix + ".amount", Message: "must be non-negative"})
	}
	for i, p := range g.Pays {
		field := prefix + ".pays[" + validator.Itoa(i) + "]"
		if validator.IsEmpty(p.WorkerID) {
			errs = append(errs, validator.ValidationError{Field: field + ".worker_id", Message: "is required"})
		}
		if p.Weight < 0 {
			errs = append(errs, validator.ValidationError{Field: field + ".weight", Message: "must be non-negative"})
		}
	}
	return errs
}

// CreateBillsRequest - billing request for an operation
type CreateBillsRequest struct {
	Groups         []GroupBillInput `json:"groups"`
	FallbackAmount *float64         `json:"fallback_amount,omitempty"` // quantity-mode default when a group omits amount
}

func (r *CreateBillsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Groups) == 0 {
		errs = append(errs, validator.ValidationError{Field: "groups", Message: "at least one group is required"})
	}
	for i := range r.Groups {
		errs = append(errs, r.Groups[i].validate("groups["+validator.Itoa(i)+"]")...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateBillRequest - partial update of one bill's submitted figures
type UpdateBillRequest struct {
	ID            string      `json:"-"`
	GroupID       *string     `json:"group_id,omitempty"` // must match the bill's group when present
	BillHours     *HoursInput `json:"bill_hours,omitempty"`
	PaysheetHours *HoursInput `json:"paysheet_hours,omitempty"`
	Amount        *float64    `json:"amount,omitempty"`
	GroupHours    *float64    `json:"group_hours,omitempty"`
	Observation   *string     `json:"observation,omitempty"`
	Pays          []PayShare  `json:"pays,omitempty"`
}

func (r *UpdateBillRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BillHours != nil {
		errs = r.BillHours.validate("bill_hours", errs)
	}
	if r.PaysheetHours != nil {
		errs = r.PaysheetHours.validate("paysheet_hours", errs)
	}
	if r.Amount != nil && *r.Amount < 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	for i, p := range r.Pays {
		if validator.IsEmpty(p.WorkerID) {
			errs = append(errs, validator.ValidationError{Field: "pays[" + validator.Itoa(i) + "].worker_id", Message: "is required"})
		}
		if p.Weight < 0 {
			errs = append(errs, validator.ValidationError{Field: "pays[" + validator.Itoa(i) + "].weight", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TouchesTotals reports whether the update changes figures that feed the
// bill's totals. Rejected on completed bills.
func (r *UpdateBillRequest) TouchesTotals() bool {
	return r.BillHours != nil || r.PaysheetHours != nil || r.Amount != nil ||
		r.GroupHours != nil || len(r.Pays) > 0
}

// UpdateBillStatusRequest - status transition
type UpdateBillStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateBillStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusCompleted)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be ACTIVE or COMPLETED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type CompensatoryResponse struct {
	Hours      float64 `json:"hours"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type BillDetailResponse struct {
	ID            string  `json:"id"`
	WorkerID      string  `json:"worker_id"`
	PayRate       float64 `json:"pay_rate"`
	PayUnit       float64 `json:"pay_unit"`
	TotalBill     float64 `json:"total_bill"`
	TotalPaysheet float64 `json:"total_paysheet"`
}

type BillResponse struct {
	ID                   string                `json:"id"`
	OperationID          string                `json:"operation_id"`
	GroupID              string                `json:"group_id"`
	WeekNumber           int                   `json:"week_number"`
	TotalBill            float64               `json:"total_bill"`
	TotalPaysheet        float64               `json:"total_paysheet"`
	NumberOfWorkers      int                   `json:"number_of_workers"`
	GroupHours           float64               `json:"group_hours"`
	BillingHours         HoursInput            `json:"billing_hours"`
	PaysheetHours        HoursInput            `json:"paysheet_hours"`
	Status               string                `json:"status"`
	Observation          *string               `json:"observation,omitempty"`
	Details              []BillDetailResponse  `json:"details"`
	PaysheetCompensatory *CompensatoryResponse `json:"paysheet_compensatory,omitempty"`
	BillingCompensatory  *CompensatoryResponse `json:"billing_compensatory,omitempty"`
}

// GroupFailure - one rejected group within a billing request; siblings are
// still processed.
type GroupFailure struct {
	GroupID string `json:"group_id"`
	Reason  string `json:"reason"`
}

type CreateBillsResponse struct {
	Bills    []BillResponse `json:"bills"`
	Failures []GroupFailure `json:"failures,omitempty"`
}

type RecalculateResponse struct {
	GroupHours float64 `json:"group_hours"`
	OpDuration float64 `json:"op_duration"`
}
