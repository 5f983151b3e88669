package billing

import "time"

// Status enum for a group's bill
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

// HoursDistribution holds the eight canonical hour-category buckets. Two
// parallel instances exist per bill: one priced with the facturation tariff,
// one with the paysheet tariff.
type HoursDistribution struct {
	OrdinaryDay          float64
	OrdinaryNight        float64
	ExtraDay             float64
	ExtraNight           float64
	HolidayOrdinaryDay   float64
	HolidayOrdinaryNight float64
	HolidayExtraDay      float64
	HolidayExtraNight    float64
}

// Total returns the raw hour count across all eight buckets.
func (d HoursDistribution) Total() float64 {
	return d.OrdinaryDay + d.OrdinaryNight + d.ExtraDay + d.ExtraNight +
		d.HolidayOrdinaryDay + d.HolidayOrdinaryNight + d.HolidayExtraDay + d.HolidayExtraNight
}

// OrdinaryTotal returns the ordinary day+night hours, the fallback figure for
// a group's duration when no recorded value exists.
func (d HoursDistribution) OrdinaryTotal() float64 {
	return d.OrdinaryDay + d.OrdinaryNight
}

// Bill - one row per (operation, group)
type Bill struct {
	ID              string
	OperationID     string
	GroupID         string
	WeekNumber      int
	TotalBill       float64
	TotalPaysheet   float64
	NumberOfWorkers int
	GroupHours      float64
	BillingHours    HoursDistribution
	PaysheetHours   HoursDistribution
	Status          Status
	Observation     *string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined rows, one per worker; cascade-deleted with the bill
	Details []BillDetail
}

// BillDetail - one row per (bill, worker)
type BillDetail struct {
	ID            string
	BillID        string
	WorkerID      string
	PayRate       float64 // apportionment basis actually used
	PayUnit       float64 // raw submitted share weight
	TotalBill     float64
	TotalPaysheet float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CompensatoryResult - derived rest-day compensation, computed on read and at
// invoice time, never persisted.
type CompensatoryResult struct {
	Hours      float64
	Amount     float64
	Percentage float64
}
