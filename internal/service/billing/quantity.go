package billing

import (
	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
)

// computeQuantity prices a flat-quantity group: amount x tariff on each side.
// A group that omits its amount falls back to the caller-supplied quantity.
func computeQuantity(g operation.GroupSummary, in billing.GroupBillInput, fallbackAmount *float64) modeResult {
	amount := 0.0
	switch {
	case in.Amount != nil:
		amount = *in.Amount
	case fallbackAmount != nil:
		amount = *fallbackAmount
	}
	amount = safeNum(amount, "quantity.amount")

	return modeResult{
		mode:          ModeQuantity,
		weekNumber:    WeekNumber(g.StartsAt),
		workerCount:   g.WorkerCount,
		startsAt:      g.StartsAt,
		endsAt:        g.EndsAt,
		amount:        amount,
		monetaryRate:  true,
		billingTotal:  safeNum(amount*g.FacturationTariff, "quantity.billing_total"),
		paysheetTotal: safeNum(amount*g.PaysheetTariff, "quantity.paysheet_total"),
	}
}
