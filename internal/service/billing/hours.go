package billing

import (
	"context"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
)

// computeHours prices an hourly-rate group. The schedule window is the
// group's own date range; both distributions run through the category engine
// against their respective tariffs, and rest compensation accrues on the
// resolved group duration. Compensation is always payable on the paysheet
// side; the facturation side only carries it when the tariff marks
// compensatory = YES.
func computeHours(ctx context.Context, cal *CalendarPolicy, g operation.GroupSummary, in billing.GroupBillInput, recorded *float64, status billing.Status) modeResult {
	billDist := in.BillHours.Distribution()
	payDist := in.PaysheetHours.Distribution()

	res := modeResult{
		mode:        ModeHours,
		weekNumber:  WeekNumber(g.StartsAt),
		workerCount: g.WorkerCount,
		startsAt:    g.StartsAt,
		endsAt:      g.EndsAt,
	}

	billingDuration := resolveDuration(in.GroupHours, recorded, billDist)
	paysheetDuration := resolveDuration(in.GroupHours, recorded, payDist)
	res.groupHours = paysheetDuration

	res.billingCalc = BaseCalculation(billDist, g.FacturationTariff)
	res.billingTotal = safeNum(res.billingCalc.TotalAmount*float64(g.WorkerCount), "hours.billing_total")
	if g.FullTariff == operation.FlagYes {
		// Flat-rate escape hatch: tariff x raw hours x workers, no multipliers.
		res.billingCalc = FullTariffCalculation(billDist, g.FacturationTariff, g.WorkerCount)
		res.billingTotal = res.billingCalc.TotalAmount
	}

	res.paysheetCalc = BaseCalculation(payDist, g.PaysheetTariff)
	res.paysheetTotal = safeNum(res.paysheetCalc.TotalAmount*float64(g.WorkerCount), "hours.paysheet_total")

	res.billingComp = cal.CompensatoryResult(ctx, billingDuration, status, g.StartsAt, g.EndsAt, g.WorkerCount, g.FacturationTariff)
	res.paysheetComp = cal.CompensatoryResult(ctx, paysheetDuration, status, g.StartsAt, g.EndsAt, g.WorkerCount, g.PaysheetTariff)

	res.paysheetTotal = safeNum(res.paysheetTotal+res.paysheetComp.Amount, "hours.paysheet_final")
	if g.CompensatoryTariff == operation.FlagYes {
		res.billingTotal = safeNum(res.billingTotal+res.billingComp.Amount, "hours.billing_final")
	}

	return res
}
