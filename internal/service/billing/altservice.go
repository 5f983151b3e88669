package billing

import (
	"context"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
)

// computeAlternative prices an alternative-paid-service group. The two sides
// resolve independently: facturation follows the group-tariff flag and the
// facturation unit, the paysheet follows the paysheet unit, each delegating
// to the hourly or daily mode when the unit calls for it.
//
// The compensatory figure embedded in the facturation branch diverges
// between paths on purpose: the create path keeps the facturation-tariff
// figure produced by the delegated hourly calculation, while the update path
// recomputes against the paysheet tariff. Flagged for product clarification;
// both behaviors are preserved as shipped.
func computeAlternative(ctx context.Context, cal *CalendarPolicy, g operation.GroupSummary, in billing.GroupBillInput, recorded *float64, status billing.Status, op operation.Operation, fallbackAmount *float64, isUpdate bool) modeResult {
	res := modeResult{
		mode:        ModeAlternativeService,
		weekNumber:  WeekNumber(g.StartsAt),
		workerCount: g.WorkerCount,
		startsAt:    g.StartsAt,
		endsAt:      g.EndsAt,
	}

	amount := 0.0
	switch {
	case in.Amount != nil:
		amount = *in.Amount
	case fallbackAmount != nil:
		amount = *fallbackAmount
	}
	amount = safeNum(amount, "altservice.amount")
	res.amount = amount

	duration := resolveDuration(in.GroupHours, recorded, in.BillHours.Distribution())
	res.groupHours = duration

	// Facturacion branch
	switch {
	case g.GroupTariff == operation.FlagYes:
		// Flat group-level rate regardless of unit.
		res.billingTotal = safeNum(duration*g.FacturationTariff, "altservice.billing_group_rate")
		res.monetaryRate = true
	case g.FacturationUnit == operation.UnitHours:
		hr := computeHours(ctx, cal, g, in, recorded, status)
		res.billingCalc = hr.billingCalc
		res.billingComp = hr.billingComp
		res.billingTotal = hr.billingTotal
		if isUpdate && g.CompensatoryTariff == operation.FlagYes {
			// Update path recomputes compensation against the paysheet tariff.
			recomputed := cal.CompensatoryResult(ctx, duration, status, g.StartsAt, g.EndsAt, g.WorkerCount, g.PaysheetTariff)
			res.billingTotal = safeNum(res.billingTotal-hr.billingComp.Amount+recomputed.Amount, "altservice.billing_recomputed")
			res.billingComp = recomputed
		}
	case g.FacturationUnit == operation.UnitJornal:
		jr := computeJornal(g, in, op)
		res.billingCalc = jr.billingCalc
		res.billingTotal = jr.billingTotal
	default:
		res.billingTotal = safeNum(amount*g.FacturationTariff, "altservice.billing_quantity")
		res.monetaryRate = true
	}

	// Nomina branch
	switch g.PaysheetUnit {
	case operation.UnitHours:
		hr := computeHours(ctx, cal, g, in, recorded, status)
		res.paysheetCalc = hr.paysheetCalc
		res.paysheetComp = hr.paysheetComp
		res.paysheetTotal = hr.paysheetTotal
		if res.groupHours == 0 {
			res.groupHours = hr.groupHours
		}
	case operation.UnitJornal:
		jr := computeJornal(g, in, op)
		res.paysheetCalc = jr.paysheetCalc
		res.paysheetTotal = jr.paysheetTotal
	default:
		res.paysheetTotal = safeNum(amount*g.PaysheetTariff, "altservice.paysheet_quantity")
	}

	return res
}
