package billing

import (
	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
)

// computeJornal prices a fixed-daily-rate group. The operation's own calendar
// window is the authoritative schedule here, not the group's worker-level
// timestamps: a jornal bills by the operation day.
func computeJornal(g operation.GroupSummary, in billing.GroupBillInput, op operation.Operation) modeResult {
	billDist := in.BillHours.Distribution()
	payDist := in.PaysheetHours.Distribution()

	// Agreed hours come from the tariff; absent tariff data prices as 0.
	workedHours := safeNum(g.AgreedHours, "jornal.agreed_hours")

	res := modeResult{
		mode:        ModeJornal,
		weekNumber:  WeekNumber(op.StartsAt),
		workerCount: g.WorkerCount,
		startsAt:    op.StartsAt,
		endsAt:      op.EndsAt,
		groupHours:  workedHours,
	}

	res.billingCalc = BaseCalculation(billDist, g.FacturationTariff)
	res.paysheetCalc = BaseCalculation(payDist, g.PaysheetTariff)
	res.billingTotal = safeNum(billDist.Total()*g.FacturationTariff*float64(g.WorkerCount), "jornal.billing_total")
	res.paysheetTotal = safeNum(payDist.Total()*g.PaysheetTariff*float64(g.WorkerCount), "jornal.paysheet_total")

	return res
}
