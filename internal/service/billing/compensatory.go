package billing

import (
	"context"
	"time"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
)

// The statutory week is six workable days; one sixth of a working day
// accrues as rest compensation.
const workableDaysPerWeek = 6

// CompensatoryHours computes the rest-day compensation hours accrued from a
// duration figure. Rules, in order:
//  1. a range containing a Sunday accrues nothing;
//  2. before the bill completes, durations above the daily cap yield a fixed
//     provisional placeholder so callers can preview that compensation will
//     apply without the exact figure;
//  3. otherwise the capped duration accrues at compensatoryDay/dayCap per
//     hour.
func (p *CalendarPolicy) CompensatoryHours(ctx context.Context, hours float64, status billing.Status, start, end time.Time) float64 {
	if HasSunday(start, end) {
		return 0
	}

	weeklyCap := p.WeeklyCap(ctx, false)
	dayCap := safeDiv(weeklyCap, workableDaysPerWeek, "compensatory.day_cap")
	compensatoryDay := safeDiv(dayCap, workableDaysPerWeek, "compensatory.day")

	if status != billing.StatusCompleted && hours > dayCap {
		return compensatoryDay
	}

	perHour := safeDiv(compensatoryDay, dayCap, "compensatory.per_hour")
	effectiveHours := safeNum(hours, "compensatory.hours")
	if effectiveHours > dayCap {
		effectiveHours = dayCap
	}
	return safeNum(effectiveHours*perHour, "compensatory.result")
}

// CompensatoryResult prices accrued hours for a group: hours x workers x
// tariff, with the per-hour accrual ratio reported as percentage.
func (p *CalendarPolicy) CompensatoryResult(ctx context.Context, hours float64, status billing.Status, start, end time.Time, workerCount int, tariff float64) billing.CompensatoryResult {
	compHours := p.CompensatoryHours(ctx, hours, status, start, end)

	weeklyCap := p.WeeklyCap(ctx, false)
	dayCap := safeDiv(weeklyCap, workableDaysPerWeek, "compensatory.day_cap")
	perHour := safeDiv(safeDiv(dayCap, workableDaysPerWeek, "compensatory.day"), dayCap, "compensatory.per_hour")

	return billing.CompensatoryResult{
		Hours:      compHours,
		Amount:     safeNum(compHours*float64(workerCount)*tariff, "compensatory.amount"),
		Percentage: perHour,
	}
}
