package billing

import (
	"time"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
)

// modeResult is what every calculation mode produces for one group: the two
// monetary totals, their category breakdowns and compensatory sub-results,
// plus the schedule figures the bill row records.
type modeResult struct {
	mode        GroupMode
	weekNumber  int
	workerCount int
	startsAt    time.Time
	endsAt      time.Time
	groupHours  float64

	billingTotal  float64
	paysheetTotal float64
	billingCalc   Calculation
	paysheetCalc  Calculation
	billingComp   billing.CompensatoryResult
	paysheetComp  billing.CompensatoryResult

	// quantity-style groups persist a monetary pay_rate scaled by amount
	amount       float64
	monetaryRate bool
}

// resolveDuration picks the group duration figure used for compensatory:
// the submitted override wins, then the already-recorded value, then the
// ordinary day+night hours of the distribution.
func resolveDuration(override, recorded *float64, dist billing.HoursDistribution) float64 {
	if override != nil {
		return safeNum(*override, "group_hours.override")
	}
	if recorded != nil && *recorded > 0 {
		return safeNum(*recorded, "group_hours.recorded")
	}
	return safeNum(dist.OrdinaryTotal(), "group_hours.fallback")
}
