package billing

import (
	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
)

// sumWeights totals the submitted pay-share weights. With no explicit weights
// the split is equal: the divisor defaults to the worker count. A share entry
// with a zero weight counts as submitted; an absent worker defaults to 1.
func sumWeights(pays []billing.PayShare, workerCount int) float64 {
	if len(pays) == 0 {
		return float64(workerCount)
	}
	var sum float64
	for _, p := range pays {
		sum += p.Weight
	}
	return safeNum(sum, "pays.weight_sum")
}

// shareWeight returns the submitted weight for a worker, defaulting to 1.
func shareWeight(pays []billing.PayShare, workerID string) float64 {
	for _, p := range pays {
		if p.WorkerID == workerID {
			return p.Weight
		}
	}
	return 1
}

// WorkerShare splits a group total proportionally:
// (total / sum of weights) x worker weight.
func WorkerShare(total float64, pays []billing.PayShare, workerID string, workerCount int) float64 {
	perWeight := safeDiv(total, sumWeights(pays, workerCount), "apportion.per_weight")
	return safeNum(perWeight*shareWeight(pays, workerID), "apportion.share")
}

// PayRate returns the apportionment basis persisted on the detail row. For
// quantity-style groups it is the share ratio scaled by the submitted amount;
// for hours/jornal groups the rate is simply the raw weight.
func PayRate(monetary bool, amount float64, pays []billing.PayShare, workerID string, workerCount int) float64 {
	weight := shareWeight(pays, workerID)
	if !monetary {
		return weight
	}
	perWeight := safeDiv(amount, sumWeights(pays, workerCount), "apportion.pay_rate")
	return safeNum(perWeight*weight, "apportion.pay_rate")
}
