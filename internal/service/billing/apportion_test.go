package billing

import (
	"testing"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
	"github.com/harborops/stevedoring-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestWorkerShare_EqualSplitByDefault(t *testing.T) {
	workers := []string{"w1", "w2", "w3", "w4"}

	var sum float64
	for _, id := range workers {
		share := WorkerShare(1000, nil, id, len(workers))
		assert.InDelta(t, 250, share, 1e-9)
		sum += share
	}
	assert.InDelta(t, 1000, sum, 1e-6)
}

func TestWorkerShare_WeightedSplit(t *testing.T) {
	pays := []billing.PayShare{
		{WorkerID: "w1", Weight: 3},
		{WorkerID: "w2", Weight: 1},
	}

	assert.InDelta(t, 750, WorkerShare(1000, pays, "w1", 2), 1e-9)
	assert.InDelta(t, 250, WorkerShare(1000, pays, "w2", 2), 1e-9)
}

func TestWorkerShare_SharesSumToTotal(t *testing.T) {
	pays := []billing.PayShare{
		{WorkerID: "w1", Weight: 1.5},
		{WorkerID: "w2", Weight: 2.25},
		{WorkerID: "w3", Weight: 0.25},
	}

	var sum float64
	for _, p := range pays {
		sum += WorkerShare(777.77, pays, p.WorkerID, len(pays))
	}
	assert.InDelta(t, 777.77, sum, 1e-6)
}

func TestWorkerShare_MissingWorkerDefaultsToWeightOne(t *testing.T) {
	pays := []billing.PayShare{{WorkerID: "w1", Weight: 3}}

	// w2 has no entry: it still draws one weight unit against the submitted
	// sum of 3.
	assert.InDelta(t, 1000.0/3.0, WorkerShare(1000, pays, "w2", 2), 1e-6)
}

func TestWorkerShare_ZeroWeightSum(t *testing.T) {
	pays := []billing.PayShare{{WorkerID: "w1", Weight: 0}}

	// Zero divisor coerces to zero instead of propagating Inf.
	assert.Zero(t, WorkerShare(1000, pays, "w1", 1))
}

func TestPayRate(t *testing.T) {
	pays := []billing.PayShare{
		{WorkerID: "w1", Weight: 3},
		{WorkerID: "w2", Weight: 1},
	}

	// Hour and jornal groups persist the raw weight.
	assert.InDelta(t, 3, PayRate(false, 0, pays, "w1", 2), 1e-9)
	assert.InDelta(t, 1, PayRate(false, 0, pays, "w2", 2), 1e-9)

	// Quantity-style groups persist the amount-scaled share.
	assert.InDelta(t, 75, PayRate(true, 100, pays, "w1", 2), 1e-9)
	assert.InDelta(t, 25, PayRate(true, 100, pays, "w2", 2), 1e-9)

	// Monetary rate with no explicit shares splits the amount equally.
	assert.InDelta(t, 50, PayRate(true, 100, nil, "w1", 2), 1e-9)
}

func TestBuildDetails_SumMatchesRoundedTotals(t *testing.T) {
	// 100 over three equal workers rounds each share to 33.33; the last
	// worker absorbs the cent so the detail rows still sum to 100.00.
	g := operation.GroupSummary{
		WorkerCount: 3,
		Workers:     []operation.Worker{{ID: "w1"}, {ID: "w2"}, {ID: "w3"}},
	}
	res := modeResult{billingTotal: 100, paysheetTotal: 100}

	details := buildDetails(res, g, nil)
	assert.Len(t, details, 3)
	assert.InDelta(t, 33.33, details[0].TotalBill, 1e-9)
	assert.InDelta(t, 33.33, details[1].TotalBill, 1e-9)
	assert.InDelta(t, 33.34, details[2].TotalBill, 1e-9)

	var billSum, paySum float64
	for _, d := range details {
		billSum += d.TotalBill
		paySum += d.TotalPaysheet
	}
	assert.InDelta(t, 100.0, billSum, 1e-6)
	assert.InDelta(t, 100.0, paySum, 1e-6)
}

func TestBuildDetails_WeightedSumMatchesRoundedTotals(t *testing.T) {
	g := operation.GroupSummary{
		WorkerCount: 3,
		Workers:     []operation.Worker{{ID: "w1"}, {ID: "w2"}, {ID: "w3"}},
	}
	pays := []billing.PayShare{
		{WorkerID: "w1", Weight: 1},
		{WorkerID: "w2", Weight: 1},
		{WorkerID: "w3", Weight: 1},
	}
	res := modeResult{billingTotal: 777.77, paysheetTotal: 93.5}

	details := buildDetails(res, g, pays)

	var billSum, paySum float64
	for _, d := range details {
		billSum += d.TotalBill
		paySum += d.TotalPaysheet
	}
	assert.InDelta(t, 777.77, billSum, 1e-6)
	assert.InDelta(t, 93.5, paySum, 1e-6)
}

func TestCheckPayCoverage(t *testing.T) {
	g := operation.GroupSummary{Workers: []operation.Worker{{ID: "w1"}, {ID: "w2"}}}

	// A partial list leaves w2 without a share and is rejected as a
	// validation failure.
	err := checkPayCoverage(g, []billing.PayShare{{WorkerID: "w1", Weight: 1}})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	// An empty list means an equal split, not missing coverage.
	assert.NoError(t, checkPayCoverage(g, nil))
}
