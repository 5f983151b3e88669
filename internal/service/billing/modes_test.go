package billing

import (
	"context"
	"testing"
	"time"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
	"github.com/stretchr/testify/assert"
)

func hourlyGroup() operation.GroupSummary {
	return operation.GroupSummary{
		GroupID:                "g1",
		StartsAt:               weekStart,
		EndsAt:                 weekEnd,
		UnitOfMeasure:          operation.UnitHours,
		AlternativePaidService: operation.FlagNo,
		GroupTariff:            operation.FlagNo,
		FullTariff:             operation.FlagNo,
		CompensatoryTariff:     operation.FlagNo,
		FacturationUnit:        operation.UnitHours,
		PaysheetUnit:           operation.UnitHours,
		FacturationTariff:      20000,
		PaysheetTariff:         10000,
		WorkerCount:            2,
		Workers:                []operation.Worker{{ID: "w1"}, {ID: "w2"}},
	}
}

func eightOrdinaryHours() billing.GroupBillInput {
	return billing.GroupBillInput{
		GroupID:       "g1",
		BillHours:     billing.HoursInput{OrdinaryDay: 8},
		PaysheetHours: billing.HoursInput{OrdinaryDay: 8},
	}
}

func TestComputeHours_TwoWorkersFullDay(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	res := computeHours(ctx, cal, hourlyGroup(), eightOrdinaryHours(), nil, billing.StatusCompleted)

	assert.Equal(t, ModeHours, res.mode)
	assert.Equal(t, 2, res.workerCount)
	assert.InDelta(t, 8, res.groupHours, 1e-9)

	// 8h x 1.00 x 10000 x 2 workers, plus rest compensation:
	// 44/36 h x 2 workers x 10000.
	compAmount := (44.0 / 36.0) * 2 * 10000
	assert.InDelta(t, 160000+compAmount, res.paysheetTotal, 1e-2)
	assert.InDelta(t, compAmount, res.paysheetComp.Amount, 1e-2)

	// Compensation stays off the facturation side without the flag.
	assert.InDelta(t, 8*20000*2, res.billingTotal, 1e-6)
}

func TestComputeHours_CompensatoryFlagAddsToBilling(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	g := hourlyGroup()
	g.CompensatoryTariff = operation.FlagYes

	res := computeHours(ctx, cal, g, eightOrdinaryHours(), nil, billing.StatusCompleted)

	compAmount := (44.0 / 36.0) * 2 * 20000
	assert.InDelta(t, 8*20000*2+compAmount, res.billingTotal, 1e-2)
}

func TestComputeHours_FullTariffOverridesBillingTotal(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	g := hourlyGroup()
	g.FullTariff = operation.FlagYes

	in := eightOrdinaryHours()
	in.BillHours.ExtraNight = 2 // would cost 1.75x under the category engine

	res := computeHours(ctx, cal, g, in, nil, billing.StatusCompleted)

	// Flat: tariff x 10 raw hours x 2 workers, multipliers bypassed.
	assert.InDelta(t, 20000*10*2, res.billingTotal, 1e-6)
	// Paysheet side is untouched by the override.
	assert.InDelta(t, 8*10000*2+(44.0/36.0)*2*10000, res.paysheetTotal, 1e-2)
}

func TestComputeHours_DurationOverrideDrivesCompensation(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	override := 3.0
	in := eightOrdinaryHours()
	in.GroupHours = &override

	res := computeHours(ctx, cal, hourlyGroup(), in, nil, billing.StatusCompleted)

	assert.InDelta(t, 3, res.groupHours, 1e-9)
	assert.InDelta(t, (3.0/6.0)*2*10000, res.paysheetComp.Amount, 1e-2)
}

func TestComputeJornal(t *testing.T) {
	g := hourlyGroup()
	g.UnitOfMeasure = operation.UnitJornal
	g.AgreedHours = 7.5

	op := operation.Operation{
		ID:       "op1",
		StartsAt: date(2025, time.March, 10),
		EndsAt:   date(2025, time.March, 11),
	}

	in := billing.GroupBillInput{
		GroupID:       "g1",
		BillHours:     billing.HoursInput{OrdinaryDay: 6, ExtraNight: 2},
		PaysheetHours: billing.HoursInput{OrdinaryDay: 8},
	}

	res := computeJornal(g, in, op)

	assert.Equal(t, ModeJornal, res.mode)
	// Week and window come from the operation, not the group.
	assert.Equal(t, WeekNumber(op.StartsAt), res.weekNumber)
	assert.Equal(t, op.StartsAt, res.startsAt)
	assert.Equal(t, op.EndsAt, res.endsAt)
	assert.InDelta(t, 7.5, res.groupHours, 1e-9)

	// Daily rate: raw hours x tariff x workers, no surcharges, no rest pay.
	assert.InDelta(t, 8*20000*2, res.billingTotal, 1e-6)
	assert.InDelta(t, 8*10000*2, res.paysheetTotal, 1e-6)
	assert.Zero(t, res.paysheetComp.Amount)
}

func TestComputeQuantity(t *testing.T) {
	g := hourlyGroup()
	g.UnitOfMeasure = "TONNES"
	g.FacturationTariff = 50
	g.PaysheetTariff = 30

	amount := 100.0
	in := billing.GroupBillInput{GroupID: "g1", Amount: &amount}

	res := computeQuantity(g, in, nil)

	assert.Equal(t, ModeQuantity, res.mode)
	assert.True(t, res.monetaryRate)
	assert.InDelta(t, 100, res.amount, 1e-9)
	assert.InDelta(t, 5000, res.billingTotal, 1e-9)
	assert.InDelta(t, 3000, res.paysheetTotal, 1e-9)
}

func TestComputeQuantity_FallbackAmount(t *testing.T) {
	g := hourlyGroup()
	g.UnitOfMeasure = "TONNES"
	g.FacturationTariff = 50
	g.PaysheetTariff = 30

	fallback := 40.0
	res := computeQuantity(g, billing.GroupBillInput{GroupID: "g1"}, &fallback)

	assert.InDelta(t, 2000, res.billingTotal, 1e-9)
	assert.InDelta(t, 1200, res.paysheetTotal, 1e-9)

	// No amount anywhere prices as zero, not NaN.
	res = computeQuantity(g, billing.GroupBillInput{GroupID: "g1"}, nil)
	assert.Zero(t, res.billingTotal)
	assert.Zero(t, res.paysheetTotal)
}

func TestComputeAlternative_GroupTariffFlatRate(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	g := hourlyGroup()
	g.AlternativePaidService = operation.FlagYes
	g.GroupTariff = operation.FlagYes
	g.PaysheetUnit = "TONNES"

	amount := 10.0
	in := eightOrdinaryHours()
	in.Amount = &amount

	res := computeAlternative(ctx, cal, g, in, nil, billing.StatusCompleted, operation.Operation{}, nil, false)

	assert.Equal(t, ModeAlternativeService, res.mode)
	assert.True(t, res.monetaryRate)
	// Flat group rate: duration x facturation tariff.
	assert.InDelta(t, 8*20000, res.billingTotal, 1e-6)
	// Paysheet falls through to the quantity branch.
	assert.InDelta(t, 10*10000, res.paysheetTotal, 1e-6)
}

func TestComputeAlternative_HourlyDelegation(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	g := hourlyGroup()
	g.AlternativePaidService = operation.FlagYes

	res := computeAlternative(ctx, cal, g, eightOrdinaryHours(), nil, billing.StatusCompleted, operation.Operation{}, nil, false)
	hr := computeHours(ctx, cal, g, eightOrdinaryHours(), nil, billing.StatusCompleted)

	assert.InDelta(t, hr.billingTotal, res.billingTotal, 1e-9)
	assert.InDelta(t, hr.paysheetTotal, res.paysheetTotal, 1e-9)
}

func TestComputeAlternative_UpdateRecomputesCompensationAgainstPaysheetTariff(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	g := hourlyGroup()
	g.AlternativePaidService = operation.FlagYes
	g.CompensatoryTariff = operation.FlagYes

	createRes := computeAlternative(ctx, cal, g, eightOrdinaryHours(), nil, billing.StatusCompleted, operation.Operation{}, nil, false)
	updateRes := computeAlternative(ctx, cal, g, eightOrdinaryHours(), nil, billing.StatusCompleted, operation.Operation{}, nil, true)

	// Create keeps the facturation-tariff figure; update swaps in the
	// paysheet-tariff figure.
	compHours := 44.0 / 36.0
	diff := compHours*2*20000 - compHours*2*10000
	assert.InDelta(t, createRes.billingTotal-diff, updateRes.billingTotal, 1e-2)
	assert.InDelta(t, compHours*2*10000, updateRes.billingComp.Amount, 1e-2)
}

func TestComputeAlternative_JornalDelegation(t *testing.T) {
	ctx := context.Background()
	cal := NewCalendarPolicy(newFakeSettingRepo(nil))

	g := hourlyGroup()
	g.AlternativePaidService = operation.FlagYes
	g.FacturationUnit = operation.UnitJornal
	g.PaysheetUnit = operation.UnitJornal
	g.AgreedHours = 8

	op := operation.Operation{StartsAt: date(2025, time.March, 10), EndsAt: date(2025, time.March, 11)}

	res := computeAlternative(ctx, cal, g, eightOrdinaryHours(), nil, billing.StatusCompleted, op, nil, false)

	assert.InDelta(t, 8*20000*2, res.billingTotal, 1e-6)
	assert.InDelta(t, 8*10000*2, res.paysheetTotal, 1e-6)
}

func TestResolveDuration(t *testing.T) {
	dist := billing.HoursDistribution{OrdinaryDay: 5, OrdinaryNight: 1, ExtraDay: 2}

	override := 9.0
	recorded := 7.0

	assert.InDelta(t, 9, resolveDuration(&override, &recorded, dist), 1e-9)
	assert.InDelta(t, 7, resolveDuration(nil, &recorded, dist), 1e-9)

	zero := 0.0
	// A zero recorded figure is unset, the distribution wins.
	assert.InDelta(t, 6, resolveDuration(nil, &zero, dist), 1e-9)
	assert.InDelta(t, 6, resolveDuration(nil, nil, dist), 1e-9)
}
