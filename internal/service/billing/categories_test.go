package billing

import (
	"testing"

	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
	"github.com/stretchr/testify/assert"
)

func TestMultiplier_OrderingInvariant(t *testing.T) {
	// Ordinary < extra < holiday-ordinary < holiday-extra, on both series.
	day := []Category{CategoryHOD, CategoryHED, CategoryHFOD, CategoryHFED}
	night := []Category{CategoryHON, CategoryHEN, CategoryHFON, CategoryHFEN}

	for _, series := range [][]Category{day, night} {
		for i := 1; i < len(series); i++ {
			assert.Greater(t, Multiplier(series[i]), Multiplier(series[i-1]),
				"%s must outprice %s", series[i], series[i-1])
		}
	}

	// Night always outprices its day counterpart.
	for i := range day {
		assert.Greater(t, Multiplier(night[i]), Multiplier(day[i]))
	}
}

func TestBaseCalculation(t *testing.T) {
	d := billing.HoursDistribution{OrdinaryDay: 6, ExtraNight: 2}

	calc := BaseCalculation(d, 100)

	assert.Len(t, calc.Categories, 8)
	assert.InDelta(t, 8, calc.TotalHours, 1e-9)
	// 6 x 1.00 x 100 + 2 x 1.75 x 100
	assert.InDelta(t, 950, calc.TotalAmount, 1e-9)

	for _, c := range calc.Categories {
		assert.InDelta(t, c.Hours*c.Multiplier*100, c.Amount, 1e-9)
	}
}

func TestBaseCalculation_EmptyDistribution(t *testing.T) {
	calc := BaseCalculation(billing.HoursDistribution{}, 500)
	assert.Zero(t, calc.TotalHours)
	assert.Zero(t, calc.TotalAmount)
}

func TestFullTariffCalculation_BypassesMultipliers(t *testing.T) {
	d := billing.HoursDistribution{OrdinaryDay: 4, HolidayExtraNight: 4}

	calc := FullTariffCalculation(d, 100, 3)

	// tariff x raw hours x workers, no surcharges
	assert.InDelta(t, 100*8*3, calc.TotalAmount, 1e-9)
	// breakdown still reports per-category figures
	assert.Len(t, calc.Categories, 8)
	assert.InDelta(t, 8, calc.TotalHours, 1e-9)
}
