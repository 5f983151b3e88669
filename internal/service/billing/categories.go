package billing

import (
	"github.com/harborops/stevedoring-backend-go/internal/domain/billing"
)

// Category codes for the eight hour buckets.
type Category string

const (
	CategoryHOD  Category = "HOD"  // ordinary day
	CategoryHON  Category = "HON"  // ordinary night
	CategoryHED  Category = "HED"  // extra day
	CategoryHEN  Category = "HEN"  // extra night
	CategoryHFOD Category = "HFOD" // holiday ordinary day
	CategoryHFON Category = "HFON" // holiday ordinary night
	CategoryHFED Category = "HFED" // holiday extra day
	CategoryHFEN Category = "HFEN" // holiday extra night
)

// Categories lists the buckets in tariff-sheet order.
var Categories = []Category{
	CategoryHOD, CategoryHON, CategoryHED, CategoryHEN,
	CategoryHFOD, CategoryHFON, CategoryHFED, CategoryHFEN,
}

// multipliers is the closed, versionless surcharge table shared by the
// facturation and paysheet sides. Ordinary < extra < holiday-ordinary <
// holiday-extra on both the day and night series.
var multipliers = map[Category]float64{
	CategoryHOD:  1.00,
	CategoryHON:  1.35,
	CategoryHED:  1.25,
	CategoryHEN:  1.75,
	CategoryHFOD: 1.75,
	CategoryHFON: 2.10,
	CategoryHFED: 2.00,
	CategoryHFEN: 2.50,
}

// Multiplier returns the fixed surcharge factor for a category.
func Multiplier(c Category) float64 {
	return multipliers[c]
}

// CategoryAmount is one priced bucket of a calculation.
type CategoryAmount struct {
	Category   Category
	Hours      float64
	Multiplier float64
	Amount     float64
}

// Calculation is the result of pricing a distribution against a tariff.
type Calculation struct {
	Categories  []CategoryAmount
	TotalHours  float64
	TotalAmount float64
}

func categoryHours(d billing.HoursDistribution, c Category) float64 {
	switch c {
	case CategoryHOD:
		return d.OrdinaryDay
	case CategoryHON:
		return d.OrdinaryNight
	case CategoryHED:
		return d.ExtraDay
	case CategoryHEN:
		return d.ExtraNight
	case CategoryHFOD:
		return d.HolidayOrdinaryDay
	case CategoryHFON:
		return d.HolidayOrdinaryNight
	case CategoryHFED:
		return d.HolidayExtraDay
	case CategoryHFEN:
		return d.HolidayExtraNight
	}
	return 0
}

// BaseCalculation prices a distribution: per category hours x multiplier x
// tariff, plus the hour and amount totals.
func BaseCalculation(d billing.HoursDistribution, tariff float64) Calculation {
	calc := Calculation{Categories: make([]CategoryAmount, 0, len(Categories))}
	for _, c := range Categories {
		hours := safeNum(categoryHours(d, c), string(c)+".hours")
		amount := safeNum(hours*Multiplier(c)*tariff, string(c)+".amount")
		calc.Categories = append(calc.Categories, CategoryAmount{
			Category:   c,
			Hours:      hours,
			Multiplier: Multiplier(c),
			Amount:     amount,
		})
		calc.TotalHours += hours
		calc.TotalAmount += amount
	}
	calc.TotalAmount = safeNum(calc.TotalAmount, "calculation.total_amount")
	return calc
}

// FullTariffCalculation is the flat-rate escape hatch: tariff x raw hours x
// worker count, bypassing category multipliers entirely.
func FullTariffCalculation(d billing.HoursDistribution, tariff float64, workerCount int) Calculation {
	calc := BaseCalculation(d, tariff)
	calc.TotalAmount = safeNum(tariff*d.Total()*float64(workerCount), "full_tariff.total_amount")
	return calc
}
