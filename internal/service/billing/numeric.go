package billing

import (
	"log/slog"
	"math"
)

// safeNum coerces NaN/Inf to 0 with a diagnostic record. An invoice must
// always produce a number, so anomalies are logged, never propagated.
func safeNum(v float64, field string) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		slog.Warn("non-numeric intermediate coerced to zero", "field", field, "value", v)
		return 0
	}
	return v
}

// safeDiv guards every division against a zero or non-numeric denominator.
func safeDiv(a, b float64, field string) float64 {
	if b == 0 {
		slog.Warn("division by zero coerced to zero", "field", field)
		return 0
	}
	return safeNum(a/b, field)
}
