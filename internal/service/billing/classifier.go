package billing

import (
	"github.com/harborops/stevedoring-backend-go/internal/domain/operation"
)

// GroupMode is the closed set of calculation modes. Every group maps to
// exactly one mode from its unit of measure, alternative-paid-service flag
// and facturation unit.
type GroupMode int

const (
	ModeJornal GroupMode = iota
	ModeHours
	ModeAlternativeService
	ModeQuantity
)

func (m GroupMode) String() string {
	switch m {
	case ModeJornal:
		return "JORNAL"
	case ModeHours:
		return "HOURS"
	case ModeAlternativeService:
		return "ALTERNATIVE_SERVICE"
	default:
		return "QUANTITY"
	}
}

// Classify routes a group to its calculation mode. The alternative-paid
// -service flag overrides the unit of measure; anything not matched by the
// first three rules falls to the quantity mode.
func Classify(g operation.GroupSummary) GroupMode {
	if g.AlternativePaidService == operation.FlagYes {
		return ModeAlternativeService
	}
	switch g.UnitOfMeasure {
	case operation.UnitJornal:
		return ModeJornal
	case operation.UnitHours:
		return ModeHours
	}
	return ModeQuantity
}

// Criteria filters group summaries by unit of measure and/or
// alternative-paid-service flag.
type Criteria struct {
	UnitOfMeasure          *string
	AlternativePaidService *operation.Flag
}

// FilterGroups returns the summaries matching the criteria, intersected with
// the group ids present in the current request. Order follows the summaries.
func FilterGroups(summaries []operation.GroupSummary, criteria Criteria, requested map[string]struct{}) []operation.GroupSummary {
	var out []operation.GroupSummary
	for _, g := range summaries {
		if criteria.UnitOfMeasure != nil && g.UnitOfMeasure != *criteria.UnitOfMeasure {
			continue
		}
		if criteria.AlternativePaidService != nil && g.AlternativePaidService != *criteria.AlternativePaidService {
			continue
		}
		if requested != nil {
			if _, ok := requested[g.GroupID]; !ok {
				continue
			}
		}
		out = append(out, g)
	}
	return out
}
