// internal/engine/effort.go
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

// Calendar constants. Changing either is a breaking wire change.
const (
	HoursPerDay   = 8
	DaysPerMonth  = 21
	summaryScale  = 6 // internal division precision
	displayDigits = 2
)

// InScopeCategories maps each effort category to whether any item in a
// section aliased to it is effectively selected. Parent gating makes this a
// top-level check: a gated YES sub-item implies a YES parent, and a YES
// sub-item under a NO parent contributes nothing.
func InScopeCategories(tax *models.Taxonomy, data map[string]models.ItemResponse) map[string]bool {
	inScope := make(map[string]bool)
	for _, section := range tax.Sections {
		for _, item := range section.Items {
			if resp, answered := data[item.ID]; answered && resp.IsYes() {
				inScope[tax.CategoryFor(section.Title)] = true
				break
			}
		}
	}
	return inScope
}

// ShapeEffort applies the tier multiplier to every in-scope category's
// baseline and rolls the hours up into calendar duration. Out-of-scope
// categories are present with zero hours so the result enumerates the whole
// template.
func ShapeEffort(tmpl *models.EffortTemplate, band *models.TierBand, inScope map[string]bool) models.EffortEstimation {
	categories := make(map[string]decimal.Decimal, len(tmpl.Categories))
	total := decimal.Zero

	for i := range tmpl.Categories {
		c := &tmpl.Categories[i]
		hours := decimal.Zero
		if inScope[c.Name] {
			hours = c.EffectiveBaseline().Mul(band.EffortMultiplier).RoundBank(displayDigits)
		}
		categories[c.Name] = hours
		total = total.Add(hours)
	}

	days := total.DivRound(decimal.NewFromInt(HoursPerDay), summaryScale)
	months := days.DivRound(decimal.NewFromInt(DaysPerMonth), summaryScale)

	return models.EffortEstimation{
		Categories: categories,
		Summary: models.EffortSummary{
			TotalHours:  total,
			TotalDays:   days.RoundBank(displayDigits),
			TotalMonths: months.RoundBank(displayDigits),
		},
	}
}
