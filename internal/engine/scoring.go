// internal/engine/scoring.go
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

// ScoreOutcome is the result of the weightage pass over the item tree.
type ScoreOutcome struct {
	TotalWeightage  decimal.Decimal
	InScopeCount    int
	OutOfScopeCount int
}

// ComputeWeightage walks the taxonomy depth-first and accumulates the
// weightage of every effectively selected item. Sub-items of an unselected
// parent contribute nothing even when the submission marks them YES.
func ComputeWeightage(tax *models.Taxonomy, data map[string]models.ItemResponse) (ScoreOutcome, error) {
	out := ScoreOutcome{TotalWeightage: decimal.Zero}

	var walk func(items []models.ScopingItem) error
	walk = func(items []models.ScopingItem) error {
		for _, item := range items {
			resp, answered := data[item.ID]
			if !answered || !resp.IsYes() {
				out.OutOfScopeCount += countItems(item)
				continue
			}

			out.InScopeCount++
			out.TotalWeightage = out.TotalWeightage.Add(item.Weight)

			if item.HasCount && resp.Count != nil {
				if *resp.Count < 0 {
					return errors.NewValidationFailedf("item %q has negative count %d", item.ID, *resp.Count)
				}
				contribution := item.CountWeight.Mul(decimal.NewFromInt(*resp.Count))
				out.TotalWeightage = out.TotalWeightage.Add(contribution)
			}

			if err := walk(item.SubItems); err != nil {
				return err
			}
		}
		return nil
	}

	for _, section := range tax.Sections {
		if err := walk(section.Items); err != nil {
			return ScoreOutcome{}, err
		}
	}
	return out, nil
}

// countItems counts an item and its whole subtree.
func countItems(item models.ScopingItem) int {
	n := 1
	for _, sub := range item.SubItems {
		n += countItems(sub)
	}
	return n
}
