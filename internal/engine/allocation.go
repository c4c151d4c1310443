// internal/engine/allocation.go
package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

const allocationScale = 6

// AllocateFTE distributes each category's hours across the selected roles,
// renormalizing the matrix percentages over the selected subset. A category
// with positive hours but zero summed allocation yields an UnallocatedHours
// warning and its hours stay undistributed.
func AllocateFTE(
	categories map[string]decimal.Decimal,
	matrix *models.AllocationMatrix,
	selected []models.Role,
) (models.FTEAllocation, []errors.Warning) {

	byRole := make(map[string]models.RoleAllocation, len(selected))
	totals := make(map[string]decimal.Decimal, len(selected))
	for _, r := range selected {
		totals[r.ID] = decimal.Zero
	}

	var warnings []errors.Warning

	// Category order does not change the math, but warnings come out in a
	// stable order.
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, category := range names {
		hours := categories[category]
		if !hours.IsPositive() {
			continue
		}

		sum := decimal.Zero
		for _, r := range selected {
			sum = sum.Add(matrix.Percent(category, r.ID))
		}

		if sum.IsZero() {
			warnings = append(warnings, errors.Warning{
				Kind:   errors.WarningUnallocatedHours,
				Detail: category,
			})
			continue
		}

		// The last role with a positive percentage takes the remainder so
		// the shares sum back to the category hours exactly, regardless of
		// how many roles the rounding error could otherwise accumulate over.
		last := -1
		for i, r := range selected {
			if matrix.Percent(category, r.ID).IsPositive() {
				last = i
			}
		}
		distributed := decimal.Zero
		for i, r := range selected {
			percent := matrix.Percent(category, r.ID)
			if !percent.IsPositive() {
				continue
			}
			var share decimal.Decimal
			if i == last {
				share = hours.Sub(distributed)
			} else {
				share = hours.Mul(percent).DivRound(sum, allocationScale)
				distributed = distributed.Add(share)
			}
			totals[r.ID] = totals[r.ID].Add(share)
		}
	}

	totalHours := decimal.Zero
	for _, r := range selected {
		totalHours = totalHours.Add(totals[r.ID])
	}

	hundred := decimal.NewFromInt(100)
	for _, r := range selected {
		percent := decimal.Zero
		if totalHours.IsPositive() {
			percent = totals[r.ID].Mul(hundred).DivRound(totalHours, allocationScale).RoundBank(displayDigits)
		}
		byRole[r.ID] = models.RoleAllocation{
			Hours:          totals[r.ID],
			PercentOfTotal: percent,
		}
	}

	return models.FTEAllocation{ByRole: byRole, TotalHours: totalHours}, warnings
}
