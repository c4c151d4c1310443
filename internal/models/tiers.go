// internal/models/tiers.go
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TierBand is one classification band over the weightage axis. Bounds are
// inclusive integers; the last band's max acts as an unbounded sentinel.
type TierBand struct {
	Name             string          `json:"tier_name"`
	MinWeightage     int64           `json:"min_weightage"`
	MaxWeightage     int64           `json:"max_weightage"`
	EffortMultiplier decimal.Decimal `json:"effort_multiplier"`
}

// TierTable is the ordered sequence of bands covering [0, +inf) contiguously.
type TierTable struct {
	Bands []TierBand `json:"bands"`
}

// Validate enforces ordering, contiguity and positive multipliers.
func (t *TierTable) Validate() error {
	if len(t.Bands) == 0 {
		return fmt.Errorf("tier table has no bands")
	}
	if t.Bands[0].MinWeightage != 0 {
		return fmt.Errorf("first band must start at 0, got %d", t.Bands[0].MinWeightage)
	}
	for i, b := range t.Bands {
		if b.Name == "" {
			return fmt.Errorf("band %d has no name", i)
		}
		if b.MaxWeightage < b.MinWeightage {
			return fmt.Errorf("band %q has max %d below min %d", b.Name, b.MaxWeightage, b.MinWeightage)
		}
		if !b.EffortMultiplier.IsPositive() {
			return fmt.Errorf("band %q has non-positive effort multiplier", b.Name)
		}
		if i > 0 && b.MinWeightage != t.Bands[i-1].MaxWeightage+1 {
			return fmt.Errorf("band %q starts at %d, expected %d to stay contiguous",
				b.Name, b.MinWeightage, t.Bands[i-1].MaxWeightage+1)
		}
	}
	return nil
}
