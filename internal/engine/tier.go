// internal/engine/tier.go
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

// ClassifyTier maps a weightage to its band. Bands hold inclusive integer
// bounds, so the lookup floors the weightage first: W=60.5 still lands in a
// band whose max is 60.
func ClassifyTier(table *models.TierTable, w decimal.Decimal) (*models.TierBand, error) {
	floored := w.Floor().IntPart()
	for i := range table.Bands {
		b := &table.Bands[i]
		if floored >= b.MinWeightage && floored <= b.MaxWeightage {
			return b, nil
		}
	}
	return nil, errors.NewInconsistent(
		"tier classification failed",
		fmt.Errorf("no band covers weightage %s (floor %d)", w.String(), floored),
	)
}
