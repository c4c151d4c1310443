// internal/engine/tier_test.go
package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		name      string
		weightage string
		expected  string
	}{
		{"zero lands in first band", "0", "Tier 1"},
		{"interior of first band", "42", "Tier 1"},
		{"upper bound inclusive", "60", "Tier 1"},
		{"fraction floors into lower band", "60.9", "Tier 1"},
		{"lower bound of second band", "61", "Tier 2"},
		{"fraction just past a boundary", "100.5", "Tier 2"},
		{"last band is open ended", "5000", "Tier 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := decimal.NewFromString(tt.weightage)
			require.NoError(t, err)
			band, err := ClassifyTier(testTiers(), w)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, band.Name)
		})
	}
}

func TestClassifyTier_NoCoveringBand(t *testing.T) {
	table := &models.TierTable{Bands: []models.TierBand{
		{Name: "Tier 1", MinWeightage: 0, MaxWeightage: 10, EffortMultiplier: dec(1)},
	}}

	_, err := ClassifyTier(table, dec(11))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInconsistent))
}
