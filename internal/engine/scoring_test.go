// internal/engine/scoring_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

func TestComputeWeightage(t *testing.T) {
	tests := []struct {
		name          string
		data          map[string]models.ItemResponse
		expectedTotal string
		expectedIn    int
		expectedOut   int
	}{
		{
			name:          "all NO",
			data:          map[string]models.ItemResponse{"account": no(), "entity": no(), "file_load": no()},
			expectedTotal: "0",
			expectedIn:    0,
			expectedOut:   5,
		},
		{
			name:          "nothing answered",
			data:          map[string]models.ItemResponse{},
			expectedTotal: "0",
			expectedIn:    0,
			expectedOut:   5,
		},
		{
			name:          "single counted leaf",
			data:          map[string]models.ItemResponse{"file_load": yesCount(3)},
			expectedTotal: "11", // 5 + 2x3
			expectedIn:    1,
			expectedOut:   4,
		},
		{
			name: "parent with count and nested sub-item",
			data: map[string]models.ItemResponse{
				"account":      yesCount(2),
				"acc_alt_hier": yesCount(1),
			},
			expectedTotal: "8", // account 4 + 0.5x2, alt hier 2 + 1x1
			expectedIn:    2,
			expectedOut:   3,
		},
		{
			name: "YES sub-item under NO parent contributes nothing",
			data: map[string]models.ItemResponse{
				"account":      no(),
				"acc_alt_hier": yes(),
				"rat_coa":      yes(),
				"entity":       yes(),
			},
			expectedTotal: "3",
			expectedIn:    1,
			expectedOut:   4, // account subtree (3) + file_load
		},
		{
			name: "count on item without has_count is ignored",
			data: map[string]models.ItemResponse{
				"entity": yesCount(10),
			},
			expectedTotal: "3",
			expectedIn:    1,
			expectedOut:   4,
		},
		{
			name: "YES counted item without count scores weight only",
			data: map[string]models.ItemResponse{
				"file_load": yes(),
			},
			expectedTotal: "5",
			expectedIn:    1,
			expectedOut:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ComputeWeightage(testTaxonomy(), tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, out.TotalWeightage.String())
			assert.Equal(t, tt.expectedIn, out.InScopeCount)
			assert.Equal(t, tt.expectedOut, out.OutOfScopeCount)
		})
	}
}

func TestComputeWeightage_NegativeCount(t *testing.T) {
	n := int64(-1)
	v := models.AnswerYes
	data := map[string]models.ItemResponse{
		"file_load": {Value: &v, Count: &n},
	}

	_, err := ComputeWeightage(testTaxonomy(), data)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidationFailed))
}

func TestComputeWeightage_MonotoneUnderAddedSelection(t *testing.T) {
	base := map[string]models.ItemResponse{"account": yes()}
	before, err := ComputeWeightage(testTaxonomy(), base)
	require.NoError(t, err)

	base["entity"] = yes()
	after, err := ComputeWeightage(testTaxonomy(), base)
	require.NoError(t, err)

	assert.True(t, after.TotalWeightage.GreaterThanOrEqual(before.TotalWeightage))
}
