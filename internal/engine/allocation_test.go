// internal/engine/allocation_test.go
package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

func testMatrix() *models.AllocationMatrix {
	return &models.AllocationMatrix{Allocations: map[string]map[string]decimal.Decimal{
		"Build and Configure FCC": {
			"pm_usa":         dec(50),
			"app_lead_india": dec(100),
		},
		"Integrations": {
			"pm_usa": dec(50),
		},
	}}
}

func TestAllocateFTE_Renormalization(t *testing.T) {
	categories := map[string]decimal.Decimal{
		"Build and Configure FCC": dec(100),
	}

	fte, warnings := AllocateFTE(categories, testMatrix(), testRoles())

	require.Empty(t, warnings)
	// 50 and 100 renormalize to 1/3 and 2/3 of 100 hours.
	assert.Equal(t, "33.333333", fte.ByRole["pm_usa"].Hours.String())
	assert.Equal(t, "66.666667", fte.ByRole["app_lead_india"].Hours.String())
	assert.Equal(t, "100", fte.TotalHours.String())
	assert.Equal(t, "33.33", fte.ByRole["pm_usa"].PercentOfTotal.String())
	assert.Equal(t, "66.67", fte.ByRole["app_lead_india"].PercentOfTotal.String())
}

func TestAllocateFTE_SingleRoleTakesEverything(t *testing.T) {
	categories := map[string]decimal.Decimal{
		"Build and Configure FCC": dec(96.8),
	}
	selected := []models.Role{{ID: "app_lead_india", RoleName: "App Lead India"}}

	fte, warnings := AllocateFTE(categories, testMatrix(), selected)

	require.Empty(t, warnings)
	assert.Equal(t, "96.8", fte.ByRole["app_lead_india"].Hours.String())
	assert.Equal(t, "100", fte.ByRole["app_lead_india"].PercentOfTotal.String())
}

func TestAllocateFTE_ConservesHoursAcrossManyRoles(t *testing.T) {
	// Equal shares that do not divide evenly accumulate rounding error in
	// every role's slice; the allocated total must still equal the
	// category's hours exactly.
	hours := dec(10)
	categories := map[string]decimal.Decimal{
		"Build and Configure FCC": hours,
	}

	selected := make([]models.Role, 7)
	row := map[string]decimal.Decimal{}
	for i := range selected {
		id := string(rune('a' + i))
		selected[i] = models.Role{ID: id, RoleName: "Role " + id}
		row[id] = dec(10)
	}
	matrix := &models.AllocationMatrix{Allocations: map[string]map[string]decimal.Decimal{
		"Build and Configure FCC": row,
	}}

	fte, warnings := AllocateFTE(categories, matrix, selected)

	require.Empty(t, warnings)
	allocated := decimal.Zero
	for _, r := range selected {
		allocated = allocated.Add(fte.ByRole[r.ID].Hours)
	}
	assert.True(t, allocated.Equal(hours), "allocated %s, want %s", allocated, hours)
	assert.True(t, fte.TotalHours.Equal(hours))
}

func TestAllocateFTE_RemainderStaysWithAllocatedRoles(t *testing.T) {
	// A selected role with zero percent for the category must not pick up
	// the rounding remainder.
	categories := map[string]decimal.Decimal{
		"Integrations": dec(10),
	}
	selected := []models.Role{
		{ID: "pm_usa", RoleName: "Project Manager USA"},
		{ID: "app_lead_india", RoleName: "App Lead India"},
	}

	fte, warnings := AllocateFTE(categories, testMatrix(), selected)

	require.Empty(t, warnings)
	assert.Equal(t, "10", fte.ByRole["pm_usa"].Hours.String())
	assert.True(t, fte.ByRole["app_lead_india"].Hours.IsZero())
}

func TestAllocateFTE_UnallocatedHoursWarning(t *testing.T) {
	categories := map[string]decimal.Decimal{
		"Integrations": dec(80),
	}
	// The selected role has no allocation for Integrations.
	selected := []models.Role{{ID: "app_lead_india", RoleName: "App Lead India"}}

	fte, warnings := AllocateFTE(categories, testMatrix(), selected)

	require.Len(t, warnings, 1)
	assert.Equal(t, errors.WarningUnallocatedHours, warnings[0].Kind)
	assert.Equal(t, "Integrations", warnings[0].Detail)
	assert.True(t, fte.TotalHours.IsZero())
	assert.True(t, fte.ByRole["app_lead_india"].Hours.IsZero())
}

func TestAllocateFTE_ZeroHourCategoriesSkipped(t *testing.T) {
	categories := map[string]decimal.Decimal{
		"Build and Configure FCC": decimal.Zero,
		"Integrations":            decimal.Zero,
	}

	fte, warnings := AllocateFTE(categories, testMatrix(), testRoles())

	assert.Empty(t, warnings)
	assert.True(t, fte.TotalHours.IsZero())
	for _, r := range testRoles() {
		assert.True(t, fte.ByRole[r.ID].Hours.IsZero())
		assert.True(t, fte.ByRole[r.ID].PercentOfTotal.IsZero())
	}
}

func TestAllocateFTE_WarningsAreStableAcrossRuns(t *testing.T) {
	categories := map[string]decimal.Decimal{
		"Integrations":            dec(10),
		"Build and Configure FCC": dec(10),
	}
	matrix := &models.AllocationMatrix{Allocations: map[string]map[string]decimal.Decimal{}}

	for i := 0; i < 5; i++ {
		_, warnings := AllocateFTE(categories, matrix, testRoles())
		require.Len(t, warnings, 2)
		assert.Equal(t, "Build and Configure FCC", warnings[0].Detail)
		assert.Equal(t, "Integrations", warnings[1].Detail)
	}
}
