// internal/engine/helpers_test.go
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func yes() models.ItemResponse {
	v := models.AnswerYes
	return models.ItemResponse{Value: &v}
}

func yesCount(n int64) models.ItemResponse {
	v := models.AnswerYes
	return models.ItemResponse{Value: &v, Count: &n}
}

func no() models.ItemResponse {
	v := models.AnswerNo
	return models.ItemResponse{Value: &v}
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func testItem(id string, weight, countWeight float64, hasCount bool, sub ...models.ScopingItem) models.ScopingItem {
	return models.ScopingItem{
		ID:          id,
		Label:       id,
		HasCount:    hasCount,
		Weight:      dec(weight),
		CountWeight: dec(countWeight),
		SubItems:    sub,
	}
}

// testTaxonomy mirrors the shape of the seeded intake form at a small scale:
// two sections, one nested item, one counted item.
func testTaxonomy() *models.Taxonomy {
	return &models.Taxonomy{
		Sections: []models.Section{
			{Title: "Dimensions", Items: []models.ScopingItem{
				testItem("account", 4, 0.5, true,
					testItem("acc_alt_hier", 2, 1, true),
					testItem("rat_coa", 6, 0, false),
				),
				testItem("entity", 3, 0, false),
			}},
			{Title: "Integrations", Items: []models.ScopingItem{
				testItem("file_load", 5, 2, true),
			}},
		},
		SectionAliases: map[string]string{
			"Dimensions": "Build and Configure FCC",
		},
	}
}

func testTiers() *models.TierTable {
	return &models.TierTable{Bands: []models.TierBand{
		{Name: "Tier 1", MinWeightage: 0, MaxWeightage: 60, EffortMultiplier: dec(1.0)},
		{Name: "Tier 2", MinWeightage: 61, MaxWeightage: 100, EffortMultiplier: dec(1.1)},
		{Name: "Tier 3", MinWeightage: 101, MaxWeightage: 999999, EffortMultiplier: dec(1.25)},
	}}
}

func testTemplate() *models.EffortTemplate {
	return &models.EffortTemplate{Categories: []models.EffortCategory{
		{Name: "Build and Configure FCC", BaselineHours: dec(88)},
		{Name: "Integrations", BaselineHours: dec(80), Subtasks: map[string]decimal.Decimal{
			"Files Based Loads": dec(16),
			"Pipeline":          dec(16),
		}},
		{Name: "Design", BaselineHours: dec(26)},
	}}
}

func testRoles() []models.Role {
	return []models.Role{
		{ID: "pm_usa", RoleName: "PM USA", Location: "USA"},
		{ID: "app_lead_india", RoleName: "App Lead India", Location: "India"},
	}
}
