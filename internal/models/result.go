// internal/models/result.go
package models

import (
	"github.com/shopspring/decimal"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/common/errors"
)

// EffortSummary rolls category hours up into calendar duration.
type EffortSummary struct {
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalDays   decimal.Decimal `json:"total_days"`
	TotalMonths decimal.Decimal `json:"total_months"`
}

// EffortEstimation is the per-category hours plus the rolled-up summary.
type EffortEstimation struct {
	Categories map[string]decimal.Decimal `json:"categories"`
	Summary    EffortSummary              `json:"summary"`
}

// RoleAllocation is one role's share of the total effort.
type RoleAllocation struct {
	Hours          decimal.Decimal `json:"hours"`
	PercentOfTotal decimal.Decimal `json:"percent_of_total"`
}

// FTEAllocation distributes effort hours over the selected roles.
type FTEAllocation struct {
	ByRole     map[string]RoleAllocation `json:"by_role"`
	TotalHours decimal.Decimal           `json:"total_hours"`
}

// ScopeDefinition summarizes the classification outcome.
type ScopeDefinition struct {
	TierName        string          `json:"tier_name"`
	TierRange       [2]int64        `json:"tier_range"`
	TotalWeightage  decimal.Decimal `json:"total_weightage"`
	SelectedRoles   []string        `json:"selected_roles"`
	InScopeCount    int             `json:"in_scope_count"`
	OutOfScopeCount int             `json:"out_of_scope_count"`
}

// Result is the computed output of one submission. It is serialized exactly
// once, at submission time; persisted bytes are authoritative thereafter.
type Result struct {
	TotalWeightage   decimal.Decimal  `json:"total_weightage"`
	Tier             string           `json:"tier"`
	EffortEstimation EffortEstimation `json:"effort_estimation"`
	FTEAllocation    FTEAllocation    `json:"fte_allocation"`
	ScopeDefinition  ScopeDefinition  `json:"scope_definition"`
	Warnings         []errors.Warning `json:"warnings"`
}

// ConfigSnapshot is one consistent view of every configuration document. A
// single submit reads all five from the same snapshot.
type ConfigSnapshot struct {
	Version  int64
	Taxonomy *Taxonomy
	Template *EffortTemplate
	Tiers    *TierTable
	Roles    *RoleCatalog
	Matrix   *AllocationMatrix
}
