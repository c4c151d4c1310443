// internal/models/template.go
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EffortCategory is one row of the effort template: a named bucket of
// baseline hours broken down into subtasks.
type EffortCategory struct {
	Name          string                     `json:"name"`
	BaselineHours decimal.Decimal            `json:"baseline_hours"`
	Subtasks      map[string]decimal.Decimal `json:"subtasks,omitempty"`
}

// EffectiveBaseline returns the category baseline. When subtasks are present
// their sum is authoritative; the stored baseline may have drifted.
func (c *EffortCategory) EffectiveBaseline() decimal.Decimal {
	if len(c.Subtasks) == 0 {
		return c.BaselineHours
	}
	sum := decimal.Zero
	for _, h := range c.Subtasks {
		sum = sum.Add(h)
	}
	return sum
}

// EffortTemplate is the ordered list of effort categories.
type EffortTemplate struct {
	Categories []EffortCategory `json:"categories"`
}

// Category returns the named category, or nil.
func (t *EffortTemplate) Category(name string) *EffortCategory {
	for i := range t.Categories {
		if t.Categories[i].Name == name {
			return &t.Categories[i]
		}
	}
	return nil
}

// Validate rejects duplicate category names and negative hours.
func (t *EffortTemplate) Validate() error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("effort template has no categories")
	}
	seen := make(map[string]bool)
	for _, c := range t.Categories {
		if c.Name == "" {
			return fmt.Errorf("effort template contains a category without a name")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate category name %q", c.Name)
		}
		seen[c.Name] = true
		if c.BaselineHours.IsNegative() {
			return fmt.Errorf("category %q has negative baseline hours", c.Name)
		}
		for task, h := range c.Subtasks {
			if h.IsNegative() {
				return fmt.Errorf("subtask %q of category %q has negative hours", task, c.Name)
			}
		}
	}
	return nil
}
