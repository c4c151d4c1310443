// internal/models/roles.go
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Role is one entry of the role catalog.
type Role struct {
	ID       string `json:"id"`
	RoleName string `json:"role_name"`
	Location string `json:"location,omitempty"`
}

// RoleCatalog is the full set of allocatable roles.
type RoleCatalog struct {
	Roles []Role `json:"roles"`
}

// ByName returns the role with the given display name, or nil.
func (c *RoleCatalog) ByName(name string) *Role {
	for i := range c.Roles {
		if c.Roles[i].RoleName == name {
			return &c.Roles[i]
		}
	}
	return nil
}

// ByID returns the role with the given id, or nil.
func (c *RoleCatalog) ByID(id string) *Role {
	for i := range c.Roles {
		if c.Roles[i].ID == id {
			return &c.Roles[i]
		}
	}
	return nil
}

// Validate enforces id and role-name uniqueness.
func (c *RoleCatalog) Validate() error {
	if len(c.Roles) == 0 {
		return fmt.Errorf("role catalog is empty")
	}
	names := make(map[string]bool)
	ids := make(map[string]bool)
	for _, r := range c.Roles {
		if r.ID == "" || r.RoleName == "" {
			return fmt.Errorf("role entries require both id and role_name")
		}
		if ids[r.ID] {
			return fmt.Errorf("duplicate role id %q", r.ID)
		}
		if names[r.RoleName] {
			return fmt.Errorf("duplicate role name %q", r.RoleName)
		}
		ids[r.ID] = true
		names[r.RoleName] = true
	}
	return nil
}

// AllocationMatrix maps (category name, role id) to the percentage of that
// category's effort the role would take if chosen alone. Percentages need not
// sum to 100 per category; the allocator renormalizes over the selected
// subset.
type AllocationMatrix struct {
	Allocations map[string]map[string]decimal.Decimal `json:"allocations"`
}

// Percent returns the allocation percent for a category/role pair; missing
// entries are zero.
func (m *AllocationMatrix) Percent(category, roleID string) decimal.Decimal {
	if row, ok := m.Allocations[category]; ok {
		if p, ok := row[roleID]; ok {
			return p
		}
	}
	return decimal.Zero
}

// Validate enforces the [0,100] range on every cell.
func (m *AllocationMatrix) Validate() error {
	if len(m.Allocations) == 0 {
		return fmt.Errorf("allocation matrix is empty")
	}
	hundred := decimal.NewFromInt(100)
	for category, row := range m.Allocations {
		for roleID, p := range row {
			if p.IsNegative() || p.GreaterThan(hundred) {
				return fmt.Errorf("allocation for category %q role %q is %s, outside [0,100]",
					category, roleID, p.String())
			}
		}
	}
	return nil
}
