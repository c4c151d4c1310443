// internal/models/taxonomy.go
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Numeric fields go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ScopingItem is one selectable node of the intake form. Items nest one level
// or more via SubItems; a sub-item only counts when its parent is selected.
type ScopingItem struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	HasCount    bool            `json:"has_count"`
	Weight      decimal.Decimal `json:"weight"`
	CountWeight decimal.Decimal `json:"count_weight"`
	SubItems    []ScopingItem   `json:"sub_items,omitempty"`
}

// Section groups items under a form heading such as "Dimensions".
type Section struct {
	Title string        `json:"title"`
	Items []ScopingItem `json:"items"`
}

// Taxonomy is the admin-owned scoping item tree plus the explicit mapping
// from section titles to effort-template category names. Sections whose title
// already equals a category name need no alias entry.
type Taxonomy struct {
	Sections       []Section         `json:"sections"`
	SectionAliases map[string]string `json:"section_aliases,omitempty"`
}

// CategoryFor resolves a section title to its effort category name.
func (t *Taxonomy) CategoryFor(sectionTitle string) string {
	if alias, ok := t.SectionAliases[sectionTitle]; ok {
		return alias
	}
	return sectionTitle
}

// Validate checks item-id uniqueness and weight non-negativity.
func (t *Taxonomy) Validate() error {
	if len(t.Sections) == 0 {
		return fmt.Errorf("taxonomy has no sections")
	}
	seen := make(map[string]bool)
	var walk func(sectionTitle string, items []ScopingItem) error
	walk = func(sectionTitle string, items []ScopingItem) error {
		for _, it := range items {
			if it.ID == "" {
				return fmt.Errorf("section %q contains an item without an id", sectionTitle)
			}
			if seen[it.ID] {
				return fmt.Errorf("duplicate item id %q", it.ID)
			}
			seen[it.ID] = true
			if it.Weight.IsNegative() {
				return fmt.Errorf("item %q has negative weight", it.ID)
			}
			if it.CountWeight.IsNegative() {
				return fmt.Errorf("item %q has negative count weight", it.ID)
			}
			if err := walk(sectionTitle, it.SubItems); err != nil {
				return err
			}
		}
		return nil
	}
	for _, s := range t.Sections {
		if s.Title == "" {
			return fmt.Errorf("taxonomy contains a section without a title")
		}
		if err := walk(s.Title, s.Items); err != nil {
			return err
		}
	}
	return nil
}
