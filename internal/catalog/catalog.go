package catalog

import (
	"context"
	"fmt"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
)

// Dataset is the static menu: categories plus the items that reference them.
type Dataset struct {
	Categories []model.Category    `json:"categories"`
	Items      []model.CatalogItem `json:"items"`
}

// Validate checks the dataset invariants: unique positive ids, non-negative prices,
// ratings within 0-5 and every item category declared.
func (d *Dataset) Validate() error {
	categories := make(map[string]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		if c.Name == "" {
			return fmt.Errorf("category %d: name is required", c.ID)
		}
		if _, dup := categories[c.Name]; dup {
			return fmt.Errorf("duplicate category %q", c.Name)
		}
		categories[c.Name] = struct{}{}
	}

	ids := make(map[int]struct{}, len(d.Items))
	for _, item := range d.Items {
		if item.ID <= 0 {
			return fmt.Errorf("item %q: id must be positive", item.Name)
		}
		if _, dup := ids[item.ID]; dup {
			return fmt.Errorf("duplicate item id %d", item.ID)
		}
		ids[item.ID] = struct{}{}

		if item.Price.IsNegative() {
			return fmt.Errorf("item %d: price must not be negative", item.ID)
		}
		if item.Rating < 0 || item.Rating > 5 {
			return fmt.Errorf("item %d: rating %.1f out of range", item.ID, item.Rating)
		}
		if _, ok := categories[item.Category]; !ok {
			return fmt.Errorf("item %d: unknown category %q", item.ID, item.Category)
		}
	}

	return nil
}

// Loader defines the interface for loading a catalogue dataset.
type Loader interface {
	// Load reads the dataset identified by path.
	Load(ctx context.Context, path string) (*Dataset, error)
}
