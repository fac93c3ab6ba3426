package catalog

import (
	"strings"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
)

// Provider answers read-only queries over a fixed dataset.
// Every method returns a fresh slice, so callers may modify results freely.
type Provider struct {
	categories []model.Category
	items      []model.CatalogItem
	byID       map[int]int
}

// NewProvider indexes the dataset. The dataset must not be modified afterwards.
func NewProvider(d *Dataset) *Provider {
	p := &Provider{
		categories: d.Categories,
		items:      d.Items,
		byID:       make(map[int]int, len(d.Items)),
	}
	for i, item := range d.Items {
		p.byID[item.ID] = i
	}
	return p
}

// ListAll returns every item in dataset order.
func (p *Provider) ListAll() []model.CatalogItem {
	return p.filter(func(model.CatalogItem) bool { return true })
}

// ListCategories returns every category in dataset order.
func (p *Provider) ListCategories() []model.Category {
	out := make([]model.Category, len(p.categories))
	copy(out, p.categories)
	return out
}

// GetByID returns the item with the given id.
func (p *Provider) GetByID(id int) (model.CatalogItem, bool) {
	i, ok := p.byID[id]
	if !ok {
		return model.CatalogItem{}, false
	}
	return p.items[i], true
}

// ListByCategory returns items whose category equals name exactly (case-sensitive).
func (p *Provider) ListByCategory(name string) []model.CatalogItem {
	return p.filter(func(item model.CatalogItem) bool { return item.Category == name })
}

// Search returns items whose name, description or category contains query, ignoring case.
func (p *Provider) Search(query string) []model.CatalogItem {
	q := strings.ToLower(query)
	return p.filter(func(item model.CatalogItem) bool {
		return strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.Category), q)
	})
}

// ListPopular returns items flagged as popular.
func (p *Provider) ListPopular() []model.CatalogItem {
	return p.filter(func(item model.CatalogItem) bool { return item.IsPopular })
}

// ListVegetarian returns items flagged as vegetarian.
func (p *Provider) ListVegetarian() []model.CatalogItem {
	return p.filter(func(item model.CatalogItem) bool { return item.IsVegetarian })
}

func (p *Provider) filter(keep func(model.CatalogItem) bool) []model.CatalogItem {
	out := []model.CatalogItem{}
	for _, item := range p.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
