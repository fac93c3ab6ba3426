package model

import "github.com/shopspring/decimal"

// Amounts are written as JSON numbers, matching the catalogue files and stored documents.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// CatalogItem represents a dish in the static food catalogue.
type CatalogItem struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Image        string          `json:"image"`
	Rating       float64         `json:"rating"`
	PrepTime     string          `json:"prepTime"`
	IsPopular    bool            `json:"isPopular"`
	IsVegetarian bool            `json:"isVegetarian"`
}

// Category represents a catalogue category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
