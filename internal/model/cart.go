package model

import "time"

// CartLine is a catalogue item snapshot plus the quantity held in the cart.
type CartLine struct {
	CatalogItem
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// CloneLines returns a deep copy of the given lines.
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
