package models

import "sort"

// PriceTier is a price point within an event with its own stock count.
type PriceTier struct {
	Price       float64 `json:"price"`       // Unique within the parent event
	Stock       int64   `json:"stock"`       // Tickets available at this price
	OwnerUserID int64   `json:"ownerUserId"` // User that created the tier
}

// Event represents an event record in the events document
type Event struct {
	ID         int64       `json:"id"`         // Monotonic identifier, unique within the document
	Name       string      `json:"name"`       // Case-insensitively unique name
	PriceTiers []PriceTier `json:"priceTiers"` // Sorted ascending by price
}

// SortTiers orders the tiers of e ascending by price.
func (e *Event) SortTiers() {
	sort.SliceStable(e.PriceTiers, func(i, j int) bool {
		return e.PriceTiers[i].Price < e.PriceTiers[j].Price
	})
}

// Tier returns the tier with exactly the given price.
func (e *Event) Tier(price float64) (*PriceTier, bool) {
	for i := range e.PriceTiers {
		if e.PriceTiers[i].Price == price {
			return &e.PriceTiers[i], true
		}
	}
	return nil, false
}
