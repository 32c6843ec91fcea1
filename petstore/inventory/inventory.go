// Package inventory refers to petstore types from a second package.
package inventory

import "model-resolver/petstore"

// Stock counts the pets of one category on hand.
type Stock struct {
	Category petstore.Category `json:"category"`
	Count    int               `json:"count"`
	Sample   *petstore.Pet     `json:"sample,omitempty"`
}

// Shelf is where stock is kept.
type Shelf struct {
	Aisle string  `json:"aisle"`
	Stock []Stock `json:"stock"`
}
