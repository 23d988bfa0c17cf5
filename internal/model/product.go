package model

// Product represents a row in the product catalog.
type Product struct {
	ID      int
	Name    string
	TeamOwn string // owning team, expected to be exactly one per product
}
