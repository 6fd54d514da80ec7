package core

import "fmt"

// Currency is a typed ISO-style currency code.
type Currency string

// Currencies understood by the default staged conversion table.
// A caller-supplied rate table may extend this set (see package staged).
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// Product is the record assembled by the staged mechanism.
//
// Price is the only dependent attribute in the library: the staged builder
// derives it from the base amount and the Currency chosen one step earlier.
// At this layer it is plain data like every other field.
type Product struct {
	// Name is the product name (e.g. "Porsche").
	Name string

	// Currency is the pricing currency chosen during construction.
	Currency Currency

	// Price is the converted price in Currency units.
	Price float64
}

// String renders the current field values for logs and tests.
// Pure: reads fields only, mutates nothing. Complexity: O(1).
func (p Product) String() string {
	return fmt.Sprintf("Product{Name:%q Currency:%q Price:%.2f}", p.Name, p.Currency, p.Price)
}
