package core

import (
	"fmt"
	"strings"
)

// Listing is the record assembled by the facade mechanism.
//
// Facets mutate disjoint field groups: Details (Name, Description, Tags) and
// Pricing (Currency, Price). Fields are fully independent — Price is stored
// exactly as supplied, with no currency coupling.
type Listing struct {
	// Name is the listing headline (e.g. "Mustang").
	Name string

	// Description is free-form listing text.
	Description string

	// Tags is the ordered sequence of listing tags.
	// Invariant (established by NewListing): never nil, empty when unset.
	Tags []string

	// Currency is the asking-price currency.
	Currency Currency

	// Price is the asking price, stored as given.
	Price float64
}

// NewListing returns an empty Listing with the Tags invariant established:
// the sequence attribute defaults to an empty slice, never a nil one.
// Complexity: O(1).
func NewListing() Listing {
	return Listing{Tags: []string{}}
}

// String renders the current field values for logs and tests.
// Pure: reads fields only, mutates nothing. Complexity: O(len(Tags)).
func (l Listing) String() string {
	return fmt.Sprintf("Listing{Name:%q Desc:%q Tags:[%s] Currency:%q Price:%.2f}",
		l.Name, l.Description, strings.Join(l.Tags, ","), l.Currency, l.Price)
}
