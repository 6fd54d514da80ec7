// SPDX-License-Identifier: MIT
// Package: fluentforge/facade
//
// facets.go — the facet sub-builders.
//
// Each facet holds only the umbrella pointer; every setter mutates the shared
// Listing and returns the facet itself (facet-local fluency), and Done()
// returns the umbrella so a chain can switch facets mid-sentence:
//
//	l := facade.New().
//		Details().Named("Mustang").Done().
//		Pricing().InCurrency(core.USD).Costing(38_500).Done().
//		Listing()

package facade

import "github.com/katalvlaran/fluentforge/core"

// DetailsFacet groups the descriptive setters: Name, Description, Tags.
type DetailsFacet struct {
	b *Builder
}

// Named sets the listing headline.
func (f *DetailsFacet) Named(name string) *DetailsFacet {
	f.b.listing.Name = name
	return f
}

// Describe sets the free-form description.
func (f *DetailsFacet) Describe(text string) *DetailsFacet {
	f.b.listing.Description = text
	return f
}

// Tagged appends tags in the given order. Repeated calls accumulate; the
// sequence stays in call order. Complexity: O(len(tags)) amortized.
func (f *DetailsFacet) Tagged(tags ...string) *DetailsFacet {
	f.b.listing.Tags = append(f.b.listing.Tags, tags...)
	return f
}

// Done returns the umbrella for switching facets or taking a snapshot.
func (f *DetailsFacet) Done() *Builder { return f.b }

// PricingFacet groups the pricing setters: Currency and as-given Price.
type PricingFacet struct {
	b *Builder
}

// InCurrency sets the asking-price currency.
func (f *PricingFacet) InCurrency(c core.Currency) *PricingFacet {
	f.b.listing.Currency = c
	return f
}

// Costing sets the asking price exactly as supplied — facets are independent,
// so no currency conversion is applied here.
func (f *PricingFacet) Costing(price float64) *PricingFacet {
	f.b.listing.Price = price
	return f
}

// Done returns the umbrella for switching facets or taking a snapshot.
func (f *PricingFacet) Done() *Builder { return f.b }
