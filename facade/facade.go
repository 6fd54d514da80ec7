// SPDX-License-Identifier: MIT
// Package: fluentforge/facade
//
// facade.go — the umbrella builder and its snapshot conversion.
//
// Design contract (strict):
//   - One shared Listing; every facet mutates it through the umbrella.
//   - Facet accessors are cheap and may be called repeatedly; each returns a
//     handle onto the same shared state.
//   - Listing() is pure: it copies current fields (Tags included) and leaves
//     the builder untouched, so it is invokable at any point, any number of
//     times, with no side effect.

package facade

import "github.com/katalvlaran/fluentforge/core"

// Builder is the umbrella: it owns one in-progress Listing and hands out
// facet sub-builders that all write into it.
type Builder struct {
	listing core.Listing
}

// New returns a fresh umbrella assembling a new Listing with its sequence
// invariant established (Tags empty, never nil). The factory takes no
// arguments; all attributes arrive via facets. Complexity: O(1).
func New() *Builder {
	return &Builder{listing: core.NewListing()}
}

// Details yields the facet for the descriptive field group.
// Complexity: O(1).
func (b *Builder) Details() *DetailsFacet { return &DetailsFacet{b: b} }

// Pricing yields the facet for the pricing field group.
// Complexity: O(1).
func (b *Builder) Pricing() *PricingFacet { return &PricingFacet{b: b} }

// Listing converts the current construction state to a finished Listing.
// It is the explicit stand-in for an implicit conversion operator: a pure,
// non-mutating read reflecting exactly the facet calls made so far. The Tags
// slice is copied, so neither later builder calls nor caller mutations alias
// each other. Complexity: O(len(Tags)).
func (b *Builder) Listing() core.Listing {
	out := b.listing
	// Detach the sequence attribute; the snapshot must not share backing
	// storage with the still-mutable builder state.
	out.Tags = append([]string{}, b.listing.Tags...)
	return out
}
