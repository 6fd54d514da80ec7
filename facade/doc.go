// Package facade implements the umbrella builder for core.Listing: one
// builder exposing named facet accessors, each facet mutating the same shared
// Listing and returning itself for facet-local fluency, with Done() hopping
// back to the umbrella.
//
// Facets are independent and commutative — no facet's field depends on
// another facet's, and Price is stored exactly as supplied (contrast with
// package staged, where the price/currency dependency is what forces step
// ordering). Consequently there is no terminal step: the Listing is valid at
// every point, and Listing() takes a pure snapshot of the current field state
// any number of times.
//
// The package offers:
//
//   - Builder:      the umbrella; New() starts one with the Tags invariant
//     established (empty, never nil).
//   - DetailsFacet: Named / Describe / Tagged (name, description, ordered tags).
//   - PricingFacet: InCurrency / Costing (currency, as-given price).
//   - Listing():    explicit, side-effect-free conversion to core.Listing —
//     a live view of calls made so far, not a frozen-at-creation copy.
//
// Guarantees:
//
//   - Facet call order never matters; repeated setters are last-write-wins
//     (Tagged appends, preserving tag order across calls).
//   - No runtime failure path: no operation can fail.
//   - Each Builder owns its own Listing; snapshots are value copies with
//     their own Tags backing array.
package facade
