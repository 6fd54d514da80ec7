// SPDX-License-Identifier: MIT
// Package: fluentforge/staged
//
// steps.go — the step interfaces, their handle types, and the entry point.
//
// Design contract (strict):
//   - One interface per state; one operation per interface.
//   - Every operation's declared return type is the NEXT step interface —
//     never a concrete type, never an earlier interface.
//   - Handle types are unexported single-method structs sharing one assembly;
//     the dynamic type of a handle exposes nothing beyond its static type.
//   - Operations never fail; all validation lives in option constructors.
//
// AI-Hints (practical):
//   - To add an optional step, give its interface sibling operations that all
//     return the same next interface; keep one operation per required step.
//   - Extend the machine by inserting a new interface + handle pair between
//     two existing ones and re-pointing the predecessor's return type.

package staged

import "github.com/katalvlaran/fluentforge/core"

// NameStep is the initial state: the only legal operation supplies the name.
type NameStep interface {
	// Named sets the product name and advances to currency selection.
	Named(name string) CurrencyStep
}

// CurrencyStep is the state after naming: the only legal operation chooses
// the currency that the following price step converts by.
type CurrencyStep interface {
	// PricedIn sets the pricing currency and advances to price entry.
	PricedIn(c core.Currency) PriceStep
}

// PriceStep is the state after currency selection: the only legal operation
// supplies the base amount, converted immediately by the chosen currency's
// factor.
type PriceStep interface {
	// Costing sets Price = base × factor(currency) and advances to the
	// terminal state.
	Costing(base float64) BuildStep
}

// BuildStep is the terminal state: the only legal operation produces the
// finished Product.
type BuildStep interface {
	// Build returns the assembled Product by value. It mutates nothing;
	// calling it repeatedly returns field-equal results.
	Build() core.Product
}

// assembly is the single construction state shared by all step handles of one
// chain: the in-progress Product plus the frozen rate table. The current step
// is deliberately NOT stored here — it is encoded solely in the static type
// of the handle the caller holds.
type assembly struct {
	product core.Product
	rates   RateTable
}

// New starts a staged construction and returns the initial step.
// Options are resolved once, before the first step, into an immutable rate
// table (functional options, applied in order, last wins).
// Complexity: O(len(opts)).
func New(opts ...Option) NameStep {
	return nameStep{a: &assembly{rates: newConfig(opts...).rates}}
}

// nameStep is the handle for NameStep. One method, nothing else.
type nameStep struct{ a *assembly }

// Named implements NameStep.
func (s nameStep) Named(name string) CurrencyStep {
	s.a.product.Name = name
	return currencyStep{a: s.a}
}

// currencyStep is the handle for CurrencyStep.
type currencyStep struct{ a *assembly }

// PricedIn implements CurrencyStep.
func (s currencyStep) PricedIn(c core.Currency) PriceStep {
	s.a.product.Currency = c
	return priceStep{a: s.a}
}

// priceStep is the handle for PriceStep.
type priceStep struct{ a *assembly }

// Costing implements PriceStep. The conversion happens here, eagerly, which
// is exactly why the machine forbids calling Costing before PricedIn.
func (s priceStep) Costing(base float64) BuildStep {
	s.a.product.Price = base * s.a.rates.Factor(s.a.product.Currency)
	return buildStep{a: s.a}
}

// buildStep is the handle for BuildStep.
type buildStep struct{ a *assembly }

// Build implements BuildStep: a pure read of the assembled Product.
func (s buildStep) Build() core.Product { return s.a.product }
