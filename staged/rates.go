// SPDX-License-Identifier: MIT
// Package: fluentforge/staged
//
// rates.go — the explicit currency→factor conversion table and its defaults.
//
// Determinism policy:
//   - The shipped factors are documented illustrative constants, not a live
//     exchange-rate feed; callers override them via WithRate/WithRates.
//   - Lookup never fails: an unknown currency resolves through the default
//     table and finally to IdentityFactor, keeping Costing error-free.

package staged

import "github.com/katalvlaran/fluentforge/core"

// Documented default conversion factors (named, no magic numbers).
const (
	// USDFactor is the default multiplier for core.USD.
	USDFactor = 1.0
	// EURFactor is the default multiplier for core.EUR.
	EURFactor = 1.54
	// GBPFactor is the default multiplier for core.GBP.
	GBPFactor = 1.28
	// IdentityFactor is the terminal fallback for a currency present in
	// neither the caller's table nor the default one.
	IdentityFactor = 1.0
)

// RateTable maps a currency to its positive, finite conversion factor.
type RateTable map[core.Currency]float64

// defaultRates is the canonical table; never exposed directly (callers get a
// copy via DefaultRates, config resolution copies it too).
var defaultRates = RateTable{
	core.USD: USDFactor,
	core.EUR: EURFactor,
	core.GBP: GBPFactor,
}

// DefaultRates returns a fresh copy of the documented default table.
// Mutating the copy never affects other chains. Complexity: O(1) (3 entries).
func DefaultRates() RateTable {
	cp := make(RateTable, len(defaultRates))
	for c, f := range defaultRates {
		cp[c] = f
	}
	return cp
}

// Factor resolves the multiplier for c: the receiver's entry if present, else
// the default table's, else IdentityFactor. Deterministic, never fails.
// Complexity: O(1).
func (rt RateTable) Factor(c core.Currency) float64 {
	if f, ok := rt[c]; ok {
		return f
	}
	if f, ok := defaultRates[c]; ok {
		return f
	}
	return IdentityFactor
}
