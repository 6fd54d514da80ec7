// SPDX-License-Identifier: MIT
// Package: fluentforge/staged
//
// options.go — functional options for staged construction.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs; the step
//     operations themselves never fail at runtime.
//   - No hidden globals; everything flows through the resolved config.

package staged

import (
	"math"

	"github.com/katalvlaran/fluentforge/core"
)

// Option customizes a staged chain by mutating its config before the first
// step runs. Applying N options costs O(N) time.
type Option func(*config)

// config holds the knobs resolved once by New; frozen afterwards.
type config struct {
	// rates is this chain's conversion table (starts as a copy of defaults).
	rates RateTable
}

// newConfig builds a config with deterministic defaults and applies options
// in order (last-wins). Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	// Copy the defaults so per-chain overrides never leak across chains.
	cfg := config{rates: DefaultRates()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRate overrides (or adds) the conversion factor for one currency.
// Panics on an empty currency or a non-positive/non-finite factor — a factor
// that zeroes, negates, or blows up every price is a programmer error.
// Complexity: O(1).
func WithRate(c core.Currency, factor float64) Option {
	if c == "" {
		// Fail fast: an unnamed currency can never be selected by PricedIn.
		panic(`staged: WithRate("")`)
	}
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		panic("staged: WithRate(factor must be positive and finite)")
	}
	return func(cfg *config) {
		cfg.rates[c] = factor
	}
}

// WithRates replaces the whole table for this chain. The table is copied;
// later caller mutations of rt do not reach the chain. Panics on a nil table
// or any invalid entry. Currencies absent from rt still resolve through the
// default table (see RateTable.Factor). Complexity: O(len(rt)).
func WithRates(rt RateTable) Option {
	if rt == nil {
		panic("staged: WithRates(nil)")
	}
	cp := make(RateTable, len(rt))
	for c, f := range rt {
		if c == "" {
			panic(`staged: WithRates(table contains "")`)
		}
		if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			panic("staged: WithRates(factor must be positive and finite)")
		}
		cp[c] = f
	}
	return func(cfg *config) {
		cfg.rates = cp
	}
}
