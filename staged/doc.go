// Package staged implements the interface-per-step builder for core.Product:
// a construction-order state machine encoded in the static type of the handle
// the caller holds, so that an out-of-order call is a compile error, never a
// runtime fault.
//
// The machine has four states, each exposing exactly one operation:
//
//	NameStep     —  Named(name)        → CurrencyStep
//	CurrencyStep —  PricedIn(currency) → PriceStep
//	PriceStep    —  Costing(base)      → BuildStep   (applies base × factor(currency))
//	BuildStep    —  Build()            → core.Product (terminal, idempotent)
//
// The ordering is not ceremony: Costing converts the base amount using the
// factor of the currency chosen one step earlier, so currency MUST precede
// price. The compiler enforces exactly that — after Named the only callable
// operation is PricedIn, after PricedIn only Costing, and no step interface
// re-exposes a previous step's setter.
//
// No escape hatch: each step handle is a distinct unexported struct carrying
// only its own method. There is no exported concrete type to call directly,
// and a runtime type assertion on a mid-chain handle cannot surface a later
// step's method, because no handle's dynamic type has more than one.
//
// Conversion factors are explicit and caller-configurable (see RateTable,
// WithRate, WithRates); the shipped defaults are the documented illustrative
// constants USD ×1.0, EUR ×1.54, GBP ×1.28.
//
// Guarantees:
//
//   - No runtime error path: operations cannot fail; option constructors
//     validate their inputs and panic on meaningless values (fail fast at
//     configuration time, never mid-chain).
//   - Determinism: same calls and options ⇒ identical Product.
//   - Single ownership: each New() chain assembles its own Product; Build
//     hands it out by value.
package staged
