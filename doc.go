// Package fluentforge is your in-memory toolbox for assembling values through
// chained, type-checked construction APIs — from free-order fluent layers to
// builders whose legal next call is enforced by the compiler.
//
// 🚀 What is fluentforge?
//
//	A small, zero-dependency library that brings together three construction
//	mechanisms over plain value records:
//		• Self-referential layers: independent builder layers composed by
//		  embedding, every setter returning the most-derived builder type
//		• Staged (typestate) builder: one interface per construction step,
//		  so an out-of-order call simply does not compile
//		• Facade with facets: named sub-builders sharing one target value,
//		  convertible to a snapshot at any point
//
// ✨ Why choose fluentforge?
//
//   - Misuse is a compile error – illegal call orders are unrepresentable,
//     never a runtime fault
//   - Deterministic – same calls, same finished value; no globals, no I/O
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – layers are exported; embed one to add your own setters
//
// Everything is organized under four subpackages:
//
//	core/   — the target value records (Vehicle, Product, Listing)
//	chain/  — self-referential generic builder layers
//	staged/ — interface-per-step builder with an explicit conversion table
//	facade/ — umbrella builder exposing facet sub-builders
//
// Quick taste (staged mechanism):
//
//	p := staged.New().
//		Named("Porsche").
//		PricedIn(core.EUR).
//		Costing(100_000).
//		Build()
//	// p.Price == 154000 — and Costing before PricedIn does not compile.
//
// See each subpackage's doc.go for detailed contracts and examples.
package fluentforge
