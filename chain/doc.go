// Package chain implements the self-referential builder layers for
// core.Vehicle: independent layers, each contributing a disjoint set of
// chainable setters, composed by embedding so that every setter — wherever in
// the hierarchy it is defined — returns the final, most-derived builder type.
//
// The mechanism is the Go rendering of F-bounded ("curiously recurring")
// builder inheritance: each layer is generic over S, the concrete builder at
// the bottom of the hierarchy, and every setter ends with `return l.self`
// where self has static type S. Calling a paint setter after an origin setter
// after a body setter therefore all type-check, and the handle in hand never
// narrows — the full method surface of every layer stays callable.
//
// The package offers the following key components:
//
//   - Base[S]:        owns the in-progress Vehicle and the S-typed self
//     reference; defines the single terminal Build.
//   - OriginLayer[S]: ProducedBy / OfModel / ProducedIn setters.
//   - PaintLayer[S]:  Painted setter.
//   - BodyLayer[S]:   OfType setter.
//   - Builder:        the concrete bottom type; New() wires self = &Builder.
//
// Guarantees:
//
//   - Commutativity: setters mutate independent fields, so any permutation of
//     calls yields the same finished Vehicle.
//   - Last-write-wins: repeating a setter is allowed; the later call sticks.
//   - No runtime failure path: setters cannot fail; an unset attribute keeps
//     its default in the finished value.
//   - Build returns the Vehicle by value (ownership leaves the builder); a
//     repeated Build on an untouched builder returns a field-equal copy.
//
// The hierarchy is open. To add a layer, embed the current bottom layer with
// your own S and use Target()/Self() from Base:
//
//	type TunedLayer[S any] struct{ chain.BodyLayer[S] }
//
//	func (l *TunedLayer[S]) TunedBy(shop string) S {
//		l.Target().Model += " (" + shop + ")"
//		return l.Self()
//	}
//
//	type TunedBuilder struct{ TunedLayer[*TunedBuilder] }
package chain
