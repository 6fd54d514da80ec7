// SPDX-License-Identifier: MIT
// Package: fluentforge/chain
//
// layers.go — the generic builder layers and their common base.
//
// Design contract (strict):
//   - One target: every layer mutates the single Vehicle owned by Base[S].
//   - Every setter returns S (the most-derived builder), never the layer type.
//   - Layers own disjoint field sets; no setter touches another layer's field.
//   - Setters never fail and never validate; enforcement is not this
//     mechanism's job (see package staged for ordering enforcement).
//
// AI-Hints (practical):
//   - Embed the deepest existing layer to extend the hierarchy; call Bind in
//     your factory with the concrete builder as self.
//   - Target()/Self() exist for external layers; inside this package the
//     unexported fields are used directly.
//   - Keep new setters single-field to preserve commutativity.

package chain

import "github.com/katalvlaran/fluentforge/core"

// Base is the root of the layer hierarchy. It owns the in-progress Vehicle
// and the self reference through which every setter returns the most-derived
// builder. S is the concrete builder type at the bottom of the hierarchy.
type Base[S any] struct {
	vehicle *core.Vehicle // the one record all layers mutate
	self    S             // the most-derived builder; returned by every setter
}

// Bind wires the layer stack to its target record and its concrete self.
// Factories (New here, or external extensions) MUST call Bind exactly once
// before the first setter. Complexity: O(1).
func (b *Base[S]) Bind(target *core.Vehicle, self S) {
	b.vehicle = target
	b.self = self
}

// Target exposes the in-progress Vehicle to external layer implementations.
// The chain mechanism provides fluency, not ordering enforcement, so direct
// field access by a layer is within contract. Complexity: O(1).
func (b *Base[S]) Target() *core.Vehicle { return b.vehicle }

// Self returns the S-typed self reference for external layers to end their
// setters with. Complexity: O(1).
func (b *Base[S]) Self() S { return b.self }

// Build is the single terminal operation, defined once for every layer stack.
// It returns the Vehicle by value: ownership transfers to the caller, and no
// later builder call can reach the returned copy. Calling Build again on an
// untouched builder yields a field-equal copy (idempotent read).
// Complexity: O(1).
func (b *Base[S]) Build() core.Vehicle { return *b.vehicle }

// OriginLayer contributes the manufacturing-origin setters.
type OriginLayer[S any] struct{ Base[S] }

// ProducedBy sets the manufacturer name and keeps the full chain open.
func (l *OriginLayer[S]) ProducedBy(manufacturer string) S {
	l.vehicle.Make = manufacturer
	return l.self
}

// OfModel sets the model name and keeps the full chain open.
func (l *OriginLayer[S]) OfModel(model string) S {
	l.vehicle.Model = model
	return l.self
}

// ProducedIn sets the production year and keeps the full chain open.
func (l *OriginLayer[S]) ProducedIn(year int) S {
	l.vehicle.Year = year
	return l.self
}

// PaintLayer contributes the paint setters on top of OriginLayer.
type PaintLayer[S any] struct{ OriginLayer[S] }

// Painted sets colour and finish together (one paint job, two attributes)
// and keeps the full chain open.
func (l *PaintLayer[S]) Painted(colour core.Colour, paint core.PaintType) S {
	l.vehicle.Colour = colour
	l.vehicle.PaintType = paint
	return l.self
}

// BodyLayer contributes the body-style setter on top of PaintLayer.
// It is the deepest layer shipped by the package; external hierarchies embed it.
type BodyLayer[S any] struct{ PaintLayer[S] }

// OfType sets the body style and keeps the full chain open.
func (l *BodyLayer[S]) OfType(t core.BodyType) S {
	l.vehicle.Type = t
	return l.self
}
