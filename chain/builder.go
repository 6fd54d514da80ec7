// SPDX-License-Identifier: MIT
// Package: fluentforge/chain
//
// builder.go — the concrete bottom builder and its factory.

package chain

import "github.com/katalvlaran/fluentforge/core"

// Builder is the concrete bottom of the shipped layer hierarchy: it inherits
// every setter of every layer above it, and — because every layer is
// instantiated with S = *Builder — every one of those setters returns
// *Builder. The exposed surface never narrows, whatever the call order.
type Builder struct {
	BodyLayer[*Builder]
}

// New returns a fresh Builder assembling a new empty Vehicle.
// The factory takes no arguments; all attributes are supplied by setters.
// Each Builder owns its own Vehicle — independent constructions never share
// state. Complexity: O(1).
func New() *Builder {
	b := &Builder{}
	// Tie the knot: the layers' self reference is the builder itself, so a
	// setter defined three layers up still hands back *Builder.
	b.Bind(&core.Vehicle{}, b)
	return b
}
