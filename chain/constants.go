// Package chain defines shared constants naming the canonical setter
// operations, used by tests and demos that report or permute call sequences.
package chain

const (
	// MethodProducedBy is the canonical name for the ProducedBy setter.
	MethodProducedBy = "ProducedBy"
	// MethodOfModel is the canonical name for the OfModel setter.
	MethodOfModel = "OfModel"
	// MethodProducedIn is the canonical name for the ProducedIn setter.
	MethodProducedIn = "ProducedIn"
	// MethodPainted is the canonical name for the Painted setter.
	MethodPainted = "Painted"
	// MethodOfType is the canonical name for the OfType setter.
	MethodOfType = "OfType"
	// MethodBuild is the canonical name for the terminal Build operation.
	MethodBuild = "Build"
)
