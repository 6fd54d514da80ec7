// Package core declares the Vehicle record and its attribute enums.
//
// This file declares Vehicle, Colour, PaintType, BodyType and the Vehicle
// rendering. All fields are independent; no field is computed from another.
package core

import "fmt"

// Colour is a typed paint colour name.
type Colour string

// Canonical colour values. The set is illustrative, not closed: any Colour
// value a caller supplies is stored verbatim.
const (
	Black  Colour = "Black"
	White  Colour = "White"
	Red    Colour = "Red"
	Blue   Colour = "Blue"
	Silver Colour = "Silver"
)

// PaintType is a typed paint finish name.
type PaintType string

// Canonical paint finish values.
const (
	Solid       PaintType = "Solid"
	Metallic    PaintType = "Metallic"
	Matte       PaintType = "Matte"
	Pearlescent PaintType = "Pearlescent"
)

// BodyType is a typed vehicle body style name.
type BodyType string

// Canonical body style values.
const (
	Sedan       BodyType = "Sedan"
	Coupe       BodyType = "Coupe"
	Hatchback   BodyType = "Hatchback"
	SUV         BodyType = "SUV"
	Convertible BodyType = "Convertible"
)

// Vehicle is the record assembled by the chain mechanism.
//
// Every attribute has an independent default: empty string / 0 for scalars,
// the zero enum value ("") for typed names. A Vehicle produced without a
// setter call for some field simply carries that default.
type Vehicle struct {
	// Make is the manufacturer name (e.g. "Ford").
	Make string

	// Model is the model name (e.g. "Mustang").
	Model string

	// Year is the production year; 0 means "not supplied".
	Year int

	// Colour is the paint colour.
	Colour Colour

	// PaintType is the paint finish.
	PaintType PaintType

	// Type is the body style.
	Type BodyType
}

// String renders the current field values for logs and tests.
// Pure: reads fields only, mutates nothing. Complexity: O(1).
func (v Vehicle) String() string {
	return fmt.Sprintf("Vehicle{Make:%q Model:%q Year:%d Colour:%q Paint:%q Type:%q}",
		v.Make, v.Model, v.Year, v.Colour, v.PaintType, v.Type)
}
