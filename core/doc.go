// Package core defines the target value records assembled by the construction
// packages (chain, staged, facade), together with their typed attribute enums
// and pure human-readable renderings.
//
// Records are plain data: exported fields, no behavior beyond String(), and no
// enforcement of any kind — construction rules (call fluency, step ordering,
// facet grouping) live entirely in the builder packages. Unset scalar fields
// keep their Go zero value; unset ordered-sequence fields are empty slices,
// never nil (see NewListing).
//
// Ownership contract: a record is owned by exactly one builder while it is
// being assembled and is handed to the caller by value when construction
// finishes; after that no builder operation can reach it.
package core
