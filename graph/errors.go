package graph

import "errors"

// Diagnostics returned by Build. The set is closed: Build either returns
// a complete Renderer or no Renderer. The validation diagnostics are
// wrapped with fmt.Errorf("%w", ...) for context (pass/attachment
// names); ErrCyclicalGraph is returned as is.
var (
	// ErrNonDepthFormatInDepthSlot is returned when a depth input or
	// output references an attachment whose format is not a depth format.
	ErrNonDepthFormatInDepthSlot = errors.New("render graph: non-depth format in depth slot")

	// ErrPassNameCollision is returned when two passes share a name.
	ErrPassNameCollision = errors.New("render graph: pass name collision")

	// ErrCyclicalGraph is returned when dependency edges form a cycle.
	ErrCyclicalGraph = errors.New("render graph: cyclical graph")
)
