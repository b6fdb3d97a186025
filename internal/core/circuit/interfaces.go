// Package circuit implements the dataflow core of the game: boolean
// sources (buttons, gates), sinks (LEDs), directed wires between them,
// and the Board that owns a level's graph and keeps rendered state in
// step with logical state each frame.
//
// Evaluation is lazy and recursive: a gate pulls fresh values from its
// operands on every query, so no topological ordering is needed. The
// Board rejects any wiring that would close a cycle, which keeps the
// recursion bounded.
package circuit

import "github.com/circuitplay/circuitplay/pkg/geom"

// Source is anything exposing a current boolean value: a button or a
// gate. Result must be free of side effects on the logical state.
type Source interface {
	ID() string
	Result() bool
}

// Placed is implemented by components with a screen-space footprint.
// Wire endpoints and hit tests are derived from it.
type Placed interface {
	Bounds() geom.Rect
}
