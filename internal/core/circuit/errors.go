package circuit

import "errors"

// Configuration errors surfaced while building a level's graph. All of
// them are fatal to the load; a half-wired circuit never goes live.
var (
	ErrDuplicateID   = errors.New("duplicate component id")
	ErrUnknownSource = errors.New("unknown source id")
	ErrNotASource    = errors.New("component does not expose a signal")
	ErrUnknownTarget = errors.New("unknown target id")
	ErrTargetNotGate = errors.New("target is not a gate")
	ErrTargetNotLED  = errors.New("target is not an led")
	ErrInvalidSlot   = errors.New("invalid input slot")
	ErrDuplicateSlot = errors.New("input slot already wired")
	ErrCyclicWiring  = errors.New("cyclic dependency")
)
