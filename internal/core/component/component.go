// Package component defines the identity and lifecycle shared by every
// object owned by a level: buttons, gates, LEDs, wires and decoration.
package component

// State tracks where a component is in its lifecycle. Components are
// created when a level is loaded and destroyed wholesale when it is
// unloaded; there is no partial teardown during play.
type State uint8

const (
	StateUninitialized State = iota
	StateInitialized
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Component is the minimal contract the engine needs from a scene object.
type Component interface {
	// ID returns the opaque identifier, unique within the owning level.
	ID() string
	// Enabled reports whether the component takes part in update passes.
	Enabled() bool
	// Lifecycle returns the current lifecycle state.
	Lifecycle() State

	Initialize()
	Destroy()

	// Update refreshes render-facing state. dt is the seconds elapsed
	// since the previous frame.
	Update(dt float64)
}

// Base carries the common identity and lifecycle fields. Concrete
// components embed it and override Update as needed.
type Base struct {
	id      string
	enabled bool
	state   State
}

// NewBase returns an enabled, uninitialized Base with the given id.
func NewBase(id string) Base {
	return Base{id: id, enabled: true}
}

func (b *Base) ID() string       { return b.id }
func (b *Base) Enabled() bool    { return b.enabled }
func (b *Base) Lifecycle() State { return b.state }

// SetEnabled toggles participation in update passes.
func (b *Base) SetEnabled(enabled bool) { b.enabled = enabled }

func (b *Base) Initialize() {
	if b.state == StateUninitialized {
		b.state = StateInitialized
	}
}

func (b *Base) Destroy() {
	b.state = StateDestroyed
}

// Update is a no-op; stateless components inherit it.
func (b *Base) Update(float64) {}
