// Package input translates pointer events from the windowing driver into
// component interactions: toggling circuit buttons and firing menu
// buttons. The windowing layer itself lives outside the core; it only
// needs to forward events here.
package input

import "github.com/circuitplay/circuitplay/pkg/geom"

// Kind discriminates pointer events.
type Kind uint8

const (
	PointerDown Kind = iota
	PointerUp
	PointerMove
)

// PointerEvent is one mouse/touch event in window coordinates.
type PointerEvent struct {
	Kind Kind
	Pos  geom.Vec2
}

// Toggleable is a clickable component with persistent boolean state.
type Toggleable interface {
	ContainsPoint(p geom.Vec2) bool
	Toggle()
	SetHovered(hovered bool)
}

// Activatable is a clickable component that fires an action.
type Activatable interface {
	ContainsPoint(p geom.Vec2) bool
	Activate()
	SetHovered(hovered bool)
}

// Dispatcher routes pointer events to the current scene's clickables.
// Targets are replaced wholesale on level transitions.
type Dispatcher struct {
	toggles []Toggleable
	actions []Activatable
}

func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// SetTargets replaces the dispatch targets, typically after a level load.
func (d *Dispatcher) SetTargets(toggles []Toggleable, actions []Activatable) {
	d.toggles = toggles
	d.actions = actions
}

// Dispatch handles one pointer event. It returns true when a down event
// hit a component. The first hit wins; overlapping components are a
// level-design problem, not something dispatch resolves.
func (d *Dispatcher) Dispatch(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		for _, t := range d.toggles {
			if t.ContainsPoint(ev.Pos) {
				t.Toggle()
				return true
			}
		}
		for _, a := range d.actions {
			if a.ContainsPoint(ev.Pos) {
				a.Activate()
				return true
			}
		}
	case PointerMove:
		for _, t := range d.toggles {
			t.SetHovered(t.ContainsPoint(ev.Pos))
		}
		for _, a := range d.actions {
			a.SetHovered(a.ContainsPoint(ev.Pos))
		}
	}
	return false
}
