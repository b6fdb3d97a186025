package circuit

import (
	"github.com/circuitplay/circuitplay/internal/core/component"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

// Button is a stateful boolean toggle acting as a source. Its state is
// mutated only by user clicks (or programmatic SetState); the evaluation
// pass never touches it.
type Button struct {
	component.Base

	state    bool
	callback func(state bool)

	rect     geom.Rect
	offColor render.Color
	onColor  render.Color
	hovered  bool
}

var (
	_ Source            = (*Button)(nil)
	_ render.Renderable = (*Button)(nil)
)

// NewButton creates a toggle button, initially off.
func NewButton(id string, rect geom.Rect) *Button {
	return &Button{
		Base:     component.NewBase(id),
		rect:     rect,
		offColor: render.ColorButtonOff,
		onColor:  render.ColorButtonOn,
	}
}

// SetColors overrides the default off/on render colors.
func (b *Button) SetColors(off, on render.Color) {
	b.offColor = off
	b.onColor = on
}

// OnToggle registers a callback invoked with the new state after every
// state change.
func (b *Button) OnToggle(fn func(state bool)) { b.callback = fn }

// State returns the current toggle state.
func (b *Button) State() bool { return b.state }

// SetState sets the state directly and fires the callback if the value
// changed. Synchronous and immediate; no debouncing.
func (b *Button) SetState(state bool) {
	if b.state == state {
		return
	}
	b.state = state
	if b.callback != nil {
		b.callback(b.state)
	}
}

// Toggle flips the state.
func (b *Button) Toggle() {
	b.SetState(!b.state)
}

// Result returns the toggle state; a button is its own source.
func (b *Button) Result() bool { return b.state }

// ContainsPoint reports whether p hits the button. Buttons are drawn as
// circles inscribed in their rectangle, so the hit shape is the circle.
func (b *Button) ContainsPoint(p geom.Vec2) bool {
	c := geom.Circle{
		Center: b.rect.Center(),
		Radius: min(b.rect.Size.X, b.rect.Size.Y) / 2,
	}
	return c.Contains(p)
}

// SetHovered records pointer-over state for render feedback.
func (b *Button) SetHovered(hovered bool) { b.hovered = hovered }

// Hovered reports whether the pointer is currently over the button.
func (b *Button) Hovered() bool { return b.hovered }

// RenderColor picks the fill color for the current state.
func (b *Button) RenderColor() render.Color {
	if b.state {
		return b.onColor
	}
	return b.offColor
}

// Bounds returns the button's screen rectangle.
func (b *Button) Bounds() geom.Rect { return b.rect }

// OutputPoint returns where outgoing wires leave the button.
func (b *Button) OutputPoint() geom.Vec2 {
	return geom.Vec2{X: b.rect.Pos.X + b.rect.Size.X, Y: b.rect.Center().Y}
}

// Render draws the button as a filled circle.
func (b *Button) Render(r render.Renderer) {
	r.Circle(geom.Circle{
		Center: b.rect.Center(),
		Radius: min(b.rect.Size.X, b.rect.Size.Y) / 2,
	}, b.RenderColor())
}
