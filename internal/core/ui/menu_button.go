// Package ui holds the non-circuit scene objects: menu buttons, text
// labels and the background fill.
package ui

import (
	"github.com/circuitplay/circuitplay/internal/core/component"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

// MenuButton is a momentary button: clicking it fires its action once,
// it carries no boolean state and is not part of the circuit graph.
type MenuButton struct {
	component.Base

	label    string
	rect     geom.Rect
	idle     render.Color
	hover    render.Color
	text     render.Color
	hovered  bool
	callback func()
}

var _ render.Renderable = (*MenuButton)(nil)

// NewMenuButton creates a menu button with the default palette.
func NewMenuButton(id, label string, rect geom.Rect) *MenuButton {
	return &MenuButton{
		Base:  component.NewBase(id),
		label: label,
		rect:  rect,
		idle:  render.ColorMenuIdle,
		hover: render.ColorMenuHover,
		text:  render.ColorText,
	}
}

// SetColors overrides the idle/hover fill colors.
func (m *MenuButton) SetColors(idle, hover render.Color) {
	m.idle = idle
	m.hover = hover
}

// OnActivate registers the action fired on click.
func (m *MenuButton) OnActivate(fn func()) { m.callback = fn }

// Label returns the button caption.
func (m *MenuButton) Label() string { return m.label }

// ContainsPoint reports whether p hits the button rectangle.
func (m *MenuButton) ContainsPoint(p geom.Vec2) bool { return m.rect.Contains(p) }

// SetHovered records pointer-over state for render feedback.
func (m *MenuButton) SetHovered(hovered bool) { m.hovered = hovered }

// Hovered reports whether the pointer is currently over the button.
func (m *MenuButton) Hovered() bool { return m.hovered }

// Activate fires the registered action.
func (m *MenuButton) Activate() {
	if m.callback != nil {
		m.callback()
	}
}

// Bounds returns the button's screen rectangle.
func (m *MenuButton) Bounds() geom.Rect { return m.rect }

// Render draws the button body and caption.
func (m *MenuButton) Render(r render.Renderer) {
	fill := m.idle
	if m.hovered {
		fill = m.hover
	}
	r.Quad(m.rect, fill)
	r.Text(m.label, m.rect.Center(), 14, m.text)
}
