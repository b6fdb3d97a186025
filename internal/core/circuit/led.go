package circuit

import (
	"github.com/circuitplay/circuitplay/internal/core/component"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

// LED is a terminal sink that mirrors its bound source's boolean value
// into a visual state. It never mutates the graph; an unbound LED is
// perpetually off.
type LED struct {
	component.Base

	source Source
	lit    bool

	center   geom.Vec2
	radius   float64
	offColor render.Color
	onColor  render.Color
}

var _ render.Renderable = (*LED)(nil)

// NewLED creates an unbound LED centered at the given point.
func NewLED(id string, center geom.Vec2, radius float64) *LED {
	return &LED{
		Base:     component.NewBase(id),
		center:   center,
		radius:   radius,
		offColor: render.ColorLEDOff,
		onColor:  render.ColorLEDOn,
	}
}

// SetColors overrides the default off/on render colors.
func (l *LED) SetColors(off, on render.Color) {
	l.offColor = off
	l.onColor = on
}

// Bind replaces the bound source. Called once at load time.
func (l *LED) Bind(source Source) { l.source = source }

// Source returns the bound source, or nil.
func (l *LED) Source() Source { return l.source }

// IsOn reads the bound source's current value.
func (l *LED) IsOn() bool {
	if l.source == nil {
		return false
	}
	return l.source.Result()
}

// Lit returns the value cached by the last update pass.
func (l *LED) Lit() bool { return l.lit }

// Update refreshes the cached visual state once per frame.
func (l *LED) Update(float64) {
	l.lit = l.IsOn()
}

// RenderColor picks the fill color for the current state.
func (l *LED) RenderColor() render.Color {
	if l.IsOn() {
		return l.onColor
	}
	return l.offColor
}

// Bounds returns the square footprint enclosing the LED circle.
func (l *LED) Bounds() geom.Rect {
	return geom.Rect{
		Pos:  geom.Vec2{X: l.center.X - l.radius, Y: l.center.Y - l.radius},
		Size: geom.Vec2{X: l.radius * 2, Y: l.radius * 2},
	}
}

// InputPoint returns where the incoming wire attaches.
func (l *LED) InputPoint() geom.Vec2 {
	return geom.Vec2{X: l.center.X - l.radius, Y: l.center.Y}
}

// Render draws the LED as a filled circle.
func (l *LED) Render(r render.Renderer) {
	r.Circle(geom.Circle{Center: l.center, Radius: l.radius}, l.RenderColor())
}
