package circuit

import (
	"github.com/google/uuid"

	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

// Connection is one directed wire between a source and a target's input
// slot. It is purely descriptive: the value flows through the resolved
// object references, while the Connection is consulted for rendering and
// introspection.
type Connection struct {
	id     string
	fromID string
	toID   string
	slot   int

	// signal is the resolved source; the wire's color follows its value.
	signal Source
	from   geom.Vec2
	to     geom.Vec2

	width    float64
	offColor render.Color
	onColor  render.Color
}

var _ render.Renderable = (*Connection)(nil)

func newConnection(fromID, toID string, slot int, signal Source, from, to geom.Vec2) *Connection {
	return &Connection{
		id:       uuid.NewString(),
		fromID:   fromID,
		toID:     toID,
		slot:     slot,
		signal:   signal,
		from:     from,
		to:       to,
		width:    3,
		offColor: render.ColorWireOff,
		onColor:  render.ColorWireOn,
	}
}

// ID returns the generated wire identifier.
func (c *Connection) ID() string { return c.id }

// FromID returns the source component id.
func (c *Connection) FromID() string { return c.fromID }

// ToID returns the target component id.
func (c *Connection) ToID() string { return c.toID }

// Slot returns the target's operand slot this wire feeds.
func (c *Connection) Slot() int { return c.slot }

// Active reports whether the wire currently carries a high signal.
func (c *Connection) Active() bool { return c.signal.Result() }

// RenderColor picks the wire color for the current signal.
func (c *Connection) RenderColor() render.Color {
	if c.Active() {
		return c.onColor
	}
	return c.offColor
}

// Render draws the wire as a straight line between its endpoints.
func (c *Connection) Render(r render.Renderer) {
	r.Line(c.from, c.to, c.width, c.RenderColor())
}

// outputPointOf finds where a wire leaves its source component.
func outputPointOf(source Source, c any) geom.Vec2 {
	switch v := c.(type) {
	case *Button:
		return v.OutputPoint()
	case *Gate:
		return v.OutputPoint()
	}
	if placed, ok := source.(Placed); ok {
		bounds := placed.Bounds()
		return geom.Vec2{X: bounds.Pos.X + bounds.Size.X, Y: bounds.Center().Y}
	}
	return geom.Vec2{}
}
