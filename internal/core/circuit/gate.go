package circuit

import (
	"github.com/circuitplay/circuitplay/internal/core/component"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

// GateKind identifies the boolean function a gate computes.
type GateKind uint8

const (
	KindAnd GateKind = iota
	KindOr
	KindNot
)

func (k GateKind) String() string {
	switch k {
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindNot:
		return "NOT"
	default:
		return "UNKNOWN"
	}
}

// Gate evaluates a boolean function over an ordered sequence of input
// sources. Operand order is insertion order, which matters for NOT.
//
// Result recomputes from the operands' current values on every call;
// the cached output exists only so rendering can read the value computed
// by the last update pass.
type Gate struct {
	component.Base

	kind   GateKind
	inputs []Source
	output bool

	rect     geom.Rect
	offColor render.Color
	onColor  render.Color
}

var (
	_ Source            = (*Gate)(nil)
	_ render.Renderable = (*Gate)(nil)
)

// NewGate creates a gate of the given kind with no operands.
func NewGate(id string, kind GateKind, rect geom.Rect) *Gate {
	return &Gate{
		Base:     component.NewBase(id),
		kind:     kind,
		inputs:   make([]Source, 0, 2),
		rect:     rect,
		offColor: render.ColorGateOff,
		onColor:  render.ColorGateOn,
	}
}

// SetColors overrides the default off/on render colors.
func (g *Gate) SetColors(off, on render.Color) {
	g.offColor = off
	g.onColor = on
}

// Kind returns the gate's boolean function.
func (g *Gate) Kind() GateKind { return g.kind }

// AddInput appends a source to the operand sequence. Any count is
// accepted; NOT only consumes operand 0 and ignores the rest.
func (g *Gate) AddInput(source Source) {
	g.inputs = append(g.inputs, source)
}

// Inputs returns the operand sequence in order.
func (g *Gate) Inputs() []Source { return g.inputs }

// Result recomputes the gate's value from its operands.
//
// Zero-operand fallbacks: AND is vacuously true, OR vacuously false,
// and NOT defaults to true. These are defined values, not errors.
func (g *Gate) Result() bool {
	g.output = g.evaluate()
	return g.output
}

func (g *Gate) evaluate() bool {
	switch g.kind {
	case KindAnd:
		for _, input := range g.inputs {
			if !input.Result() {
				return false
			}
		}
		return true
	case KindOr:
		for _, input := range g.inputs {
			if input.Result() {
				return true
			}
		}
		return false
	case KindNot:
		if len(g.inputs) == 0 {
			return true
		}
		return !g.inputs[0].Result()
	default:
		return false
	}
}

// Output returns the value cached by the last Result call. Rendering
// reads this; logic always goes through Result.
func (g *Gate) Output() bool { return g.output }

// Update refreshes the cached output once per frame.
func (g *Gate) Update(float64) {
	g.Result()
}

// RenderColor picks the fill color for the gate's current value.
func (g *Gate) RenderColor() render.Color {
	if g.Result() {
		return g.onColor
	}
	return g.offColor
}

// Bounds returns the gate's screen rectangle.
func (g *Gate) Bounds() geom.Rect { return g.rect }

// InputPoint returns where the wire for operand slot i attaches, spread
// down the gate's left edge.
func (g *Gate) InputPoint(slot int) geom.Vec2 {
	step := g.rect.Size.Y / float64(len(g.inputs)+1)
	return geom.Vec2{
		X: g.rect.Pos.X,
		Y: g.rect.Pos.Y + step*float64(slot+1),
	}
}

// OutputPoint returns where outgoing wires leave the gate.
func (g *Gate) OutputPoint() geom.Vec2 {
	return geom.Vec2{X: g.rect.Pos.X + g.rect.Size.X, Y: g.rect.Center().Y}
}

// Render draws the gate body and its kind label.
func (g *Gate) Render(r render.Renderer) {
	r.Quad(g.rect, g.RenderColor())
	labelSize := min(18.0, g.rect.Size.Y/4)
	r.Text(g.kind.String(), g.rect.Center(), labelSize, render.ColorText)
}
