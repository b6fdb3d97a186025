package ui

import (
	"github.com/circuitplay/circuitplay/internal/core/component"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

// Text is a static label. Position is the label's center point.
type Text struct {
	component.Base

	text  string
	pos   geom.Vec2
	size  float64
	color render.Color
}

var _ render.Renderable = (*Text)(nil)

func NewText(id, text string, pos geom.Vec2, size float64, color render.Color) *Text {
	return &Text{
		Base:  component.NewBase(id),
		text:  text,
		pos:   pos,
		size:  size,
		color: color,
	}
}

func (t *Text) Text() string { return t.text }

func (t *Text) Render(r render.Renderer) {
	r.Text(t.text, t.pos, t.size, t.color)
}

// Background fills the whole window behind everything else.
type Background struct {
	component.Base

	size  geom.Vec2
	color render.Color
}

var _ render.Renderable = (*Background)(nil)

func NewBackground(id string, size geom.Vec2, color render.Color) *Background {
	return &Background{
		Base:  component.NewBase(id),
		size:  size,
		color: color,
	}
}

func (b *Background) Render(r render.Renderer) {
	r.Quad(geom.Rect{Size: b.size}, b.color)
}
