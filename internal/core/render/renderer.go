// Package render defines the boundary between game state and the drawing
// backend. The core emits draw commands; a backend (OpenGL, framebuffer,
// or the in-memory Recorder used by tests and headless runs) consumes
// them. Nothing in here mutates game state.
package render

import "github.com/circuitplay/circuitplay/pkg/geom"

// Renderer consumes one frame's worth of draw commands between Begin and
// End. Commands are submitted in paint order.
type Renderer interface {
	Begin(clear Color)
	Quad(rect geom.Rect, color Color)
	Circle(circle geom.Circle, color Color)
	Line(from, to geom.Vec2, width float64, color Color)
	Text(text string, pos geom.Vec2, size float64, color Color)
	End()
}

// Renderable is implemented by components that draw themselves.
type Renderable interface {
	Render(r Renderer)
}

// Command is a recorded draw call, used for assertions and for replaying
// a frame into a real backend.
type Command struct {
	Kind   CommandKind
	Rect   geom.Rect
	Circle geom.Circle
	From   geom.Vec2
	To     geom.Vec2
	Width  float64
	Text   string
	Size   float64
	Color  Color
}

type CommandKind uint8

const (
	KindQuad CommandKind = iota
	KindCircle
	KindLine
	KindText
)

// Recorder is a Renderer that captures commands in memory.
type Recorder struct {
	Clear    Color
	Commands []Command
	frames   int
}

var _ Renderer = (*Recorder)(nil)

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Begin(clear Color) {
	r.Clear = clear
	r.Commands = r.Commands[:0]
}

func (r *Recorder) Quad(rect geom.Rect, color Color) {
	r.Commands = append(r.Commands, Command{Kind: KindQuad, Rect: rect, Color: color})
}

func (r *Recorder) Circle(circle geom.Circle, color Color) {
	r.Commands = append(r.Commands, Command{Kind: KindCircle, Circle: circle, Color: color})
}

func (r *Recorder) Line(from, to geom.Vec2, width float64, color Color) {
	r.Commands = append(r.Commands, Command{Kind: KindLine, From: from, To: to, Width: width, Color: color})
}

func (r *Recorder) Text(text string, pos geom.Vec2, size float64, color Color) {
	r.Commands = append(r.Commands, Command{Kind: KindText, From: pos, Text: text, Size: size, Color: color})
}

func (r *Recorder) End() { r.frames++ }

// Frames returns how many complete frames have been recorded.
func (r *Recorder) Frames() int { return r.frames }

// ColorsOf returns the colors of all commands of the given kind, in
// submission order.
func (r *Recorder) ColorsOf(kind CommandKind) []Color {
	var out []Color
	for _, c := range r.Commands {
		if c.Kind == kind {
			out = append(out, c.Color)
		}
	}
	return out
}
