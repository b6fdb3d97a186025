package level

import (
	"github.com/circuitplay/circuitplay/internal/core/circuit"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/internal/core/ui"
)

// Scene is a fully wired, live level: the circuit board plus the UI
// objects around it. A Scene is immutable in structure; only button
// states change while it is active.
type Scene struct {
	Name  string
	Next  string
	Board *circuit.Board

	Menus []*ui.MenuButton
	// Decor holds background and text objects in document order.
	Decor []render.Renderable
}

// Update runs the per-frame refresh pass.
func (s *Scene) Update(dt float64) {
	s.Board.Update(dt)
}

// Render draws decoration, then the circuit, then menu buttons on top.
func (s *Scene) Render(r render.Renderer) {
	for _, d := range s.Decor {
		d.Render(r)
	}
	s.Board.Render(r)
	for _, m := range s.Menus {
		m.Render(r)
	}
}

// Destroy tears the whole scene down.
func (s *Scene) Destroy() {
	s.Board.Destroy()
}
