package circuit

import (
	"fmt"

	"github.com/circuitplay/circuitplay/internal/core/component"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
	"github.com/circuitplay/circuitplay/internal/core/render"
)

// Board owns a level's dataflow graph: every circuit component, the
// id→instance index, and the set of wires. It performs the wiring at
// load time and drives the per-frame refresh of render-facing state.
//
// A Board is built once by the level loader and discarded wholesale when
// the level is unloaded. Only button states change during play.
type Board struct {
	index map[string]component.Component
	order []component.Component

	buttons     []*Button
	gates       []*Gate
	leds        []*LED
	connections []*Connection

	// deps maps a gate id to the ids of its wired input sources; used
	// for the cycle check on Connect.
	deps map[string][]string

	log log.Log
}

// NewBoard returns an empty board.
func NewBoard(logger log.Log) *Board {
	return &Board{
		index: make(map[string]component.Component),
		deps:  make(map[string][]string),
		log:   logger.With(log.String("system", "board")),
	}
}

// Register adds a component to the id→instance index. Registering a
// duplicate id is a configuration error.
func (b *Board) Register(c component.Component) error {
	id := c.ID()
	if _, exists := b.index[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	b.index[id] = c
	b.order = append(b.order, c)

	switch v := c.(type) {
	case *Button:
		b.buttons = append(b.buttons, v)
	case *Gate:
		b.gates = append(b.gates, v)
	case *LED:
		b.leds = append(b.leds, v)
	}

	c.Initialize()
	b.log.Debug("registered component", log.String("id", id))
	return nil
}

// Connect resolves both ids and wires the source into the target gate's
// operand slot. Slots fill densely in wiring order: slot must name the
// next free operand position. A wire that would close a cycle is
// rejected, which keeps the recursive evaluation bounded.
func (b *Board) Connect(fromID, toID string, slot int) error {
	source, err := b.resolveSource(fromID)
	if err != nil {
		return err
	}

	target, exists := b.index[toID]
	if !exists {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, toID)
	}
	gate, ok := target.(*Gate)
	if !ok {
		return fmt.Errorf("%w: %q", ErrTargetNotGate, toID)
	}

	if slot < 0 || slot > len(gate.Inputs()) {
		return fmt.Errorf("%w: slot %d on %q (next free slot is %d)",
			ErrInvalidSlot, slot, toID, len(gate.Inputs()))
	}
	if slot < len(gate.Inputs()) {
		return fmt.Errorf("%w: slot %d on %q", ErrDuplicateSlot, slot, toID)
	}

	if b.wouldCycle(fromID, toID) {
		return fmt.Errorf("%w: %q -> %q", ErrCyclicWiring, fromID, toID)
	}

	gate.AddInput(source)
	b.deps[toID] = append(b.deps[toID], fromID)

	from := outputPointOf(source, b.index[fromID])
	conn := newConnection(fromID, toID, slot, source, from, gate.InputPoint(slot))
	b.connections = append(b.connections, conn)

	b.log.Debug("wired connection",
		log.String("from", fromID),
		log.String("to", toID),
		log.Int("slot", slot))
	return nil
}

// BindLED resolves both ids and binds the source to the LED sink. A
// second wire into the same LED is a configuration error.
func (b *Board) BindLED(fromID, ledID string) error {
	source, err := b.resolveSource(fromID)
	if err != nil {
		return err
	}

	target, exists := b.index[ledID]
	if !exists {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, ledID)
	}
	led, ok := target.(*LED)
	if !ok {
		return fmt.Errorf("%w: %q", ErrTargetNotLED, ledID)
	}
	if led.Source() != nil {
		return fmt.Errorf("%w: led %q", ErrDuplicateSlot, ledID)
	}

	led.Bind(source)

	from := outputPointOf(source, b.index[fromID])
	conn := newConnection(fromID, ledID, 0, source, from, led.InputPoint())
	b.connections = append(b.connections, conn)

	b.log.Debug("bound led", log.String("from", fromID), log.String("led", ledID))
	return nil
}

func (b *Board) resolveSource(fromID string) (Source, error) {
	c, exists := b.index[fromID]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, fromID)
	}
	source, ok := c.(Source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotASource, fromID)
	}
	return source, nil
}

// wouldCycle reports whether adding the dependency to←from would make
// `to` transitively depend on itself. DFS over the existing dependency
// edges; buttons have none, so only gate chains are walked.
func (b *Board) wouldCycle(fromID, toID string) bool {
	if fromID == toID {
		return true
	}
	visited := make(map[string]bool)
	stack := []string{fromID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == toID {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		stack = append(stack, b.deps[id]...)
	}
	return false
}

// Lookup returns the component registered under id.
func (b *Board) Lookup(id string) (component.Component, bool) {
	c, ok := b.index[id]
	return c, ok
}

func (b *Board) Buttons() []*Button         { return b.buttons }
func (b *Board) Gates() []*Gate             { return b.gates }
func (b *Board) LEDs() []*LED               { return b.leds }
func (b *Board) Connections() []*Connection { return b.connections }

// Update refreshes cached render-facing state once per frame. Order is
// irrelevant for correctness because evaluation is recursive and lazy;
// components are walked in registration order.
func (b *Board) Update(dt float64) {
	for _, c := range b.order {
		if c.Enabled() {
			c.Update(dt)
		}
	}
}

// Render draws wires beneath the components they join.
func (b *Board) Render(r render.Renderer) {
	for _, conn := range b.connections {
		conn.Render(r)
	}
	for _, c := range b.order {
		if renderable, ok := c.(render.Renderable); ok && c.Enabled() {
			renderable.Render(r)
		}
	}
}

// Destroy tears down every owned component. The board is unusable
// afterwards.
func (b *Board) Destroy() {
	for _, c := range b.order {
		c.Destroy()
	}
}
