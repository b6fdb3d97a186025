package level

import (
	"errors"
	"fmt"

	"github.com/circuitplay/circuitplay/internal/core/circuit"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/internal/core/ui"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

var (
	// ErrUnknownType reports a component type tag outside the closed set.
	ErrUnknownType = errors.New("unknown component type")
	// ErrUnknownCallback reports a menu action name with no registered
	// handler.
	ErrUnknownCallback = errors.New("unknown callback")
)

// Callbacks maps menu action names to handlers. The standard names are
// "start_game", "exit_game" and "back_to_menu".
type Callbacks map[string]func()

// Build turns a validated descriptor into a live scene. The build is
// atomic: on any configuration error nothing is returned and no partial
// scene exists.
func Build(desc Descriptor, callbacks Callbacks, windowSize geom.Vec2, logger log.Log) (*Scene, error) {
	scene := &Scene{
		Name:  desc.Name,
		Next:  desc.Next,
		Board: circuit.NewBoard(logger),
	}

	seen := make(map[string]bool)
	for _, c := range desc.Components {
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: %q", circuit.ErrDuplicateID, c.ID)
		}
		seen[c.ID] = true

		if err := buildComponent(scene, c, callbacks, windowSize); err != nil {
			return nil, err
		}
	}

	for _, w := range desc.Connections {
		if err := wire(scene.Board, w); err != nil {
			return nil, err
		}
	}

	return scene, nil
}

func buildComponent(scene *Scene, c ComponentDescriptor, callbacks Callbacks, windowSize geom.Vec2) error {
	switch c.Type {
	case TypeInputButton:
		btn := circuit.NewButton(c.ID, rectOf(c))
		btn.SetState(c.State)
		return scene.Board.Register(btn)

	case TypeAnd, TypeOr, TypeNot:
		return scene.Board.Register(circuit.NewGate(c.ID, kindOf(c.Type), rectOf(c)))

	case TypeLED:
		center := geom.Vec2{X: c.Position[0], Y: c.Position[1]}
		return scene.Board.Register(circuit.NewLED(c.ID, center, c.Radius))

	case TypeMenuButton:
		btn := ui.NewMenuButton(c.ID, c.Text, rectOf(c))
		if c.Callback != "" {
			fn, ok := callbacks[c.Callback]
			if !ok {
				return fmt.Errorf("%w: %q on menu button %q", ErrUnknownCallback, c.Callback, c.ID)
			}
			btn.OnActivate(fn)
		}
		scene.Menus = append(scene.Menus, btn)
		return nil

	case TypeText:
		size := c.FontSize
		if size == 0 {
			size = 36
		}
		pos := geom.Vec2{X: c.Position[0], Y: c.Position[1]}
		scene.Decor = append(scene.Decor, ui.NewText(c.ID, c.Text, pos, size, render.ColorText))
		return nil

	case TypeBackground:
		scene.Decor = append(scene.Decor, ui.NewBackground(c.ID, windowSize, render.ColorBackground))
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, c.Type)
	}
}

// wire routes a connection triple to the board: gate targets get a new
// operand, LED targets get their one-time binding.
func wire(board *circuit.Board, w WireDescriptor) error {
	if target, ok := board.Lookup(w.To); ok {
		if _, isLED := target.(*circuit.LED); isLED {
			if w.InputIndex != 0 {
				return fmt.Errorf("%w: led %q has a single input", circuit.ErrInvalidSlot, w.To)
			}
			return board.BindLED(w.From, w.To)
		}
	}
	return board.Connect(w.From, w.To, w.InputIndex)
}

func rectOf(c ComponentDescriptor) geom.Rect {
	return geom.Rect{
		Pos:  geom.Vec2{X: c.Position[0], Y: c.Position[1]},
		Size: geom.Vec2{X: c.Size[0], Y: c.Size[1]},
	}
}

func kindOf(typeTag string) circuit.GateKind {
	switch typeTag {
	case TypeOr:
		return circuit.KindOr
	case TypeNot:
		return circuit.KindNot
	default:
		return circuit.KindAnd
	}
}
