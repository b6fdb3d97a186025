// Package engine owns the frame loop contract: the driver calls
// HandleEvent for input, then Update, then Render, strictly in that
// order, once per frame, from a single goroutine.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/circuitplay/circuitplay/internal/core/circuit"
	"github.com/circuitplay/circuitplay/internal/core/config"
	"github.com/circuitplay/circuitplay/internal/core/events"
	"github.com/circuitplay/circuitplay/internal/core/input"
	"github.com/circuitplay/circuitplay/internal/core/level"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/internal/core/ui"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

// Engine orchestrates levels, input and rendering. All state is owned by
// the frame-loop goroutine; nothing here is safe for concurrent use.
type Engine struct {
	settings   config.Settings
	logger     log.Log
	bus        *events.Bus
	renderer   render.Renderer
	levels     *level.Manager
	dispatcher *input.Dispatcher

	running   bool
	frame     uint64
	frameHook func(*Engine)
}

// New assembles an engine. The renderer is the only external
// collaborator; pass a render.Recorder for headless runs.
func New(settings config.Settings, renderer render.Renderer, logger log.Log) *Engine {
	e := &Engine{
		settings:   settings,
		logger:     logger.With(log.String("system", "engine")),
		bus:        events.NewBus(),
		renderer:   renderer,
		dispatcher: input.NewDispatcher(),
	}
	windowSize := geom.Vec2{
		X: float64(settings.Window.Width),
		Y: float64(settings.Window.Height),
	}
	e.levels = level.NewManager(
		settings.Levels.Dir, settings.Levels.Start, windowSize, e.bus, logger, e.Stop)
	e.bus.Subscribe(events.TypeLevelLoaded, func(events.Event) error {
		e.syncScene()
		return nil
	})
	return e
}

// Bus exposes the engine's event bus to observers such as the inspector.
func (e *Engine) Bus() *events.Bus { return e.bus }

// Levels exposes the level manager.
func (e *Engine) Levels() *level.Manager { return e.levels }

// Start scans the levels directory and loads the start level.
func (e *Engine) Start(ctx context.Context) error {
	if err := e.levels.Scan(ctx); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	if err := e.levels.Load(e.settings.Levels.Start); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	e.running = true
	e.logger.Info("engine started", log.String("level", e.settings.Levels.Start))
	return nil
}

// Stop ends the frame loop after the current frame.
func (e *Engine) Stop() {
	e.running = false
}

// Running reports whether the loop should keep going.
func (e *Engine) Running() bool { return e.running }

// Frame returns the number of completed update passes.
func (e *Engine) Frame() uint64 { return e.frame }

// HandleEvent forwards one pointer event to the current scene.
func (e *Engine) HandleEvent(ev input.PointerEvent) bool {
	return e.dispatcher.Dispatch(ev)
}

// Update advances the scene by dt seconds.
func (e *Engine) Update(dt float64) {
	if scene := e.levels.Current(); scene != nil {
		scene.Update(dt)
	}
	e.frame++
}

// Render draws the current scene into the renderer.
func (e *Engine) Render() {
	e.renderer.Begin(render.ColorBackground)
	if scene := e.levels.Current(); scene != nil {
		scene.Render(e.renderer)
	}
	e.renderer.End()
}

// Snapshot captures the current circuit state for observers. Returns a
// zero snapshot when no level is live.
func (e *Engine) Snapshot() circuit.Snapshot {
	scene := e.levels.Current()
	if scene == nil {
		return circuit.Snapshot{}
	}
	return scene.Board.Snapshot()
}

// SetFrameHook registers a callback invoked by Run after each rendered
// frame, on the frame-loop goroutine. Used to feed the inspector.
func (e *Engine) SetFrameHook(fn func(*Engine)) { e.frameHook = fn }

// Run drives the loop at the configured frame rate until Stop is called
// or the context is cancelled. Real windowing drivers call
// HandleEvent/Update/Render themselves instead.
func (e *Engine) Run(ctx context.Context) error {
	fps := e.settings.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for e.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			e.Update(dt)
			e.Render()
			if e.frameHook != nil {
				e.frameHook(e)
			}
		}
	}
	e.logger.Info("engine stopped", log.Uint64("frames", e.frame))
	return nil
}

// syncScene rebinds input targets and toggle notifications after a level
// swap. The previous scene's components are already destroyed.
func (e *Engine) syncScene() {
	scene := e.levels.Current()
	if scene == nil {
		e.dispatcher.SetTargets(nil, nil)
		return
	}

	toggles := make([]input.Toggleable, 0, len(scene.Board.Buttons()))
	for _, btn := range scene.Board.Buttons() {
		id := btn.ID()
		btn.OnToggle(func(state bool) {
			_ = e.bus.Publish(events.New(events.TypeButtonToggled, id, state))
		})
		toggles = append(toggles, btn)
	}

	actions := make([]input.Activatable, 0, len(scene.Menus))
	for _, menu := range scene.Menus {
		actions = append(actions, &menuTarget{menu: menu, bus: e.bus})
	}

	e.dispatcher.SetTargets(toggles, actions)
}

// menuTarget publishes the activation event before running the menu's
// own action, so observers see clicks that change the level.
type menuTarget struct {
	menu *ui.MenuButton
	bus  *events.Bus
}

func (m *menuTarget) ContainsPoint(p geom.Vec2) bool { return m.menu.ContainsPoint(p) }
func (m *menuTarget) SetHovered(hovered bool)        { m.menu.SetHovered(hovered) }

func (m *menuTarget) Activate() {
	_ = m.bus.Publish(events.New(events.TypeMenuActivated, m.menu.ID(), m.menu.Label()))
	m.menu.Activate()
}
