package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circuitplay/circuitplay/internal/core/config"
	"github.com/circuitplay/circuitplay/internal/core/events"
	"github.com/circuitplay/circuitplay/internal/core/input"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

const menuJSON = `{
  "name": "menu",
  "next": "not_level",
  "components": [
    {"id": "bg", "type": "background"},
    {"id": "start", "type": "menu_button", "text": "Start", "position": [250, 250], "size": [300, 75], "callback": "start_game"},
    {"id": "exit", "type": "menu_button", "text": "Exit", "position": [250, 340], "size": [300, 75], "callback": "exit_game"}
  ],
  "connections": []
}`

const notLevelJSON = `{
  "name": "not_level",
  "components": [
    {"id": "a", "type": "input_button", "position": [100, 100], "size": [80, 80]},
    {"id": "not1", "type": "NOT", "position": [300, 100], "size": [120, 80]},
    {"id": "led1", "type": "led", "position": [560, 140], "radius": 30}
  ],
  "connections": [
    {"from": "a", "to": "not1", "input_index": 0},
    {"from": "not1", "to": "led1", "input_index": 0}
  ]
}`

func newTestEngine(t *testing.T) (*Engine, *render.Recorder) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.json"), []byte(menuJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "not_level.json"), []byte(notLevelJSON), 0o644))

	settings := config.Default()
	settings.Levels.Dir = dir

	rec := render.NewRecorder()
	e := New(settings, rec, log.Nop())
	require.NoError(t, e.Start(context.Background()))
	return e, rec
}

func TestStartLoadsStartLevel(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.True(t, e.Running())
	require.NotNil(t, e.Levels().Current())
	assert.Equal(t, "menu", e.Levels().Current().Name)
}

func TestUpdateThenRenderProducesFrame(t *testing.T) {
	e, rec := newTestEngine(t)

	e.Update(0.016)
	e.Render()

	assert.Equal(t, uint64(1), e.Frame())
	assert.Equal(t, 1, rec.Frames())
	assert.NotEmpty(t, rec.Commands)
}

func TestMenuClickAdvancesLevel(t *testing.T) {
	e, _ := newTestEngine(t)

	consumed := e.HandleEvent(input.PointerEvent{
		Kind: input.PointerDown,
		Pos:  geom.Vec2{X: 400, Y: 280}, // inside the Start button
	})
	assert.True(t, consumed)
	assert.Equal(t, "not_level", e.Levels().Current().Name)
}

func TestExitButtonStopsEngine(t *testing.T) {
	e, _ := newTestEngine(t)

	e.HandleEvent(input.PointerEvent{
		Kind: input.PointerDown,
		Pos:  geom.Vec2{X: 400, Y: 370}, // inside the Exit button
	})
	assert.False(t, e.Running())
}

func TestButtonClickPropagatesToLED(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.Levels().Load("not_level"))

	e.Update(0.016)
	snap := e.Snapshot()
	require.Len(t, snap.LEDs, 1)
	assert.True(t, snap.LEDs[0].On, "NOT(false) lights the led")

	e.HandleEvent(input.PointerEvent{
		Kind: input.PointerDown,
		Pos:  geom.Vec2{X: 140, Y: 140}, // center of button a
	})
	e.Update(0.016)
	snap = e.Snapshot()
	assert.True(t, snap.Buttons[0].State)
	assert.False(t, snap.LEDs[0].On)
}

func TestToggleEventsReachTheBus(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.Levels().Load("not_level"))

	var toggles []events.Event
	e.Bus().Subscribe(events.TypeButtonToggled, func(ev events.Event) error {
		toggles = append(toggles, ev)
		return nil
	})

	e.HandleEvent(input.PointerEvent{Kind: input.PointerDown, Pos: geom.Vec2{X: 140, Y: 140}})
	require.Len(t, toggles, 1)
	assert.Equal(t, "a", toggles[0].Source)
	assert.Equal(t, true, toggles[0].Data)
}

func TestMenuActivationEvent(t *testing.T) {
	e, _ := newTestEngine(t)

	var activated []string
	e.Bus().Subscribe(events.TypeMenuActivated, func(ev events.Event) error {
		activated = append(activated, ev.Source)
		return nil
	})

	e.HandleEvent(input.PointerEvent{Kind: input.PointerDown, Pos: geom.Vec2{X: 400, Y: 280}})
	assert.Equal(t, []string{"start"}, activated)
}

func TestSnapshotWithoutLevel(t *testing.T) {
	settings := config.Default()
	settings.Levels.Dir = t.TempDir()
	e := New(settings, render.NewRecorder(), log.Nop())

	snap := e.Snapshot()
	assert.Empty(t, snap.Buttons)
	assert.Empty(t, snap.Gates)
}

func TestHoverTracksPointer(t *testing.T) {
	e, _ := newTestEngine(t)

	menu := e.Levels().Current().Menus[0]
	e.HandleEvent(input.PointerEvent{Kind: input.PointerMove, Pos: geom.Vec2{X: 400, Y: 280}})
	assert.True(t, menu.Hovered())

	e.HandleEvent(input.PointerEvent{Kind: input.PointerMove, Pos: geom.Vec2{X: 5, Y: 5}})
	assert.False(t, menu.Hovered())
}
