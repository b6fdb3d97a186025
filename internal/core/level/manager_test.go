package level

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circuitplay/circuitplay/internal/core/events"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
)

const menuJSON = `{
  "name": "menu",
  "next": "and_intro",
  "components": [
    {"id": "bg", "type": "background"},
    {"id": "title", "type": "text", "text": "Circuit Play", "position": [400, 90], "font_size": 60},
    {"id": "start", "type": "menu_button", "text": "Start", "position": [250, 250], "size": [300, 75], "callback": "start_game"},
    {"id": "exit", "type": "menu_button", "text": "Exit", "position": [250, 340], "size": [300, 75], "callback": "exit_game"}
  ],
  "connections": []
}`

func writeLevels(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.json"), []byte(menuJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "and_intro.json"), []byte(andLevelJSON), 0o644))
	return dir
}

func newTestManager(t *testing.T, dir string, onExit func()) *Manager {
	t.Helper()
	return NewManager(dir, "menu", testWindow, events.NewBus(), log.Nop(), onExit)
}

func TestScanIndexesDirectory(t *testing.T) {
	m := newTestManager(t, writeLevels(t), nil)
	require.NoError(t, m.Scan(context.Background()))

	index := m.Index()
	require.Len(t, index, 2)
	assert.Equal(t, "and_intro", index[0].Name)
	assert.Equal(t, "menu", index[1].Name)
	assert.NotZero(t, index[0].Digest)
	assert.Equal(t, 7, index[0].Components)
}

func TestScanFailsOnBrokenLevel(t *testing.T) {
	dir := writeLevels(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"name":`), 0o644))

	m := newTestManager(t, dir, nil)
	assert.Error(t, m.Scan(context.Background()), "broken levels surface at startup")
}

func TestLoadAndAdvance(t *testing.T) {
	m := newTestManager(t, writeLevels(t), nil)

	require.NoError(t, m.Load("menu"))
	require.NotNil(t, m.Current())
	assert.Equal(t, "menu", m.Current().Name)

	require.NoError(t, m.Advance())
	assert.Equal(t, "AND Intro", m.Current().Name)

	assert.ErrorIs(t, m.Advance(), ErrLevelNotFound, "and_intro's next does not exist on disk")
}

func TestAdvanceFromTerminalLevel(t *testing.T) {
	dir := t.TempDir()
	terminal := []byte(`{"name": "end", "components": [], "connections": []}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "end.json"), terminal, 0o644))

	m := newTestManager(t, dir, nil)
	require.NoError(t, m.Load("end"))
	assert.ErrorIs(t, m.Advance(), ErrNoNextLevel)
}

func TestLoadUnknownLevel(t *testing.T) {
	m := newTestManager(t, writeLevels(t), nil)
	assert.ErrorIs(t, m.Load("does_not_exist"), ErrLevelNotFound)
}

func TestLoadSkipsUnchangedLevel(t *testing.T) {
	m := newTestManager(t, writeLevels(t), nil)
	require.NoError(t, m.Load("menu"))
	first := m.Current()

	require.NoError(t, m.Load("menu"))
	assert.Same(t, first, m.Current(), "identical content keeps the live scene")
}

func TestLoadReloadsChangedLevel(t *testing.T) {
	dir := writeLevels(t)
	m := newTestManager(t, dir, nil)
	require.NoError(t, m.Load("menu"))
	first := m.Current()

	changed := []byte(`{"name": "menu", "components": [{"id": "bg", "type": "background"}], "connections": []}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.json"), changed, 0o644))

	require.NoError(t, m.Load("menu"))
	assert.NotSame(t, first, m.Current())
}

func TestFailedLoadKeepsPreviousScene(t *testing.T) {
	dir := writeLevels(t)
	m := newTestManager(t, dir, nil)
	require.NoError(t, m.Load("menu"))

	bad := []byte(`{"name": "bad", "components": [
	  {"id": "g", "type": "AND", "position": [0,0], "size": [120,80]}
	], "connections": [{"from": "ghost", "to": "g", "input_index": 0}]}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), bad, 0o644))

	assert.Error(t, m.Load("bad"))
	require.NotNil(t, m.Current())
	assert.Equal(t, "menu", m.Current().Name, "failed load is atomic")
}

func TestMenuCallbacks(t *testing.T) {
	exited := false
	m := newTestManager(t, writeLevels(t), func() { exited = true })
	require.NoError(t, m.Load("menu"))

	start := m.Current().Menus[0]
	exit := m.Current().Menus[1]

	start.Activate()
	assert.Equal(t, "AND Intro", m.Current().Name, "start_game advances past the menu")

	exit.Activate()
	assert.True(t, exited)
}

func TestBackToMenuCallback(t *testing.T) {
	m := newTestManager(t, writeLevels(t), nil)
	require.NoError(t, m.Load("and_intro"))

	require.Len(t, m.Current().Menus, 1)
	m.Current().Menus[0].Activate()
	assert.Equal(t, "menu", m.Current().Name)
}

func TestLoadPublishesEvents(t *testing.T) {
	bus := events.NewBus()
	var loaded, failed []string
	bus.Subscribe(events.TypeLevelLoaded, func(e events.Event) error {
		loaded = append(loaded, e.Source)
		return nil
	})
	bus.Subscribe(events.TypeLevelFailed, func(e events.Event) error {
		failed = append(failed, e.Source)
		return nil
	})

	dir := writeLevels(t)
	m := NewManager(dir, "menu", testWindow, bus, log.Nop(), nil)
	require.NoError(t, m.Load("menu"))
	assert.Equal(t, []string{"menu"}, loaded)

	bad := []byte(`{"name": "bad", "components": [
	  {"id": "g", "type": "AND", "position": [0,0], "size": [120,80]}
	], "connections": [{"from": "ghost", "to": "g", "input_index": 0}]}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), bad, 0o644))
	require.Error(t, m.Load("bad"))
	assert.Equal(t, []string{"bad"}, failed)
}
