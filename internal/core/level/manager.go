package level

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/circuitplay/circuitplay/internal/core/events"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

var (
	// ErrLevelNotFound reports a level name with no file behind it.
	ErrLevelNotFound = errors.New("level not found")
	// ErrNoNextLevel reports an Advance from a terminal level.
	ErrNoNextLevel = errors.New("no next level")
)

// Entry describes one level file discovered by Scan.
type Entry struct {
	Name       string
	Path       string
	Digest     uint64
	Components int
}

// Manager loads levels from a directory and swaps the live scene
// atomically: a level that fails to build leaves the previous scene
// running untouched.
type Manager struct {
	dir        string
	menu       string
	windowSize geom.Vec2

	bus    *events.Bus
	log    log.Log
	onExit func()

	current       *Scene
	currentDigest uint64
	index         map[string]Entry
}

// NewManager creates a manager rooted at dir. menu names the level that
// acts as the main menu; onExit is invoked by the exit_game action.
func NewManager(dir, menu string, windowSize geom.Vec2, bus *events.Bus, logger log.Log, onExit func()) *Manager {
	return &Manager{
		dir:        dir,
		menu:       menu,
		windowSize: windowSize,
		bus:        bus,
		log:        logger.With(log.String("system", "levels")),
		onExit:     onExit,
		index:      make(map[string]Entry),
	}
}

// Current returns the live scene, or nil before the first load.
func (m *Manager) Current() *Scene { return m.current }

// Index returns the scanned entries sorted by name.
func (m *Manager) Index() []Entry {
	out := make([]Entry, 0, len(m.index))
	for _, e := range m.index {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Scan parses every level file in the directory concurrently and builds
// the name→file index. Any file that fails to parse fails the scan: a
// broken level should surface at startup, not when the player reaches it.
func (m *Manager) Scan(ctx context.Context) error {
	names, err := os.ReadDir(m.dir)
	if err != nil {
		return fmt.Errorf("scan levels: %w", err)
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, entry := range names {
		if entry.IsDir() || !isLevelFile(entry.Name()) {
			continue
		}
		path := filepath.Join(m.dir, entry.Name())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			desc, err := decodeFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			m.index[levelName(path)] = Entry{
				Name:       levelName(path),
				Path:       path,
				Digest:     desc.Digest(),
				Components: len(desc.Components),
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	m.log.Info("scanned levels", log.String("dir", m.dir), log.Int("count", len(m.index)))
	return nil
}

// Load reads, validates and builds the named level, then swaps it in.
// Reloading the currently active level with unchanged content is a no-op.
func (m *Manager) Load(name string) error {
	path, err := m.resolve(name)
	if err != nil {
		return err
	}

	desc, err := decodeFile(path)
	if err != nil {
		m.failed(name, err)
		return err
	}

	if m.current != nil && m.current.Name == desc.Name && m.currentDigest == desc.Digest() {
		m.log.Debug("level unchanged, keeping live scene",
			log.String("level", name),
			log.Uint64("digest", desc.Digest()))
		return nil
	}

	scene, err := Build(desc, m.callbacks(), m.windowSize, m.log)
	if err != nil {
		m.failed(name, err)
		return fmt.Errorf("load level %q: %w", name, err)
	}

	if m.current != nil {
		m.current.Destroy()
	}
	m.current = scene
	m.currentDigest = desc.Digest()

	m.log.Info("loaded level",
		log.String("level", scene.Name),
		log.Int("components", len(desc.Components)),
		log.Int("connections", len(desc.Connections)),
		log.Uint64("digest", desc.Digest()))
	_ = m.bus.Publish(events.New(events.TypeLevelLoaded, scene.Name, nil))
	return nil
}

// Advance loads the level named by the current scene's next pointer.
func (m *Manager) Advance() error {
	if m.current == nil || m.current.Next == "" {
		return ErrNoNextLevel
	}
	return m.Load(m.current.Next)
}

// callbacks binds the standard menu action names.
func (m *Manager) callbacks() Callbacks {
	return Callbacks{
		"start_game": func() {
			if err := m.Advance(); err != nil {
				m.log.Warn("start_game failed", log.Err(err))
			}
		},
		"back_to_menu": func() {
			if err := m.Load(m.menu); err != nil {
				m.log.Warn("back_to_menu failed", log.Err(err))
			}
		},
		"exit_game": func() {
			if m.onExit != nil {
				m.onExit()
			}
		},
	}
}

func (m *Manager) failed(name string, err error) {
	m.log.Error("level load failed", log.String("level", name), log.Err(err))
	_ = m.bus.Publish(events.New(events.TypeLevelFailed, name, err.Error()))
}

func (m *Manager) resolve(name string) (string, error) {
	if e, ok := m.index[name]; ok {
		return e.Path, nil
	}
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(m.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q in %s", ErrLevelNotFound, name, m.dir)
}

func decodeFile(path string) (Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return DecodeYAML(f)
	}
	return DecodeJSON(f)
}

func isLevelFile(name string) bool {
	return strings.HasSuffix(name, ".json") ||
		strings.HasSuffix(name, ".yaml") ||
		strings.HasSuffix(name, ".yml")
}

func levelName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
