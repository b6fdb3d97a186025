package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/circuitplay/circuitplay/internal/core/render"
	"github.com/circuitplay/circuitplay/pkg/geom"
)

func TestMenuButtonActivate(t *testing.T) {
	btn := NewMenuButton("start", "Start", geom.Rect{
		Pos:  geom.Vec2{X: 250, Y: 250},
		Size: geom.Vec2{X: 300, Y: 75},
	})

	fired := 0
	btn.OnActivate(func() { fired++ })

	btn.Activate()
	btn.Activate()
	assert.Equal(t, 2, fired, "momentary: fires every click, no state")
}

func TestMenuButtonActivateWithoutCallback(t *testing.T) {
	btn := NewMenuButton("start", "Start", geom.Rect{Size: geom.Vec2{X: 100, Y: 45}})
	assert.NotPanics(t, func() { btn.Activate() })
}

func TestMenuButtonHitTestIsRectangular(t *testing.T) {
	btn := NewMenuButton("start", "Start", geom.Rect{
		Pos:  geom.Vec2{X: 10, Y: 10},
		Size: geom.Vec2{X: 100, Y: 40},
	})

	assert.True(t, btn.ContainsPoint(geom.Vec2{X: 11, Y: 11}), "corners count")
	assert.False(t, btn.ContainsPoint(geom.Vec2{X: 111, Y: 30}))
}

func TestMenuButtonHoverColor(t *testing.T) {
	btn := NewMenuButton("start", "Start", geom.Rect{Size: geom.Vec2{X: 100, Y: 45}})

	rec := render.NewRecorder()
	rec.Begin(render.ColorBackground)
	btn.Render(rec)
	rec.End()
	assert.Equal(t, render.ColorMenuIdle, rec.Commands[0].Color)

	btn.SetHovered(true)
	rec.Begin(render.ColorBackground)
	btn.Render(rec)
	rec.End()
	assert.Equal(t, render.ColorMenuHover, rec.Commands[0].Color)
}
