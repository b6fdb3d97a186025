package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{Pos: Vec2{10, 20}, Size: Vec2{80, 40}}

	assert.True(t, r.Contains(Vec2{50, 40}))
	assert.True(t, r.Contains(Vec2{10, 20}), "top-left edge counts as inside")
	assert.True(t, r.Contains(Vec2{90, 60}), "bottom-right edge counts as inside")
	assert.False(t, r.Contains(Vec2{9, 40}))
	assert.False(t, r.Contains(Vec2{50, 61}))
}

func TestCircleContains(t *testing.T) {
	c := Circle{Center: Vec2{100, 100}, Radius: 30}

	assert.True(t, c.Contains(Vec2{100, 100}))
	assert.True(t, c.Contains(Vec2{130, 100}), "boundary counts as inside")
	assert.False(t, c.Contains(Vec2{131, 100}))
	assert.False(t, c.Contains(Vec2{122, 122}))
}

func TestRectCenter(t *testing.T) {
	r := Rect{Pos: Vec2{0, 0}, Size: Vec2{80, 40}}
	assert.Equal(t, Vec2{40, 20}, r.Center())
}
