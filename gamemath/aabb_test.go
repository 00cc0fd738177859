package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersects(t *testing.T) {
	base := NewAABB(0, 0, 32, 32)

	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"identical", NewAABB(0, 0, 32, 32), true},
		{"partial overlap", NewAABB(16, 16, 32, 32), true},
		{"contained", NewAABB(8, 8, 8, 8), true},
		{"separated right", NewAABB(64, 0, 32, 32), false},
		{"separated below", NewAABB(0, 64, 32, 32), false},
		{"touching right edge", NewAABB(32, 0, 32, 32), false},
		{"touching bottom edge", NewAABB(0, 32, 32, 32), false},
		{"touching corner", NewAABB(32, 32, 32, 32), false},
		{"zero width", NewAABB(10, 10, 0, 32), false},
		{"negative height", NewAABB(10, 10, 32, -4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(base, tt.other))
			assert.Equal(t, tt.want, Intersects(tt.other, base))
		})
	}
}

func TestIntersectsDegenerateSelf(t *testing.T) {
	zero := NewAABB(5, 5, 0, 0)
	assert.False(t, Intersects(zero, zero))
}

func TestMTVSeparatesBoxes(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
	}{
		{"shallow from left", NewAABB(0, 0, 32, 32), NewAABB(28, 0, 32, 32)},
		{"shallow from right", NewAABB(28, 0, 32, 32), NewAABB(0, 0, 32, 32)},
		{"shallow from above", NewAABB(0, 0, 32, 48), NewAABB(0, 44, 32, 32)},
		{"shallow from below", NewAABB(0, 44, 32, 32), NewAABB(0, 0, 32, 48)},
		{"corner graze", NewAABB(0, 0, 32, 32), NewAABB(30, 28, 32, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, Intersects(tt.a, tt.b))

			nx, ny, pen := MTV(tt.a, tt.b)
			assert.GreaterOrEqual(t, pen, 0.0)

			moved := tt.a
			moved.X += nx * pen
			moved.Y += ny * pen
			assert.False(t, Intersects(moved, tt.b), "translation by normal*penetration must separate the boxes")
		})
	}
}

func TestMTVNormalDirection(t *testing.T) {
	// Falling onto a platform: mover above, overlap smaller on Y.
	player := NewAABB(0, 280, 32, 48)
	platform := NewAABB(0, 300, 32, 32)

	nx, ny, pen := MTV(player, platform)
	assert.Equal(t, 0.0, nx)
	assert.Equal(t, -1.0, ny, "mover centered above the platform is pushed up")
	assert.InDelta(t, 28.0, pen, 1e-9)

	// Walking into a wall from the left.
	player = NewAABB(0, 0, 32, 48)
	wall := NewAABB(28, 0, 32, 48)
	nx, ny, _ = MTV(player, wall)
	assert.Equal(t, -1.0, nx)
	assert.Equal(t, 0.0, ny)
}

func TestMTVTieBreakPrefersHorizontal(t *testing.T) {
	// The vertical axis is taken only when its overlap is strictly
	// smaller, so an exact tie resolves along the horizontal axis.
	a := NewAABB(0, 0, 32, 32)
	b := NewAABB(16, 16, 32, 32) // 16px overlap on both axes

	nx, ny, pen := MTV(a, b)
	assert.InDelta(t, 16.0, pen, 1e-9)
	assert.Equal(t, -1.0, nx, "tie must separate horizontally")
	assert.Equal(t, 0.0, ny)
}

func TestInset(t *testing.T) {
	box := NewAABB(100, 200, 32, 32).Inset(0.125)
	assert.InDelta(t, 104, box.X, 1e-9)
	assert.InDelta(t, 204, box.Y, 1e-9)
	assert.InDelta(t, 24, box.W, 1e-9)
	assert.InDelta(t, 24, box.H, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(10, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
}
