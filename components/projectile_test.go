package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/trapland/collision"
	"github.com/automoto/trapland/config"
	"github.com/automoto/trapland/gamemath"
)

func TestCoinStaysPutAndBobs(t *testing.T) {
	coin := NewCoinData(100, 50)

	for i := 0; i < 30; i++ {
		coin.Update(dt)
	}

	b := coin.Bounds()
	assert.Equal(t, 100.0, b.X, "collision bounds stay at the spawn point")
	assert.Equal(t, 50.0, b.Y)
	assert.NotZero(t, coin.BobOffset(), "render offset oscillates")
	assert.LessOrEqual(t, coin.BobOffset(), config.Coin.BobAmplitude)
	assert.GreaterOrEqual(t, coin.BobOffset(), -config.Coin.BobAmplitude)
}

func TestCoinPickedUpByPlayer(t *testing.T) {
	coin := NewCoinData(100, 50)
	p := NewPlayerData(100, 30)
	p.OnGround = true

	r := collision.NewResolver()
	r.Resolve(&p, []collision.Collidable{&coin})

	assert.True(t, coin.Removed)
	assert.False(t, p.Dead, "coins never hurt")
	assert.True(t, coin.Bounds().Empty(), "removed coin leaves the collision set")
}

func TestRemovedCoinIgnoresFurtherContact(t *testing.T) {
	coin := NewCoinData(100, 50)
	coin.Removed = true
	p := NewPlayerData(100, 30)

	r := collision.NewResolver()
	r.Resolve(&p, []collision.Collidable{&coin})

	assert.True(t, coin.Bounds().Empty())
}

func TestArrowGravityCompounds(t *testing.T) {
	arrow := NewArrowData(0, 0, config.Arrow.Speed, 0)

	arrow.Update(dt)
	v1 := arrow.VelY
	arrow.Update(dt)
	v2 := arrow.VelY

	require.Positive(t, v1)
	assert.Greater(t, v2, v1, "arrow fall speed accumulates, unlike the player's")
	assert.Positive(t, arrow.Rect.X, "horizontal flight continues")
}

func TestArrowKillsPlayerAndRespawns(t *testing.T) {
	arrow := NewArrowData(200, 40, -config.Arrow.Speed, 0)
	arrow.Rect.X = 105
	arrow.Rect.Y = 45
	arrow.VelY = 60
	p := NewPlayerData(100, 30)

	r := collision.NewResolver()
	r.Resolve(&p, []collision.Collidable{&arrow})

	assert.True(t, p.Dead)
	assert.Equal(t, 200.0, arrow.OriginX)
	assert.Equal(t, arrow.SpawnVelX, arrow.VelX, "respawn restores launch velocity")
	assert.Equal(t, arrow.SpawnVelY, arrow.VelY)
}

func TestArrowRespawnsOnObstacleHit(t *testing.T) {
	arrow := NewArrowData(200, 40, -config.Arrow.Speed, 0)
	arrow.Rect.X = 30
	arrow.Rect.Y = 40
	wall := NewPlatformData(gamemath.NewAABB(0, 0, 32, 200), PlatformSolid)

	r := collision.NewResolver()
	r.Resolve(&arrow, []collision.Collidable{&wall})

	assert.InDelta(t, 200.0, arrow.Rect.X, float64(config.Arrow.Width),
		"back near the spawn point (resolver correction may nudge it)")
	assert.Equal(t, arrow.SpawnVelX, arrow.VelX)
}

func TestArrowRespawnsOutsideWorld(t *testing.T) {
	world := gamemath.NewAABB(0, 0, 1280, 480)
	arrow := NewArrowData(600, 100, config.Arrow.Speed, 0)
	arrow.Rect.X = 1300

	arrow.CheckWorldBounds(world)

	assert.Equal(t, 600.0, arrow.Rect.X)
	assert.Equal(t, 100.0, arrow.Rect.Y)
}

func TestCoinRemovedOutsideWorld(t *testing.T) {
	world := gamemath.NewAABB(0, 0, 1280, 480)
	coin := NewCoinData(100, 50)
	coin.Rect.Y = 500

	coin.CheckWorldBounds(world)

	assert.True(t, coin.Removed)
}

func TestProjectileInsideWorldUntouched(t *testing.T) {
	world := gamemath.NewAABB(0, 0, 1280, 480)
	arrow := NewArrowData(600, 100, config.Arrow.Speed, 0)

	arrow.CheckWorldBounds(world)

	assert.Equal(t, 600.0, arrow.Rect.X)
	assert.False(t, arrow.Removed)
}
