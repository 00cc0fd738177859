package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/trapland/collision"
	"github.com/automoto/trapland/config"
	"github.com/automoto/trapland/gamemath"
)

func stepPlatform(pl *PlatformData, seconds float64) bool {
	vanished := false
	steps := int(seconds/dt) + 1
	for i := 0; i < steps; i++ {
		if pl.Update(dt) {
			vanished = true
		}
	}
	return vanished
}

func TestSolidPlatformNeverChanges(t *testing.T) {
	pl := NewPlatformData(gamemath.NewAABB(0, 0, 64, 32), PlatformSolid)

	pl.Update(10)

	assert.Equal(t, Visible, pl.State)
	assert.True(t, pl.Solid())
	assert.Equal(t, gamemath.NewAABB(0, 0, 64, 32), pl.Bounds())
}

func TestTrapBoundsAreInset(t *testing.T) {
	pl := NewPlatformData(gamemath.NewAABB(10, 20, 32, 32), PlatformTrap)

	b := pl.Bounds()

	inset := config.Trap.HitboxReduction * 32
	assert.InDelta(t, 10+inset, b.X, 1e-9)
	assert.InDelta(t, 20+inset, b.Y, 1e-9)
	assert.InDelta(t, 32-2*inset, b.W, 1e-9)
	assert.InDelta(t, 32-2*inset, b.H, 1e-9)
}

func TestDisappearingCycle(t *testing.T) {
	pl := NewPlatformData(gamemath.NewAABB(0, 100, 64, 16), PlatformDisappearing)
	p := NewPlayerData(10, 100-48)

	// Landing from above: the platform sees the normal pointing down
	// into itself.
	pl.OnCollision(&p, 0, 1, 2)
	require.True(t, pl.Triggered)
	require.Equal(t, Visible, pl.State)

	pl.Update(dt)
	assert.Equal(t, Disappearing, pl.State)
	assert.True(t, pl.Solid(), "still solid while fading out")
	assert.False(t, pl.Bounds().Empty())

	vanished := stepPlatform(&pl, config.Disappearing.DisappearDelay)
	assert.True(t, vanished, "vanish reported exactly once")
	assert.Equal(t, Disappeared, pl.State)
	assert.False(t, pl.Solid())
	assert.True(t, pl.Bounds().Empty(), "no hitbox while gone")
	assert.False(t, pl.Rendered())

	stepPlatform(&pl, config.Disappearing.ReappearDelay)
	pl.Update(dt) // Reappearing resolves on the next frame
	assert.Equal(t, Visible, pl.State)
	assert.True(t, pl.Solid())
	assert.False(t, pl.Triggered, "trigger latch cleared for the next cycle")
	assert.Equal(t, float32(1), pl.Alpha)
}

func TestDisappearingTriggersOncePerCycle(t *testing.T) {
	pl := NewPlatformData(gamemath.NewAABB(0, 100, 64, 16), PlatformDisappearing)
	p := NewPlayerData(10, 100-48)

	pl.OnCollision(&p, 0, 1, 2)
	require.True(t, pl.Triggered)
	pl.Update(dt)
	require.Equal(t, Disappearing, pl.State)

	// A second landing mid-cycle must not restart the timers.
	pl.OnCollision(&p, 0, 1, 2)
	timer := pl.Timer
	pl.Update(dt)
	assert.Equal(t, Disappearing, pl.State)
	assert.Greater(t, pl.Timer, timer)
}

func TestDisappearingIgnoresSideAndBottomHits(t *testing.T) {
	pl := NewPlatformData(gamemath.NewAABB(0, 100, 64, 16), PlatformDisappearing)
	p := NewPlayerData(0, 0)

	pl.OnCollision(&p, 1, 0, 2)  // side
	pl.OnCollision(&p, 0, -1, 2) // from below
	assert.False(t, pl.Triggered)
}

func TestDisappearingIgnoresProjectiles(t *testing.T) {
	pl := NewPlatformData(gamemath.NewAABB(0, 100, 64, 16), PlatformDisappearing)
	coin := NewCoinData(0, 0)

	pl.OnCollision(&coin, 0, 1, 2)

	assert.False(t, pl.Triggered)
}

func TestPlatformAlphaFadesWhileDisappearing(t *testing.T) {
	pl := NewPlatformData(gamemath.NewAABB(0, 0, 32, 32), PlatformDisappearing)
	p := NewPlayerData(0, -48)
	pl.OnCollision(&p, 0, 1, 1)
	pl.Update(dt)
	require.Equal(t, Disappearing, pl.State)

	first := pl.Alpha
	pl.Update(dt)
	assert.Less(t, pl.Alpha, first, "alpha decreases over the fade")
}

// A full resolver pass: the player lands on a visible disappearing
// platform, which both supports the player and arms the trigger.
func TestLandingTriggersDisappearingPlatform(t *testing.T) {
	pl := NewPlatformData(gamemath.NewAABB(0, 300, 200, 16), PlatformDisappearing)
	p := NewPlayerData(50, 300-48+3)
	p.OnGround = false
	p.VelY = 400

	r := collision.NewResolver()
	r.Resolve(&p, []collision.Collidable{&pl})

	assert.True(t, p.OnGround)
	assert.InDelta(t, 300.0, p.Bounds().Bottom(), 1e-9)
	assert.True(t, pl.Triggered)
}
