package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/trapland/collision"
	"github.com/automoto/trapland/config"
	"github.com/automoto/trapland/gamemath"
)

const dt = 1.0 / 60.0

func groundedPlayer(x, y float64) *PlayerData {
	p := NewPlayerData(x, y)
	p.OnGround = true
	return &p
}

func TestJumpFromGround(t *testing.T) {
	p := groundedPlayer(0, 0)

	p.HandleMovement(dt, Intent{Jump: true, JumpPressed: true})

	assert.Equal(t, config.Jumping, p.State)
	assert.False(t, p.OnGround, "jump clears grounded within the same frame")
	assert.True(t, p.Jumping)
	assert.True(t, p.JustJumped)
	assert.Negative(t, p.VelY, "held jump sets an upward velocity")
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	p := NewPlayerData(0, 0)
	p.OnGround = false

	p.HandleMovement(dt, Intent{Jump: true, JumpPressed: true})

	assert.False(t, p.Jumping)
	assert.Positive(t, p.VelY, "gravity keeps pulling down")
}

func TestJumpForceWeakensInSecondHalf(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.HandleMovement(dt, Intent{Jump: true, JumpPressed: true})
	earlyVel := p.VelY

	p.JumpTimer = config.Player.JumpDuration/2 + 0.01
	p.HandleMovement(dt, Intent{Jump: true})
	lateVel := p.VelY

	require.Negative(t, earlyVel)
	require.Negative(t, lateVel)
	assert.Greater(t, lateVel, earlyVel, "second-half jump force is reduced")
}

func TestJumpEndsAfterDuration(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.HandleMovement(dt, Intent{Jump: true, JumpPressed: true})

	p.JumpTimer = config.Player.JumpDuration + 0.01
	p.HandleMovement(dt, Intent{Jump: true})

	assert.False(t, p.Jumping)
	assert.Zero(t, p.JumpTimer)
	assert.Positive(t, p.VelY, "gravity takes over once the jump expires")
}

func TestLandingResetsJump(t *testing.T) {
	p := NewPlayerData(0, 0)
	p.OnGround = false
	p.Jumping = true
	p.JumpTimer = 0.2
	p.VelY = 100

	platform := NewPlatformData(gamemath.NewAABB(0, 100, 64, 32), PlatformSolid)
	p.OnCollision(&platform, 0, -1, 3)

	assert.Zero(t, p.VelY)
	assert.True(t, p.OnGround)
	assert.False(t, p.Jumping)
	assert.Zero(t, p.JumpTimer)
	assert.True(t, p.JustLanded)
}

func TestCeilingHitCancelsJump(t *testing.T) {
	p := NewPlayerData(0, 0)
	p.OnGround = false
	p.Jumping = true
	p.VelY = -300

	platform := NewPlatformData(gamemath.NewAABB(0, -32, 64, 32), PlatformSolid)
	p.OnCollision(&platform, 0, 1, 2)

	assert.Zero(t, p.VelY)
	assert.False(t, p.OnGround)
	assert.False(t, p.Jumping)
}

func TestSideCollisionStopsHorizontalMotion(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.VelX = config.Player.MoveSpeed

	platform := NewPlatformData(gamemath.NewAABB(40, 0, 32, 64), PlatformSolid)
	p.OnCollision(&platform, -1, 0, 2)

	assert.Zero(t, p.VelX)
	assert.False(t, p.OnGround)
}

func TestGroundedPlayerDoesNotSink(t *testing.T) {
	p := groundedPlayer(0, 0)

	p.HandleMovement(dt, Intent{})
	require.Positive(t, p.VelY, "gravity contribution before the clamp")
	p.Update(dt)

	assert.Zero(t, p.VelY, "downward velocity clamped while grounded")
	assert.Zero(t, p.PosY, "no vertical movement while standing")
	assert.Equal(t, config.Idle, p.State)
}

func TestHorizontalMovement(t *testing.T) {
	p := groundedPlayer(0, 0)

	p.HandleMovement(dt, Intent{MoveRight: true})
	p.Update(dt)

	assert.Equal(t, config.Moving, p.State)
	assert.Equal(t, config.DirectionRight, p.Facing)
	assert.InDelta(t, config.Player.MoveSpeed*dt, p.PosX, 1e-9)

	p.HandleMovement(dt, Intent{MoveLeft: true})
	assert.Equal(t, config.DirectionLeft, p.Facing)
	assert.Equal(t, -config.Player.MoveSpeed, p.VelX)
}

func TestOpposingInputsCancel(t *testing.T) {
	p := groundedPlayer(0, 0)

	p.HandleMovement(dt, Intent{MoveLeft: true, MoveRight: true})

	assert.Zero(t, p.VelX)
	assert.Equal(t, config.Idle, p.State)
}

func TestSlowedHalvesMoveSpeed(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.Slowed = true

	p.HandleMovement(dt, Intent{MoveRight: true})

	assert.Equal(t, config.Player.MoveSpeed*config.Player.SlowMultiplier, p.VelX)
}

func TestSlowedWeakensOnlyReducedJumpPhase(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.Slowed = true
	p.HandleMovement(dt, Intent{Jump: true, JumpPressed: true})
	initialVel := p.VelY

	assert.Equal(t, -config.Player.JumpForce*dt, initialVel,
		"the initial impulse is at full strength even while slowed")

	p.JumpTimer = config.Player.JumpDuration/2 + 0.01
	p.HandleMovement(dt, Intent{Jump: true})

	weakened := config.Player.JumpForce * config.Player.JumpFalloff * config.Player.SlowMultiplier
	assert.InDelta(t, -weakened*dt, p.VelY, 1e-9)
}

func TestCrouchStopsEverything(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.VelX = 100
	p.VelY = 50

	p.HandleMovement(dt, Intent{Crouch: true, MoveRight: true})
	p.Update(dt)

	assert.Equal(t, config.Crouching, p.State)
	assert.Zero(t, p.VelX)
	assert.Zero(t, p.VelY)
	assert.Zero(t, p.PosX, "crouch short-circuits integration")
	assert.Zero(t, p.PosY)
}

func TestCrouchIgnoredAirborne(t *testing.T) {
	p := NewPlayerData(0, 0)
	p.OnGround = false

	p.HandleMovement(dt, Intent{Crouch: true})

	assert.NotEqual(t, config.Crouching, p.State)
	assert.Positive(t, p.VelY)
}

func TestFastFallOnlyAirborne(t *testing.T) {
	air := NewPlayerData(0, 0)
	air.OnGround = false
	air.HandleMovement(dt, Intent{})
	plain := air.VelY

	air2 := NewPlayerData(0, 0)
	air2.OnGround = false
	air2.HandleMovement(dt, Intent{FastFall: true})
	assert.Greater(t, air2.VelY, plain, "fast-fall adds downward velocity")

	ground := groundedPlayer(0, 0)
	ground.HandleMovement(dt, Intent{FastFall: true})
	assert.Equal(t, plain, ground.VelY, "fast-fall is a no-op on the ground")
}

func TestDashLifecycle(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.Facing = config.DirectionRight

	p.HandleMovement(dt, Intent{DashPressed: true})
	require.True(t, p.Dashing)
	require.True(t, p.JustDashed)
	assert.Equal(t, config.DirectionRight, p.DashDir)

	// Horizontal input is ignored for the whole dash.
	frames := 0
	for p.Dashing {
		p.HandleMovement(dt, Intent{MoveLeft: true})
		p.Update(dt)
		frames++
		require.Less(t, frames, 1000, "dash must terminate")
	}

	assert.Positive(t, p.PosX, "dash carried the player right despite left input")
	assert.InDelta(t, config.Player.DashSpeed*config.Player.DashDuration, p.PosX,
		config.Player.DashSpeed*dt*2)
	assert.Equal(t, config.Player.DashCooldown, p.DashCooldown)
}

func TestDashBlockedByCooldown(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.DashCooldown = 0.5

	p.HandleMovement(dt, Intent{DashPressed: true})

	assert.False(t, p.Dashing)
	assert.False(t, p.JustDashed)
}

func TestDashCancelsJump(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.HandleMovement(dt, Intent{Jump: true, JumpPressed: true})
	require.True(t, p.Jumping)

	p.HandleMovement(dt, Intent{DashPressed: true})

	assert.True(t, p.Dashing)
	assert.False(t, p.Jumping)
	assert.Zero(t, p.JumpTimer)
}

func TestBoundsShrinkByState(t *testing.T) {
	p := groundedPlayer(0, 0)

	p.State = config.Idle
	idle := p.Bounds()
	assert.Less(t, idle.W, p.Width)
	assert.Less(t, idle.H, p.Height)
	assert.InDelta(t, p.PosY+p.Height, idle.Bottom(), 1e-9, "idle hitbox keeps the feet")

	p.State = config.Crouching
	crouch := p.Bounds()
	assert.Less(t, crouch.H, idle.H, "crouch hitbox is shorter")
	assert.InDelta(t, idle.Bottom(), crouch.Bottom(), 1e-9)
}

func TestBoundsMirrorWithFacing(t *testing.T) {
	p := groundedPlayer(0, 0)
	p.State = config.Moving

	p.Facing = config.DirectionRight
	right := p.Bounds()
	p.Facing = config.DirectionLeft
	left := p.Bounds()

	in := config.Player.Insets[config.Moving]
	require.NotEqual(t, in.Front, in.Back, "asymmetric insets required for this test")
	assert.NotEqual(t, right.X, left.X, "hitbox mirrors around the sprite")
	assert.InDelta(t, right.W, left.W, 1e-9)
}

func TestGroundProbeSitsUnderFeet(t *testing.T) {
	p := groundedPlayer(10, 20)

	b := p.Bounds()
	probe := p.GroundProbe()

	assert.Equal(t, b.X, probe.X)
	assert.Equal(t, b.Bottom(), probe.Y)
	assert.Equal(t, b.W, probe.W)
	assert.Equal(t, config.World.GroundProbeHeight, probe.H)
}

func TestRespawnRestoresSpawnState(t *testing.T) {
	p := NewPlayerData(100, 200)
	p.PosX = 500
	p.PosY = 50
	p.VelX = 10
	p.VelY = -20
	p.Dashing = true
	p.Jumping = true
	p.Die()
	require.True(t, p.Dead)

	p.Respawn()

	assert.Equal(t, 100.0, p.PosX)
	assert.Equal(t, 200.0, p.PosY)
	assert.Zero(t, p.VelX)
	assert.Zero(t, p.VelY)
	assert.False(t, p.Dashing)
	assert.False(t, p.Jumping)
	assert.False(t, p.Dead)
	assert.Equal(t, config.Idle, p.State)
}

// Falling onto a platform top: the resolver must push the player back up
// so its feet align with the surface and the landing callback fires.
func TestFallingPlayerLandsOnPlatform(t *testing.T) {
	p := NewPlayerData(50, 300-48+4) // hitbox bottom 4px into the platform
	p.OnGround = false
	p.VelY = 500

	platform := NewPlatformData(gamemath.NewAABB(0, 300, 200, 32), PlatformSolid)
	r := collision.NewResolver()
	r.Resolve(&p, []collision.Collidable{&platform})

	assert.InDelta(t, 300.0, p.Bounds().Bottom(), 1e-9)
	assert.True(t, p.OnGround)
	assert.Zero(t, p.VelY)
}

func TestTrapKillsOnlyOnReducedBounds(t *testing.T) {
	trap := NewPlatformData(gamemath.NewAABB(0, 0, 32, 32), PlatformTrap)
	reduced := trap.Bounds()
	require.Less(t, reduced.W, 32.0)

	r := collision.NewResolver()

	// Hitbox overlaps the render rect but stops short of the inset.
	graze := NewPlayerData(-26, 0)
	graze.OnGround = true
	require.Less(t, graze.Bounds().Right(), reduced.X)
	r.Resolve(&graze, []collision.Collidable{&trap})
	assert.False(t, graze.Dead)

	// Hitbox overlaps the reduced bounds.
	hit := NewPlayerData(-12, 0)
	hit.OnGround = true
	require.Greater(t, hit.Bounds().Right(), reduced.X)
	r.Resolve(&hit, []collision.Collidable{&trap})
	assert.True(t, hit.Dead)
}
