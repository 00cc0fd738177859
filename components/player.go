package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/trapland/collision"
	"github.com/automoto/trapland/config"
	"github.com/automoto/trapland/gamemath"
)

// Intent is the player's input for one frame, already translated from
// device state into movement requests.
type Intent struct {
	MoveLeft    bool
	MoveRight   bool
	Jump        bool // Held
	JumpPressed bool // Pressed this frame
	FastFall    bool
	DashPressed bool
	Crouch      bool
}

// PlayerData is the authoritative player body. It owns position,
// velocity and the movement state machine, and implements the collision
// contract so the resolver can push it out of obstacles. It deliberately
// has no dependency on the ECS or the renderer so the movement rules can
// be exercised on their own.
type PlayerData struct {
	// Render rect, top-left anchored. The collision hitbox is a
	// state-dependent inset of this rect.
	PosX, PosY    float64
	Width, Height float64

	VelX, VelY float64

	State    config.StateID
	Facing   int // config.DirectionLeft or config.DirectionRight
	OnGround bool

	// Jump-hold state. Jumping stays true while upward force is still
	// being applied; JumpTimer accumulates held time.
	Jumping   bool
	JumpTimer float64

	Dashing      bool
	DashDir      int
	DashTimer    float64
	DashCooldown float64

	// Slowed is set each frame by the zone check; it scales horizontal
	// speed and the reduced phase of a held jump.
	Slowed bool

	Dead bool

	SpawnX, SpawnY float64

	// Frame-edge flags consumed by the event publisher.
	JustJumped bool
	JustLanded bool
	JustDashed bool
}

var Player = donburi.NewComponentType[PlayerData]()

func NewPlayerData(x, y float64) PlayerData {
	return PlayerData{
		PosX:   x,
		PosY:   y,
		Width:  float64(config.Player.RenderWidth),
		Height: float64(config.Player.RenderHeight),
		State:  config.Idle,
		Facing: config.DirectionRight,
		SpawnX: x,
		SpawnY: y,
	}
}

func (p *PlayerData) Kind() collision.Kind { return collision.KindPlayer }

func (p *PlayerData) Static() bool { return false }

func (p *PlayerData) Position() (float64, float64) { return p.PosX, p.PosY }

// SetPosition moves the render rect. The resolver corrects the hitbox by
// the penetration depth; since the hitbox is a fixed offset of the
// render rect for the current state, moving one moves the other.
func (p *PlayerData) SetPosition(x, y float64) {
	p.PosX = x
	p.PosY = y
}

// Bounds returns the collision hitbox: the render rect shrunk by the
// per-state insets, mirrored horizontally when facing left so the
// front inset always faces the direction of travel.
func (p *PlayerData) Bounds() gamemath.AABB {
	in, ok := config.Player.Insets[p.State]
	if !ok {
		in = config.Player.Insets[config.Idle]
	}

	front := in.Front * p.Width
	back := in.Back * p.Width
	left, right := back, front
	if p.Facing == config.DirectionLeft {
		left, right = front, back
	}
	top := in.Top * p.Height
	bottom := in.Bottom * p.Height

	return gamemath.AABB{
		X: p.PosX + left,
		Y: p.PosY + top,
		W: p.Width - left - right,
		H: p.Height - top - bottom,
	}
}

// GroundProbe is a thin strip directly under the hitbox, used to keep
// OnGround set while standing flush on a surface (flush contact does
// not intersect under the open-interval test).
func (p *PlayerData) GroundProbe() gamemath.AABB {
	b := p.Bounds()
	return gamemath.AABB{
		X: b.X,
		Y: b.Bottom(),
		W: b.W,
		H: config.World.GroundProbeHeight,
	}
}

func (p *PlayerData) effectiveMoveSpeed() float64 {
	if p.Slowed {
		return config.Player.MoveSpeed * config.Player.SlowMultiplier
	}
	return config.Player.MoveSpeed
}

// effectiveJumpForce weakens the jump past the half-way point of a held
// jump; slow zones only sap the weakened phase, the initial impulse is
// always full strength.
func (p *PlayerData) effectiveJumpForce() float64 {
	force := config.Player.JumpForce
	if p.JumpTimer > config.Player.JumpDuration/2 {
		force *= config.Player.JumpFalloff
		if p.Slowed {
			force *= config.Player.SlowMultiplier
		}
	}
	return force
}

// HandleMovement turns this frame's intent into velocities and state.
// It does not move the body; Update integrates afterwards.
func (p *PlayerData) HandleMovement(dt float64, in Intent) {
	p.JustJumped = false
	p.JustDashed = false

	// Crouching is a full stop and only possible on the ground. While
	// crouched nothing else applies, not even gravity.
	if in.Crouch && p.OnGround && !p.Dashing {
		p.VelX = 0
		p.VelY = 0
		p.Jumping = false
		p.JumpTimer = 0
		p.State = config.Crouching
		return
	}

	if in.DashPressed && !p.Dashing && p.DashCooldown <= 0 {
		p.Dashing = true
		p.DashDir = p.Facing
		p.DashTimer = 0
		p.Jumping = false
		p.JumpTimer = 0
		p.JustDashed = true
	}

	// Horizontal velocity is rebuilt from intent every frame; there is
	// no acceleration or friction.
	p.VelX = 0
	if !p.Dashing {
		if in.MoveLeft && !in.MoveRight {
			p.VelX = -p.effectiveMoveSpeed()
			p.Facing = config.DirectionLeft
		} else if in.MoveRight && !in.MoveLeft {
			p.VelX = p.effectiveMoveSpeed()
			p.Facing = config.DirectionRight
		}
	}

	// Gravity overwrites vertical velocity rather than accumulating;
	// the grounded clamp and the jump force below take it from there.
	p.VelY = config.Player.Gravity * dt

	if in.JumpPressed && p.OnGround && !p.Dashing {
		p.Jumping = true
		p.JumpTimer = 0
		p.OnGround = false
		p.JustJumped = true
	}

	if p.Jumping {
		if in.Jump && p.JumpTimer < config.Player.JumpDuration {
			p.VelY = -p.effectiveJumpForce() * dt
			p.JumpTimer += dt
		} else {
			p.Jumping = false
			p.JumpTimer = 0
		}
	}

	if in.FastFall && !p.OnGround && !p.Jumping {
		p.VelY += config.Player.FastFallForce * dt
	}

	p.State = p.currentState()
}

func (p *PlayerData) currentState() config.StateID {
	switch {
	case p.Jumping || !p.OnGround:
		return config.Jumping
	case p.Dashing || p.VelX != 0:
		return config.Moving
	default:
		return config.Idle
	}
}

// Update integrates one frame of motion.
func (p *PlayerData) Update(dt float64) {
	if p.State == config.Crouching {
		return
	}

	if p.Dashing {
		p.PosX += config.Player.DashSpeed * float64(p.DashDir) * dt
		if !p.OnGround {
			p.PosY += p.VelY * dt
		}
		p.DashTimer += dt
		if p.DashTimer >= config.Player.DashDuration {
			p.Dashing = false
			p.DashCooldown = config.Player.DashCooldown
		}
		return
	}

	if p.DashCooldown > 0 {
		p.DashCooldown -= dt
	}

	// Standing on ground cancels downward velocity before it moves the
	// body, so a grounded player does not sink a frame into the floor.
	if p.OnGround && p.VelY > 0 {
		p.VelY = 0
	}

	p.PosX += p.VelX * dt
	p.PosY += p.VelY * dt
}

// OnCollision is the resolver callback. The normal points from the
// other body toward the player.
func (p *PlayerData) OnCollision(other collision.Collidable, nx, ny, penetration float64) {
	if other.Kind() != collision.KindObstacle {
		return
	}

	if ny < -0.5 {
		// Landed on top of something.
		p.VelY = 0
		if !p.OnGround {
			p.JustLanded = true
		}
		p.OnGround = true
		p.Jumping = false
		p.JumpTimer = 0
		return
	}
	if ny > 0.5 {
		// Hit a ceiling from below.
		if p.VelY < 0 {
			p.VelY = 0
		}
		p.Jumping = false
		p.JumpTimer = 0
		p.OnGround = false
		return
	}
	if nx < -0.5 || nx > 0.5 {
		p.VelX = 0
		p.OnGround = false
	}
}

// Die marks the player for respawn. The player system moves the body
// back to the spawn point on the next frame.
func (p *PlayerData) Die() {
	p.Dead = true
}

// Respawn resets the body to the level spawn point.
func (p *PlayerData) Respawn() {
	p.PosX = p.SpawnX
	p.PosY = p.SpawnY
	p.VelX = 0
	p.VelY = 0
	p.Jumping = false
	p.JumpTimer = 0
	p.Dashing = false
	p.DashTimer = 0
	p.OnGround = false
	p.Dead = false
	p.State = config.Idle
}
