package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/automoto/trapland/collision"
	"github.com/automoto/trapland/config"
	"github.com/automoto/trapland/gamemath"
)

// PlatformVariant distinguishes the obstacle behaviors.
type PlatformVariant int

const (
	PlatformSolid PlatformVariant = iota
	PlatformTrap
	PlatformDisappearing
)

// DisappearState is the lifecycle of a disappearing platform.
type DisappearState int

const (
	// Visible: solid, fully drawn, waiting for a trigger.
	Visible DisappearState = iota
	// Disappearing: triggered, still solid, fading out.
	Disappearing
	// Disappeared: not solid, not drawn.
	Disappeared
	// Reappearing: single-frame transition back to Visible; clears the
	// trigger latch.
	Reappearing
)

// PlatformData is a static obstacle. Solid and trap platforms never
// change; disappearing platforms cycle through DisappearState after the
// player lands on them.
type PlatformData struct {
	Rect    gamemath.AABB
	Variant PlatformVariant

	State     DisappearState
	Triggered bool
	Timer     float64
	Alpha     float32
	fade      *gween.Tween
}

var Platform = donburi.NewComponentType[PlatformData]()

func NewPlatformData(rect gamemath.AABB, variant PlatformVariant) PlatformData {
	return PlatformData{
		Rect:    rect,
		Variant: variant,
		State:   Visible,
		Alpha:   1,
	}
}

func (pl *PlatformData) Kind() collision.Kind { return collision.KindObstacle }

func (pl *PlatformData) Static() bool { return true }

func (pl *PlatformData) Position() (float64, float64) { return pl.Rect.X, pl.Rect.Y }

func (pl *PlatformData) SetPosition(x, y float64) {
	pl.Rect.X = x
	pl.Rect.Y = y
}

// Bounds returns the collision hitbox. Traps use a shrunk hitbox so
// only a solid touch kills; a disappearing platform that has vanished
// has no hitbox at all.
func (pl *PlatformData) Bounds() gamemath.AABB {
	switch pl.Variant {
	case PlatformTrap:
		return pl.Rect.Inset(config.Trap.HitboxReduction)
	case PlatformDisappearing:
		if pl.State == Disappeared || pl.State == Reappearing {
			return gamemath.AABB{}
		}
	}
	return pl.Rect
}

// Solid reports whether the platform currently blocks movement.
func (pl *PlatformData) Solid() bool {
	if pl.Variant == PlatformDisappearing {
		return pl.State == Visible || pl.State == Disappearing
	}
	return true
}

// Rendered reports whether the platform should be drawn this frame.
func (pl *PlatformData) Rendered() bool {
	return pl.State == Visible || pl.State == Disappearing ||
		pl.Variant != PlatformDisappearing
}

// OnCollision receives the resolver callback. The normal points from
// the other body toward the platform, so a player landing on top
// arrives with ny > 0.
func (pl *PlatformData) OnCollision(other collision.Collidable, nx, ny, penetration float64) {
	if other.Kind() != collision.KindPlayer {
		return
	}

	if pl.Variant == PlatformTrap {
		if p, ok := other.(*PlayerData); ok {
			p.Die()
		}
		return
	}

	if pl.Variant != PlatformDisappearing {
		return
	}
	if pl.State != Visible || pl.Triggered {
		return
	}
	if ny > 0.5 {
		pl.Triggered = true
	}
}

// KillsOnTouch reports whether contact with this platform is lethal.
func (pl *PlatformData) KillsOnTouch() bool {
	return pl.Variant == PlatformTrap
}

// Update advances the disappear cycle. Returns true on the frame the
// platform vanishes, so the caller can publish the event once.
func (pl *PlatformData) Update(dt float64) bool {
	if pl.Variant != PlatformDisappearing {
		return false
	}

	switch pl.State {
	case Visible:
		if pl.Triggered {
			pl.State = Disappearing
			pl.Timer = 0
			pl.fade = gween.New(1, 0, float32(config.Disappearing.DisappearDelay), ease.Linear)
		}
	case Disappearing:
		pl.Timer += dt
		if pl.fade != nil {
			pl.Alpha, _ = pl.fade.Update(float32(dt))
		}
		if pl.Timer >= config.Disappearing.DisappearDelay {
			pl.State = Disappeared
			pl.Timer = 0
			pl.Alpha = 0
			return true
		}
	case Disappeared:
		pl.Timer += dt
		if pl.Timer >= config.Disappearing.ReappearDelay {
			pl.State = Reappearing
			pl.Timer = 0
		}
	case Reappearing:
		pl.State = Visible
		pl.Alpha = 1
		pl.fade = nil
		pl.Triggered = false
	}
	return false
}
