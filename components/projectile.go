package components

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/automoto/trapland/collision"
	"github.com/automoto/trapland/config"
	"github.com/automoto/trapland/gamemath"
)

// ProjectileVariant distinguishes the projectile behaviors.
type ProjectileVariant int

const (
	ProjectileCoin ProjectileVariant = iota
	ProjectileArrow
)

// ProjectileData is a coin or arrow. Coins sit still (the bob is render
// only), arrows fly under compounding gravity. Both remember their spawn
// position; arrows respawn there, coins are removed on pickup.
type ProjectileData struct {
	Rect    gamemath.AABB
	Variant ProjectileVariant

	VelX, VelY       float64
	OriginX, OriginY float64
	SpawnVelX        float64
	SpawnVelY        float64

	Removed  bool
	Stuck    bool
	BobTimer float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()

func NewCoinData(x, y float64) ProjectileData {
	return ProjectileData{
		Rect:    gamemath.NewAABB(x, y, config.Coin.Width, config.Coin.Height),
		Variant: ProjectileCoin,
		OriginX: x,
		OriginY: y,
	}
}

func NewArrowData(x, y, velX, velY float64) ProjectileData {
	return ProjectileData{
		Rect:      gamemath.NewAABB(x, y, config.Arrow.Width, config.Arrow.Height),
		Variant:   ProjectileArrow,
		VelX:      velX,
		VelY:      velY,
		OriginX:   x,
		OriginY:   y,
		SpawnVelX: velX,
		SpawnVelY: velY,
	}
}

func (pr *ProjectileData) Kind() collision.Kind { return collision.KindProjectile }

func (pr *ProjectileData) Static() bool { return false }

func (pr *ProjectileData) Position() (float64, float64) { return pr.Rect.X, pr.Rect.Y }

func (pr *ProjectileData) SetPosition(x, y float64) {
	pr.Rect.X = x
	pr.Rect.Y = y
}

// Bounds is the un-bobbed rect. The bob offset applies at draw time
// only, so pickup never depends on the bob phase.
func (pr *ProjectileData) Bounds() gamemath.AABB {
	if pr.Removed {
		return gamemath.AABB{}
	}
	return pr.Rect
}

// BobOffset is the vertical render offset for a coin this frame.
func (pr *ProjectileData) BobOffset() float64 {
	if pr.Variant != ProjectileCoin {
		return 0
	}
	return math.Sin(pr.BobTimer*2*math.Pi*config.Coin.BobFrequency) * config.Coin.BobAmplitude
}

// Update advances one frame of projectile motion.
func (pr *ProjectileData) Update(dt float64) {
	if pr.Removed {
		return
	}

	switch pr.Variant {
	case ProjectileCoin:
		pr.BobTimer += dt
		if config.Coin.Bounce {
			pr.Rect.X += pr.VelX * dt
			pr.Rect.Y += pr.VelY * dt
		}
	case ProjectileArrow:
		if pr.Stuck {
			return
		}
		pr.VelY += config.Arrow.Gravity * dt
		pr.Rect.X += pr.VelX * dt
		pr.Rect.Y += pr.VelY * dt
	}
}

// CheckWorldBounds respawns an arrow (or removes a coin that somehow
// escaped) once it has fully left the world rectangle.
func (pr *ProjectileData) CheckWorldBounds(world gamemath.AABB) {
	if pr.Removed {
		return
	}
	b := pr.Rect
	inside := b.Right() > world.X && b.X < world.Right() &&
		b.Bottom() > world.Y && b.Y < world.Bottom()
	if inside {
		return
	}
	if pr.Variant == ProjectileArrow {
		pr.Respawn()
	} else {
		pr.Removed = true
	}
}

// Respawn puts the projectile back at its spawn point with its launch
// velocity.
func (pr *ProjectileData) Respawn() {
	pr.Rect.X = pr.OriginX
	pr.Rect.Y = pr.OriginY
	pr.VelX = pr.SpawnVelX
	pr.VelY = pr.SpawnVelY
	pr.Stuck = false
}

// OnCollision receives the resolver callback. The normal points from
// the other body toward the projectile.
func (pr *ProjectileData) OnCollision(other collision.Collidable, nx, ny, penetration float64) {
	if pr.Removed {
		return
	}

	switch other.Kind() {
	case collision.KindPlayer:
		switch pr.Variant {
		case ProjectileCoin:
			pr.Removed = true
		case ProjectileArrow:
			if p, ok := other.(*PlayerData); ok {
				p.Die()
			}
			pr.Respawn()
		}
	case collision.KindObstacle:
		switch pr.Variant {
		case ProjectileCoin:
			if config.Coin.Bounce {
				if nx != 0 {
					pr.VelX = -pr.VelX * config.Coin.BounceDamping
				}
				if ny != 0 {
					pr.VelY = -pr.VelY * config.Coin.BounceDamping
				}
			}
		case ProjectileArrow:
			if config.Arrow.StickOnImpact {
				pr.VelX = 0
				pr.VelY = 0
				pr.Stuck = true
			} else {
				pr.Respawn()
			}
		}
	}
}
