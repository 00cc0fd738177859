// Package collision implements narrow-phase AABB collision resolution.
// Broad-phase candidate gathering lives outside (the resolv space in the
// systems layer); this package only sees the candidates it is handed.
package collision

import "github.com/automoto/trapland/gamemath"

// Kind is a closed tag distinguishing the physical entity families. It
// drives the resolver's pair dispatch and is never extended at runtime.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindObstacle
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindProjectile:
		return "projectile"
	}
	return "none"
}

// Collidable is the contract every physical entity satisfies. Bounds
// must always reflect the entity's current logical position at call
// time; implementations rebuild the box per query rather than caching
// it across a frame.
type Collidable interface {
	// Bounds returns the collision box, which may be an inset of the
	// entity's render rect. A zero-size box opts the entity out of
	// collision entirely.
	Bounds() gamemath.AABB
	Kind() Kind
	Position() (x, y float64)
	SetPosition(x, y float64)
	// Static entities are never moved by the resolver.
	Static() bool
	// OnCollision is invoked for both parties of every resolved pair.
	// The normal points from other toward the receiver in the
	// receiver's frame of reference; penetration is the overlap depth
	// along that axis.
	OnCollision(other Collidable, normalX, normalY, penetration float64)
}
