package collision

import "github.com/automoto/trapland/gamemath"

// Resolver detects and responds to collisions between one mover and a
// list of candidates within a single frame. It holds no state of its
// own; all effects flow through the Collidable callbacks and the
// positional correction.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve tests the mover against every candidate in order. For each
// intersecting pair with a defined kind interaction it computes the
// MTV, notifies both parties, and pushes the non-static party fully out
// of overlap along the separation axis. The mover's bounds are re-read
// after each correction so later candidates see the corrected position.
//
// An empty candidate list is a no-op. Candidates with degenerate bounds
// never intersect. Kind pairs without a defined interaction are
// detected but produce no response.
func (r *Resolver) Resolve(mover Collidable, candidates []Collidable) {
	for _, candidate := range candidates {
		r.resolvePair(mover, candidate)
	}
}

func (r *Resolver) resolvePair(mover, candidate Collidable) {
	moverBounds := mover.Bounds()
	candidateBounds := candidate.Bounds()
	if !gamemath.Intersects(moverBounds, candidateBounds) {
		return
	}
	if !interacts(mover.Kind(), candidate.Kind()) {
		return
	}

	nx, ny, penetration := gamemath.MTV(moverBounds, candidateBounds)

	// Both sides are always notified; the normal is negated for the
	// second call since it is expressed in the candidate's frame.
	mover.OnCollision(candidate, nx, ny, penetration)
	candidate.OnCollision(mover, -nx, -ny, penetration)

	switch {
	case candidate.Static() && !mover.Static():
		x, y := mover.Position()
		mover.SetPosition(x+nx*penetration, y+ny*penetration)
	case mover.Static() && !candidate.Static():
		x, y := candidate.Position()
		candidate.SetPosition(x-nx*penetration, y-ny*penetration)
	}
	// Neither side static (player vs projectile): callbacks only, no
	// positional correction.
}

// interacts is the type-pair response matrix. Same-kind pairs and
// static-static pairs have no defined interaction; unknown kinds fall
// through to "no response" so future entity families stay safe by
// default.
func interacts(a, b Kind) bool {
	switch {
	case a == KindPlayer && b == KindObstacle,
		a == KindObstacle && b == KindPlayer:
		return true
	case a == KindPlayer && b == KindProjectile,
		a == KindProjectile && b == KindPlayer:
		return true
	case a == KindProjectile && b == KindObstacle,
		a == KindObstacle && b == KindProjectile:
		return true
	}
	return false
}
