package gamemath

// AABB is an axis-aligned rectangle in world units. It is an ephemeral
// value type: entities rebuild it from their current position on every
// query, so a box is never stale within a frame.
type AABB struct {
	X, Y, W, H float64
}

func NewAABB(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, W: w, H: h}
}

func (a AABB) Right() float64  { return a.X + a.W }
func (a AABB) Bottom() float64 { return a.Y + a.H }

func (a AABB) CenterX() float64 { return a.X + a.W/2 }
func (a AABB) CenterY() float64 { return a.Y + a.H/2 }

// Empty reports whether the box has no physical extent. Degenerate boxes
// never intersect anything.
func (a AABB) Empty() bool {
	return a.W <= 0 || a.H <= 0
}

// Intersects reports whether a and b overlap. The comparison is
// open-interval: boxes that merely share an edge do not intersect.
func Intersects(a, b AABB) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}

// MTV computes the minimum translation vector separating a from b as
// (normalX, normalY, penetration). The separation axis is the one with
// the smaller overlap; on an exact tie the horizontal axis wins. The
// normal points from b toward a on that axis, so translating a by
// normal*penetration pushes it out of b.
//
// Only valid for intersecting boxes. The single-axis choice is an
// approximation of a true MTV for corner cases; gameplay tuning depends
// on this exact tie-break, so it must not be replaced with a
// distance-minimizing variant.
func MTV(a, b AABB) (normalX, normalY, penetration float64) {
	overlapX := min(a.Right(), b.Right()) - max(a.X, b.X)
	overlapY := min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y)

	// Strict less-than: an exact tie falls through to the horizontal axis.
	if overlapY < overlapX {
		if a.CenterY() < b.CenterY() {
			normalY = -1
		} else {
			normalY = 1
		}
		return 0, normalY, overlapY
	}

	if a.CenterX() < b.CenterX() {
		normalX = -1
	} else {
		normalX = 1
	}
	return normalX, 0, overlapX
}

// Inset returns a copy of a shrunk by the given fraction of its size on
// every side. frac 0.125 removes a quarter of the width and height in
// total. Used for trap hitboxes.
func (a AABB) Inset(frac float64) AABB {
	return AABB{
		X: a.X + a.W*frac,
		Y: a.Y + a.H*frac,
		W: a.W * (1 - 2*frac),
		H: a.H * (1 - 2*frac),
	}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
