package collision

import (
	"testing"

	"github.com/automoto/trapland/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBody is a minimal Collidable for resolver tests.
type stubBody struct {
	box    gamemath.AABB
	kind   Kind
	static bool

	calls []callRecord
}

type callRecord struct {
	other       Collidable
	nx, ny, pen float64
}

func (s *stubBody) Bounds() gamemath.AABB    { return s.box }
func (s *stubBody) Kind() Kind               { return s.kind }
func (s *stubBody) Position() (x, y float64) { return s.box.X, s.box.Y }
func (s *stubBody) SetPosition(x, y float64) { s.box.X, s.box.Y = x, y }
func (s *stubBody) Static() bool             { return s.static }
func (s *stubBody) OnCollision(other Collidable, nx, ny, pen float64) {
	s.calls = append(s.calls, callRecord{other, nx, ny, pen})
}

func TestResolveEmptyCandidateListIsNoOp(t *testing.T) {
	mover := &stubBody{box: gamemath.NewAABB(0, 0, 32, 48), kind: KindPlayer}
	NewResolver().Resolve(mover, nil)
	assert.Empty(t, mover.calls)
	assert.Equal(t, gamemath.NewAABB(0, 0, 32, 48), mover.box)
}

func TestResolveNotifiesBothSidesWithNegatedNormal(t *testing.T) {
	player := &stubBody{box: gamemath.NewAABB(0, 280, 32, 48), kind: KindPlayer}
	platform := &stubBody{box: gamemath.NewAABB(0, 300, 32, 32), kind: KindObstacle, static: true}

	NewResolver().Resolve(player, []Collidable{platform})

	require.Len(t, player.calls, 1)
	require.Len(t, platform.calls, 1)

	assert.Equal(t, 0.0, player.calls[0].nx)
	assert.Equal(t, -1.0, player.calls[0].ny)
	assert.Equal(t, 0.0, platform.calls[0].nx)
	assert.Equal(t, 1.0, platform.calls[0].ny)
	assert.Equal(t, player.calls[0].pen, platform.calls[0].pen)
}

func TestResolvePushesOutNonStaticSideOnly(t *testing.T) {
	player := &stubBody{box: gamemath.NewAABB(0, 280, 32, 48), kind: KindPlayer}
	platform := &stubBody{box: gamemath.NewAABB(0, 300, 32, 32), kind: KindObstacle, static: true}

	NewResolver().Resolve(player, []Collidable{platform})

	// Player bottom pushed up flush with the platform top.
	assert.InDelta(t, 252.0, player.box.Y, 1e-9)
	assert.Equal(t, gamemath.NewAABB(0, 300, 32, 32), platform.box, "static side never moves")
	assert.False(t, gamemath.Intersects(player.box, platform.box))
}

func TestResolvePlayerVsProjectileHasNoPushOut(t *testing.T) {
	player := &stubBody{box: gamemath.NewAABB(0, 0, 32, 48), kind: KindPlayer}
	coin := &stubBody{box: gamemath.NewAABB(10, 10, 16, 16), kind: KindProjectile}

	NewResolver().Resolve(player, []Collidable{coin})

	require.Len(t, player.calls, 1)
	require.Len(t, coin.calls, 1)
	assert.Equal(t, gamemath.NewAABB(0, 0, 32, 48), player.box)
	assert.Equal(t, gamemath.NewAABB(10, 10, 16, 16), coin.box)
}

func TestResolveProjectileVsObstacleCorrectsProjectile(t *testing.T) {
	arrow := &stubBody{box: gamemath.NewAABB(26, 0, 16, 8), kind: KindProjectile}
	wall := &stubBody{box: gamemath.NewAABB(32, -16, 32, 64), kind: KindObstacle, static: true}

	NewResolver().Resolve(arrow, []Collidable{wall})

	require.Len(t, arrow.calls, 1)
	assert.Equal(t, -1.0, arrow.calls[0].nx)
	assert.InDelta(t, 16.0, arrow.box.X, 1e-9)
	assert.False(t, gamemath.Intersects(arrow.box, wall.box))
}

func TestResolveUnknownPairIsDetectedButUnresolved(t *testing.T) {
	a := &stubBody{box: gamemath.NewAABB(0, 0, 32, 32), kind: KindProjectile}
	b := &stubBody{box: gamemath.NewAABB(8, 8, 32, 32), kind: KindProjectile}

	NewResolver().Resolve(a, []Collidable{b})

	assert.Empty(t, a.calls)
	assert.Empty(t, b.calls)
	assert.Equal(t, gamemath.NewAABB(0, 0, 32, 32), a.box)
}

func TestResolveSkipsDegenerateBounds(t *testing.T) {
	player := &stubBody{box: gamemath.NewAABB(0, 0, 32, 48), kind: KindPlayer}
	vanished := &stubBody{box: gamemath.AABB{}, kind: KindObstacle, static: true}

	NewResolver().Resolve(player, []Collidable{vanished})

	assert.Empty(t, player.calls)
	assert.Empty(t, vanished.calls)
}

func TestResolveSeparatedCandidatesUntouched(t *testing.T) {
	player := &stubBody{box: gamemath.NewAABB(0, 0, 32, 48), kind: KindPlayer}
	far := &stubBody{box: gamemath.NewAABB(500, 500, 32, 32), kind: KindObstacle, static: true}

	NewResolver().Resolve(player, []Collidable{far})
	assert.Empty(t, player.calls)
}

func TestResolveSequentialCandidatesSeeCorrectedPosition(t *testing.T) {
	// Player straddling two adjacent floor tiles: after the first
	// push-out the second tile no longer intersects.
	player := &stubBody{box: gamemath.NewAABB(16, 280, 32, 48), kind: KindPlayer}
	tileA := &stubBody{box: gamemath.NewAABB(0, 320, 32, 32), kind: KindObstacle, static: true}
	tileB := &stubBody{box: gamemath.NewAABB(32, 320, 32, 32), kind: KindObstacle, static: true}

	NewResolver().Resolve(player, []Collidable{tileA, tileB})

	require.Len(t, player.calls, 1, "second tile resolved against corrected bounds")
	assert.InDelta(t, 272.0, player.box.Y, 1e-9)
	assert.Len(t, tileB.calls, 0)
}
