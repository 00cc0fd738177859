package systems

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"

	"github.com/automoto/trapland/components"
	"github.com/automoto/trapland/tags"
)

// slowZoneFixture builds a space with one 32x32 slow zone at the given
// position and a player object mirroring the player's render rect.
func slowZoneFixture(zoneX, zoneY float64) (*components.PlayerData, *resolv.Object) {
	space := resolv.NewSpace(320, 240, 16, 16)

	zone := resolv.NewObject(zoneX, zoneY, 32, 32, tags.ResolvSlow)
	zone.SetShape(resolv.NewRectangle(0, 0, 32, 32))
	space.Add(zone)

	p := components.NewPlayerData(0, 0)
	obj := resolv.NewObject(p.PosX, p.PosY, p.Width, p.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, p.Width, p.Height))
	space.Add(obj)

	return &p, obj
}

func movePlayer(p *components.PlayerData, obj *resolv.Object, x, y float64) {
	p.PosX, p.PosY = x, y
	obj.X, obj.Y = x, y
	obj.Update()
}

func TestSlowZoneIgnoresSharedCellWithoutOverlap(t *testing.T) {
	p, obj := slowZoneFixture(34, 0)

	// Player render rect spans [1,33), the zone starts at 34: a 1px gap,
	// but both rects touch the same 16px broad-phase cell.
	movePlayer(p, obj, 1, 0)

	assert.True(t, obj.Check(0, 0, tags.ResolvSlow) != nil,
		"broad phase reports the shared cell")
	assert.False(t, touchesZone(p, obj, tags.ResolvSlow),
		"no actual overlap, so the player is not slowed")
}

func TestSlowZoneUsesReducedHitboxNotRenderRect(t *testing.T) {
	p, obj := slowZoneFixture(34, 0)

	// Render rect [3,35) grazes the zone, but the inset hitbox ends
	// before x=34.
	movePlayer(p, obj, 3, 0)

	b := p.Bounds()
	assert.Less(t, b.Right(), 34.0, "fixture: hitbox must stop short of the zone")
	assert.False(t, touchesZone(p, obj, tags.ResolvSlow))
}

func TestSlowZoneDetectedOnHitboxOverlap(t *testing.T) {
	p, obj := slowZoneFixture(34, 0)

	movePlayer(p, obj, 34, 0)

	assert.True(t, touchesZone(p, obj, tags.ResolvSlow))
}

func TestSlowZoneClearWhenFarAway(t *testing.T) {
	p, obj := slowZoneFixture(34, 0)

	movePlayer(p, obj, 200, 0)

	assert.False(t, touchesZone(p, obj, tags.ResolvSlow))
}
