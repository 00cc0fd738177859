package factory

import (
	"github.com/automoto/trapland/archetypes"
	"github.com/automoto/trapland/components"
	"github.com/automoto/trapland/gamemath"
	"github.com/automoto/trapland/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func resolvTagFor(variant components.PlatformVariant) string {
	switch variant {
	case components.PlatformTrap:
		return tags.ResolvTrap
	case components.PlatformDisappearing:
		return tags.ResolvDisappearing
	default:
		return tags.ResolvSolid
	}
}

// CreatePlatform spawns one static obstacle and registers its
// broad-phase object.
func CreatePlatform(ecs *ecs.ECS, rect gamemath.AABB, variant components.PlatformVariant) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, resolvTagFor(variant))
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	components.Platform.SetValue(platform, components.NewPlatformData(rect, variant))

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return platform
}

// CreateSlowZone registers a non-colliding broad-phase rect that slows
// the player while overlapped. Zones have no platform component; only
// the resolv tag matters.
func CreateSlowZone(ecs *ecs.ECS, rect gamemath.AABB) *donburi.Entry {
	zone := ecs.World.Entry(ecs.World.Create(components.Object))

	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvSlow)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return zone
}
