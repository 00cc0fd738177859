package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/collision"
	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/events"
	"github.com/automoto/trapland/tags"
)

var projectileResolver = collision.NewResolver()

// UpdateProjectiles moves every projectile, resolves them against
// static obstacles, enforces world bounds, and prunes collected coins.
func UpdateProjectiles(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil || level.CurrentLevel == nil {
		return
	}
	world := level.CurrentLevel.Bounds()
	dt := cfg.C.Dt

	var removed []*donburi.Entry

	components.Projectile.Each(ecs.World, func(entry *donburi.Entry) {
		projectile := components.Projectile.Get(entry)
		obj := components.Object.Get(entry).Object

		// A coin picked up during the player's resolver pass leaves
		// the world this frame.
		if projectile.Removed {
			level.CoinsCollected++
			events.CoinCollectedEvent.Publish(ecs.World, events.CoinCollected{
				Remaining: level.CoinsTotal - level.CoinsCollected,
			})
			removed = append(removed, entry)
			return
		}

		projectile.Update(dt)

		// Keep the broad-phase mirror current before querying.
		obj.X = projectile.Rect.X
		obj.Y = projectile.Rect.Y
		obj.Update()

		if projectile.Variant == components.ProjectileArrow || cfg.Coin.Bounce {
			obstacles := collectCandidates(ecs, obj,
				tags.ResolvSolid, tags.ResolvTrap, tags.ResolvDisappearing)
			projectileResolver.Resolve(projectile, obstacles)
		}

		projectile.CheckWorldBounds(world)
		if projectile.Removed {
			// Out-of-bounds coins are just dropped, not counted.
			removed = append(removed, entry)
			return
		}

		obj.X = projectile.Rect.X
		obj.Y = projectile.Rect.Y
		obj.Update()
	})

	for _, entry := range removed {
		if obj := components.Object.Get(entry).Object; obj.Space != nil {
			obj.Space.Remove(obj)
		}
		entry.Remove()
	}
}
