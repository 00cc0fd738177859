package factory

import (
	"github.com/automoto/trapland/archetypes"
	"github.com/automoto/trapland/components"
	"github.com/automoto/trapland/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return createProjectile(ecs, components.NewCoinData(x, y), tags.ResolvCoin)
}

func CreateArrow(ecs *ecs.ECS, x, y, velX, velY float64) *donburi.Entry {
	return createProjectile(ecs, components.NewArrowData(x, y, velX, velY), tags.ResolvArrow)
}

func createProjectile(ecs *ecs.ECS, data components.ProjectileData, tag string) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	b := data.Rect
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})

	components.Projectile.SetValue(projectile, data)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return projectile
}
