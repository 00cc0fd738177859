package factory

import (
	"github.com/automoto/trapland/archetypes"
	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.RenderWidth)
	h := float64(cfg.Player.RenderHeight)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.NewPlayerData(x, y))
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})

	// Load sprite sheets
	animData := GenerateAnimations("player", cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	components.Animation.Set(player, animData)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
