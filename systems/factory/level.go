package factory

import (
	"github.com/automoto/trapland/archetypes"
	"github.com/automoto/trapland/assets"
	"github.com/automoto/trapland/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	levels := loader.MustLoadLevels()

	levelData := &components.LevelData{
		CurrentLevel: &levels[0],
		CoinsTotal:   len(levels[0].CoinSpawns),
	}

	components.Level.Set(level, levelData)

	return level
}
