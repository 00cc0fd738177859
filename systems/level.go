package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/events"
)

// getLevel returns the level singleton, or nil before a level is loaded.
func getLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// UpdateLevel advances the run clock and flips the level into its won
// state once the last coin has been collected.
func UpdateLevel(e *ecs.ECS) {
	level := getLevel(e)
	if level == nil || level.CurrentLevel == nil {
		return
	}

	level.ElapsedSeconds += cfg.C.Dt

	if !level.Won && level.CoinsTotal > 0 && level.CoinsCollected >= level.CoinsTotal {
		level.Won = true
		events.LevelClearedEvent.Publish(e.World, events.LevelCleared{
			TimeSeconds: level.ElapsedSeconds,
		})
	}
}

// DrawLevel draws the baked level background with the camera offset.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	level := getLevel(e)
	if level == nil || level.CurrentLevel == nil {
		return
	}

	if level.CurrentLevel.Background != nil {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(-camera.Position.X, -camera.Position.Y)
		opts.GeoM.Translate(float64(width)/2, float64(height)/2)
		screen.DrawImage(level.CurrentLevel.Background, opts)
	}
}
