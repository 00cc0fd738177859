package systems

import (
	"math"

	"github.com/automoto/trapland/components"
	"github.com/automoto/trapland/config"
	"github.com/automoto/trapland/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerData := components.Player.Get(playerEntry)

	levelData := getLevel(e)
	if levelData == nil || levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(playerData.VelX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := float64(playerData.Facing) * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	// Target camera position: follow the player with look-ahead
	targetX := playerData.PosX + camera.LookAheadX
	targetY := playerData.PosY

	// Camera bounds: ensure the level always fills the screen
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera on the player immediately, used when a
// scene starts so the first frame is not a long pan.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerData := components.Player.Get(playerEntry)

	camera.Position.X = playerData.PosX
	camera.Position.Y = playerData.PosY
	camera.LookAheadX = 0
}
