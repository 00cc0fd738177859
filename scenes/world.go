package scenes

import (
	"errors"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/assets"
	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/events"
	"github.com/automoto/trapland/systems"
	"github.com/automoto/trapland/systems/factory"
	"github.com/automoto/trapland/ui"
)

// PlatformerScene runs one level: the player, its obstacles and
// projectiles, and the overlays on top of them.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewPlatformerScene creates a new platformer scene
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsSettingsOpen(ps.ecs) {
		ps.settingsUI.UI.Update()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	assets.PreloadAllAnimations()

	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger)
	}

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with pause and win checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLevel))

	// Win overlay latches after the last coin, so it runs unwrapped
	e.AddSystem(systems.NewUpdateWin(ps.sceneChanger, createMenuScene))

	// Systems that run even when paused
	e.AddSystem(systems.UpdateSettingsMenu)
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Deliver gameplay events (sounds etc.) at the end of the frame
	e.AddSystem(func(e *ecs.ECS) { events.ProcessAll(e.World) })

	// Renderers, back to front
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlatforms)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawAnimated)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawWin)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, ps.drawSettings)

	ps.ecs = e

	systems.SubscribeAudioEvents(e)

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevel(e)
	levelData := components.Level.Get(level)

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(e,
		levelData.CurrentLevel.Width,
		levelData.CurrentLevel.Height,
		cfg.World.CellWidth,
		cfg.World.CellHeight,
	)

	factory.CreateCamera(e)

	// Static obstacles from the tile layers
	for _, tile := range levelData.CurrentLevel.SolidTiles {
		factory.CreatePlatform(e, tile.AABB(), components.PlatformSolid)
	}
	for _, tile := range levelData.CurrentLevel.TrapTiles {
		factory.CreatePlatform(e, tile.AABB(), components.PlatformTrap)
	}
	for _, tile := range levelData.CurrentLevel.DisappearTiles {
		factory.CreatePlatform(e, tile.AABB(), components.PlatformDisappearing)
	}
	for _, zone := range levelData.CurrentLevel.SlowZones {
		factory.CreateSlowZone(e, zone.AABB())
	}

	// Projectiles
	for _, spawn := range levelData.CurrentLevel.CoinSpawns {
		factory.CreateCoin(e, spawn.X, spawn.Y)
	}
	for _, spawn := range levelData.CurrentLevel.ArrowSpawns {
		factory.CreateArrow(e, spawn.X, spawn.Y, spawn.VelX, spawn.VelY)
	}

	// Player
	if !levelData.CurrentLevel.HasPlayerSpawn {
		panic(errors.New("no player spawn point defined in map"))
	}
	spawn := levelData.CurrentLevel.PlayerSpawn
	factory.CreatePlayer(e, spawn.X, spawn.Y)

	// Snap camera to the spawn position to prevent panning from (0,0)
	systems.SnapCamera(e)

	ps.settingsUI = newSettingsUI(e)

	if saved, _ := systems.LoadSettings(); saved != nil {
		systems.ApplySavedSettings(e, saved)
		ps.settingsUI.UpdateUI()
	}

	systems.PlayMusic(e, cfg.Audio.MusicPath)
}

func (ps *PlatformerScene) drawSettings(e *ecs.ECS, screen *ebiten.Image) {
	if systems.IsSettingsOpen(e) {
		ps.settingsUI.UI.Draw(screen)
	}
}
