package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/systems"
	"github.com/automoto/trapland/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	if systems.IsSettingsOpen(ms.ecs) {
		ms.settingsUI.UI.Update()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Platformer scene factory that captures the scene changer
	createPlatformerScene := func() interface{} {
		return NewPlatformerScene(ms.sceneChanger)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createPlatformerScene))
	ms.ecs.AddSystem(systems.UpdateSettingsMenu)

	// Renderers (settings draws on top of menu)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	ms.ecs.AddRenderer(cfg.Default, ms.drawSettings)

	ms.settingsUI = newSettingsUI(ms.ecs)

	// Apply persisted audio/display settings
	if saved, _ := systems.LoadSettings(); saved != nil {
		systems.ApplySavedSettings(ms.ecs, saved)
		ms.settingsUI.UpdateUI()
	}

	// Start menu music
	systems.PlayMusic(ms.ecs, cfg.Audio.MusicPath)
}

func (ms *MenuScene) drawSettings(e *ecs.ECS, screen *ebiten.Image) {
	if systems.IsSettingsOpen(e) {
		ms.settingsUI.UI.Draw(screen)
	}
}

// newSettingsUI builds the shared settings overlay wired to the audio
// and display systems of the given ECS.
func newSettingsUI(e *ecs.ECS) *ui.SettingsUI {
	return ui.NewSettingsUI(systems.GetOrCreateSettingsMenu(e), ui.SettingsCallbacks{
		OnMusicVolume: func(dir int) { systems.AdjustMusicVolume(e, dir) },
		OnSFXVolume:   func(dir int) { systems.AdjustSFXVolume(e, dir) },
		OnToggleMute:  func() { systems.ToggleMute(e) },
		OnFullscreen:  func() { systems.ToggleFullscreen(e) },
		OnResolution:  func(dir int) { systems.CycleResolution(e, dir) },
		OnBack:        func() { systems.CloseSettings(e) },
	})
}
