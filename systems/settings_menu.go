package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
)

// The settings overlay itself is an ebitenui panel owned by the scene
// (see ui.SettingsUI). This system owns the settings state and the
// keyboard/gamepad escape hatch; the panel mutates state through the
// exported helpers below.

// UpdateSettingsMenu closes the settings overlay on back/pause input.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionMenuBack).JustPressed ||
		GetAction(input, cfg.ActionPause).JustPressed {
		CloseSettings(e)
	}
}

// AdjustMusicVolume steps the music volume through the configured steps.
func AdjustMusicVolume(e *ecs.ECS, direction int) {
	s := GetOrCreateSettingsMenu(e)
	s.MusicVolume = stepVolume(s.MusicVolume, direction)
	if !s.Muted {
		SetMusicVolume(e, s.MusicVolume)
	}
	PlaySFX(e, cfg.SoundMenuNavigate)
}

// AdjustSFXVolume steps the effect volume and plays a preview sound.
func AdjustSFXVolume(e *ecs.ECS, direction int) {
	s := GetOrCreateSettingsMenu(e)
	s.SFXVolume = stepVolume(s.SFXVolume, direction)
	if !s.Muted {
		SetSFXVolume(e, s.SFXVolume)
	}
	PlaySFX(e, cfg.SoundMenuSelect)
}

// ToggleMute silences both channels, remembering the volumes to restore.
func ToggleMute(e *ecs.ECS) {
	s := GetOrCreateSettingsMenu(e)
	s.Muted = !s.Muted
	if s.Muted {
		s.PreMuteMusicVol = s.MusicVolume
		s.PreMuteSFXVol = s.SFXVolume
		SetMusicVolume(e, 0)
		SetSFXVolume(e, 0)
	} else {
		SetMusicVolume(e, s.MusicVolume)
		SetSFXVolume(e, s.SFXVolume)
	}
	PlaySFX(e, cfg.SoundMenuSelect)
}

// ToggleFullscreen flips fullscreen mode.
func ToggleFullscreen(e *ecs.ECS) {
	s := GetOrCreateSettingsMenu(e)
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
	PlaySFX(e, cfg.SoundMenuSelect)
}

// CycleResolution steps through the available window sizes.
func CycleResolution(e *ecs.ECS, direction int) {
	s := GetOrCreateSettingsMenu(e)
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	if !s.Fullscreen {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	PlaySFX(e, cfg.SoundMenuNavigate)
}

// CloseSettings closes the overlay and saves settings to disk.
func CloseSettings(e *ecs.ECS) {
	s := GetOrCreateSettingsMenu(e)
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// stepVolume moves the volume to the next predefined step.
func stepVolume(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	idx := closestStepIndex(current, steps) + direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	return steps[idx]
}

func closestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		musicVol := GetMusicVolume()
		sfxVol := GetSFXVolume()

		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			IsOpen:          false,
			OpenedFromPause: false,
			MusicVolume:     musicVol,
			SFXVolume:       sfxVol,
			Muted:           false,
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
			PreMuteMusicVol: musicVol,
			PreMuteSFXVol:   sfxVol,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu from a specific origin
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause

	// Sync current values
	settings.MusicVolume = GetMusicVolume()
	settings.SFXVolume = GetSFXVolume()
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}
