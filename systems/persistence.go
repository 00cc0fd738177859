package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

// SavedRecords represents per-level records stored on disk.
type SavedRecords struct {
	BestTimeSeconds float64 `json:"bestTimeSeconds"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "trapland",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		MusicVolume:     s.MusicVolume,
		SFXVolume:       s.SFXVolume,
		Muted:           s.Muted,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings to the game systems
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetMusicVolume(e, saved.MusicVolume)
	SetSFXVolume(e, saved.SFXVolume)

	if saved.Muted {
		SetMusicVolume(e, 0)
		SetSFXVolume(e, 0)
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}

	// Update settings menu component if it exists
	if entry, ok := components.SettingsMenu.First(e.World); ok {
		settings := components.SettingsMenu.Get(entry)
		settings.MusicVolume = saved.MusicVolume
		settings.SFXVolume = saved.SFXVolume
		settings.Muted = saved.Muted
		settings.Fullscreen = saved.Fullscreen
		settings.ResolutionIndex = saved.ResolutionIndex
		if saved.Muted {
			settings.PreMuteMusicVol = saved.MusicVolume
			settings.PreMuteSFXVol = saved.SFXVolume
		}
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during initial game startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalMusicVolume = saved.MusicVolume
	globalSFXVolume = saved.SFXVolume

	if saved.Muted {
		globalMusicVolume = 0
		globalSFXVolume = 0
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// LoadBestTime returns the recorded best clear time in seconds, or 0
// when no run has been completed yet.
func LoadBestTime() float64 {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem("records")
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	var records SavedRecords
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return 0
	}

	return records.BestTimeSeconds
}

// SaveBestTime records a new best clear time.
func SaveBestTime(seconds float64) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(&SavedRecords{BestTimeSeconds: seconds})
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return
	}

	if err := gdataManager.SaveItem("records", data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
	}
}
