package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuData stores the current state of the settings overlay.
// The widgets themselves live in the ui package; this is the data they
// read and mutate.
type SettingsMenuData struct {
	IsOpen          bool
	OpenedFromPause bool // Track origin for "Back" navigation

	// Current settings values
	MusicVolume     float64 // stepped: 0.0, 0.25, 0.50, 0.75, 1.0
	SFXVolume       float64
	Muted           bool
	Fullscreen      bool
	ResolutionIndex int

	// For mute restore
	PreMuteMusicVol float64
	PreMuteSFXVol   float64
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
