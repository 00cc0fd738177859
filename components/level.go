package components

import (
	"github.com/automoto/trapland/assets"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton run state for the loaded level: the map
// itself plus the counters the HUD and win check read.
type LevelData struct {
	CurrentLevel *assets.Level

	CoinsCollected int
	CoinsTotal     int
	Deaths         int
	ElapsedSeconds float64
	Won            bool
}

var Level = donburi.NewComponentType[LevelData]()
