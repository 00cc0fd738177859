package components

import "github.com/yohamta/donburi"

// WinData stores the state of the level-clear overlay.
type WinData struct {
	IsComplete  bool
	ClearTime   float64 // Seconds taken to clear the level
	BestTime    float64 // Best recorded time, 0 when unset
	NewBest     bool
	FadeElapsed float64
}

var Win = donburi.NewComponentType[WinData]()
