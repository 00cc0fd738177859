package events

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Gameplay events decouple the systems that detect something from the
// systems that react to it (audio, HUD). Publishers fire during their
// update; subscribers run when the scene processes the event queue.

type PlayerJumped struct{}

type PlayerLanded struct{}

type PlayerDashed struct{}

type PlayerDied struct {
	X, Y float64
}

type CoinCollected struct {
	Remaining int
}

type PlatformVanished struct {
	X, Y float64
}

type LevelCleared struct {
	TimeSeconds float64
}

var (
	PlayerJumpedEvent     = events.NewEventType[PlayerJumped]()
	PlayerLandedEvent     = events.NewEventType[PlayerLanded]()
	PlayerDashedEvent     = events.NewEventType[PlayerDashed]()
	PlayerDiedEvent       = events.NewEventType[PlayerDied]()
	CoinCollectedEvent    = events.NewEventType[CoinCollected]()
	PlatformVanishedEvent = events.NewEventType[PlatformVanished]()
	LevelClearedEvent     = events.NewEventType[LevelCleared]()
)

// ProcessAll drains every pending event, invoking subscribers in
// publish order.
func ProcessAll(w donburi.World) {
	events.ProcessAllEvents(w)
}
