package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/events"
)

// UpdatePlatforms advances disappearing-platform timers and publishes
// the vanish event on the frame a platform winks out.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := cfg.C.Dt

	components.Platform.Each(ecs.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		if platform.Update(dt) {
			events.PlatformVanishedEvent.Publish(ecs.World, events.PlatformVanished{
				X: platform.Rect.X,
				Y: platform.Rect.Y,
			})
		}
	})
}
