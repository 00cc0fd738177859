package systems

import (
	"github.com/automoto/trapland/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects commits every resolv object's position changes back to
// the broad-phase space grid.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Update()
	})
}
