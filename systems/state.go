package systems

import (
	"github.com/automoto/trapland/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates mirrors the player's physics state into the animation
// state component and swaps the active animation on change.
func UpdateStates(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		state := components.State.Get(e)
		anim := components.Animation.Get(e)

		state.CurrentState = player.State
		if state.CurrentState != state.PreviousState {
			state.StateTimer = 0
			anim.SetAnimation(state.CurrentState)
			state.PreviousState = state.CurrentState
		} else {
			state.StateTimer++
		}

		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
