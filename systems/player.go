package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/collision"
	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/events"
	"github.com/automoto/trapland/gamemath"
	"github.com/automoto/trapland/tags"
)

var playerResolver = collision.NewResolver()

// UpdatePlayer advances the player one frame: intent, physics
// integration, ground retention, narrow-phase resolution against
// obstacles and projectiles, slow-zone status and death handling.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object
	input := getOrCreateInput(ecs)

	dt := cfg.C.Dt

	player.HandleMovement(dt, buildIntent(input))
	player.Update(dt)

	// Keep the broad-phase mirror in sync before querying it.
	syncPlayerObject(player, obj)

	// Ground retention: walking off a ledge clears grounded even though
	// no collision fires.
	if player.OnGround && !probeGround(player, obj) {
		player.OnGround = false
	}

	// Narrow phase: obstacles first so the player is pushed out of
	// walls before projectile contacts are judged.
	obstacles := collectCandidates(ecs, obj,
		tags.ResolvSolid, tags.ResolvTrap, tags.ResolvDisappearing)
	playerResolver.Resolve(player, obstacles)

	projectiles := collectCandidates(ecs, obj, tags.ResolvCoin, tags.ResolvArrow)
	playerResolver.Resolve(player, projectiles)

	player.Slowed = touchesZone(player, obj, tags.ResolvSlow)

	syncPlayerObject(player, obj)

	publishPlayerEvents(ecs, player)

	if player.Dead {
		level := getLevel(ecs)
		if level != nil {
			level.Deaths++
		}
		events.PlayerDiedEvent.Publish(ecs.World, events.PlayerDied{X: player.PosX, Y: player.PosY})
		player.Respawn()
		syncPlayerObject(player, obj)
	}
}

func buildIntent(input *components.InputData) components.Intent {
	return components.Intent{
		MoveLeft:    GetAction(input, cfg.ActionMoveLeft).Pressed,
		MoveRight:   GetAction(input, cfg.ActionMoveRight).Pressed,
		Jump:        GetAction(input, cfg.ActionJump).Pressed,
		JumpPressed: GetAction(input, cfg.ActionJump).JustPressed,
		FastFall:    GetAction(input, cfg.ActionFastFall).Pressed,
		DashPressed: GetAction(input, cfg.ActionDash).JustPressed,
		Crouch:      GetAction(input, cfg.ActionCrouch).Pressed,
	}
}

func syncPlayerObject(player *components.PlayerData, obj *resolv.Object) {
	obj.X = player.PosX
	obj.Y = player.PosY
	obj.Update()
}

// probeGround checks a thin strip under the player's hitbox against
// solid obstacle bounds.
func probeGround(player *components.PlayerData, obj *resolv.Object) bool {
	probe := player.GroundProbe()

	check := obj.Check(0, probe.H+1, tags.ResolvSolid, tags.ResolvDisappearing)
	if check == nil {
		return false
	}
	for _, other := range check.Objects {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Platform) {
			continue
		}
		platform := components.Platform.Get(entry)
		b := platform.Bounds()
		if b.Empty() {
			continue
		}
		if probe.X < b.Right() && probe.Right() > b.X &&
			probe.Y < b.Bottom() && probe.Bottom() > b.Y {
			return true
		}
	}
	return false
}

// collectCandidates gathers narrow-phase candidates near the player via
// the resolv broad phase. Over-approximation is fine; the resolver
// re-tests exact bounds.
func collectCandidates(ecs *ecs.ECS, obj *resolv.Object, checkTags ...string) []collision.Collidable {
	check := obj.Check(0, 0, checkTags...)
	if check == nil {
		return nil
	}

	var out []collision.Collidable
	for _, other := range check.Objects {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		switch {
		case entry.HasComponent(components.Platform):
			out = append(out, components.Platform.Get(entry))
		case entry.HasComponent(components.Projectile):
			out = append(out, components.Projectile.Get(entry))
		}
	}
	return out
}

// touchesZone narrows broad-phase zone contacts to an exact overlap
// test against the player's reduced hitbox. The cell query alone is not
// enough: sharing a grid cell does not mean touching.
func touchesZone(player *components.PlayerData, obj *resolv.Object, tag string) bool {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	bounds := player.Bounds()
	for _, other := range check.Objects {
		zone := gamemath.AABB{X: other.X, Y: other.Y, W: other.W, H: other.H}
		if gamemath.Intersects(bounds, zone) {
			return true
		}
	}
	return false
}

func publishPlayerEvents(ecs *ecs.ECS, player *components.PlayerData) {
	if player.JustJumped {
		events.PlayerJumpedEvent.Publish(ecs.World, events.PlayerJumped{})
	}
	if player.JustLanded {
		events.PlayerLandedEvent.Publish(ecs.World, events.PlayerLanded{})
		player.JustLanded = false
	}
	if player.JustDashed {
		events.PlayerDashedEvent.Publish(ecs.World, events.PlayerDashed{})
	}
}
