package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/gamemath"
	"github.com/automoto/trapland/tags"
)

// UpdateDebug toggles hitbox rendering on the debug key.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
	}
}

// DrawDebug renders broad-phase objects and the exact collision bounds
// the resolver tests, when hitbox rendering is enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}

	view, ok := currentViewport(e, screen)
	if !ok {
		return
	}

	// Broad-phase objects, colored by tag.
	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			if obj.X+obj.W < view.minX || obj.X > view.maxX ||
				obj.Y+obj.H < view.minY || obj.Y > view.maxY {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvTrap):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvDisappearing):
				c = color.RGBA{255, 140, 0, 255}
			case obj.HasTags(tags.ResolvCoin):
				c = color.RGBA{255, 255, 0, 255}
			case obj.HasTags(tags.ResolvArrow):
				c = color.RGBA{0, 255, 0, 255}
			case obj.HasTags(tags.ResolvSlow):
				c = color.RGBA{120, 80, 255, 255}
			}

			drawOutline(screen, obj.X+view.camX, obj.Y+view.camY, obj.W, obj.H, c)
		}
	}

	// Exact narrow-phase bounds on top of the broad-phase mirrors.
	if playerEntry, ok := components.Player.First(e.World); ok {
		player := components.Player.Get(playerEntry)
		drawAABB(screen, view, player.Bounds(), color.RGBA{255, 255, 255, 255})
		drawAABB(screen, view, player.GroundProbe(), color.RGBA{0, 200, 255, 255})
	}

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		if platform.Variant == components.PlatformTrap {
			drawAABB(screen, view, platform.Bounds(), color.RGBA{255, 80, 80, 255})
		}
	})
}

func drawAABB(screen *ebiten.Image, view viewport, b gamemath.AABB, c color.RGBA) {
	if b.Empty() {
		return
	}
	drawOutline(screen, b.X+view.camX, b.Y+view.camY, b.W, b.H, c)
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false)
}
