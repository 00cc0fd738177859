package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/assets"
	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Viewport culling skips draw calls for entities that are currently
// off-screen. A small padding prevents sprites from popping at the edges.

type viewport struct {
	camX, camY             float64
	minX, maxX, minY, maxY float64
}

func currentViewport(e *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 64.0
	return viewport{
		camX: float64(width)/2 - camera.Position.X,
		camY: float64(height)/2 - camera.Position.Y,
		minX: camera.Position.X - float64(width)/2 - padding,
		maxX: camera.Position.X + float64(width)/2 + padding,
		minY: camera.Position.Y - float64(height)/2 - padding,
		maxY: camera.Position.Y + float64(height)/2 + padding,
	}, true
}

// DrawAnimated renders entities with an Animation component based on
// their current frame and state. In practice that is the player.
func DrawAnimated(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentViewport(e, screen)
	if !ok {
		return
	}

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Player) {
			return
		}
		player := components.Player.Get(entry)

		if player.PosX+player.Width < view.minX || player.PosX > view.maxX ||
			player.PosY+player.Height < view.minY || player.PosY > view.maxY {
			return
		}

		animData := components.Animation.Get(entry)
		if animData.CurrentAnimation == nil {
			return
		}

		frame := animData.CurrentAnimation.Frame()

		var img *ebiten.Image
		if frames, ok := animData.CachedFrames[animData.CurrentSheet]; ok {
			img = frames[frame]
		}

		// Fallback to runtime slicing if not cached (safety)
		if img == nil && animData.SpriteSheets[animData.CurrentSheet] != nil {
			sx := frame * animData.FrameWidth
			srcRect := image.Rect(sx, 0, sx+animData.FrameWidth, animData.FrameHeight)
			img = animData.SpriteSheets[animData.CurrentSheet].SubImage(srcRect).(*ebiten.Image)

			if animData.CachedFrames[animData.CurrentSheet] == nil {
				animData.CachedFrames[animData.CurrentSheet] = make(map[int]*ebiten.Image)
			}
			animData.CachedFrames[animData.CurrentSheet][frame] = img
		}

		if img == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet line up with the render rect.
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))

		if player.Facing == cfg.DirectionLeft {
			drawOp.GeoM.Scale(-1, 1)
		}

		drawOp.GeoM.Translate(player.PosX+player.Width/2, player.PosY+player.Height)
		drawOp.GeoM.Translate(view.camX, view.camY)

		screen.DrawImage(img, drawOp)
	})
}

var (
	trapImage        *ebiten.Image
	disappearImage   *ebiten.Image
	coinImage        *ebiten.Image
	arrowImage       *ebiten.Image
	arrowStuckDarken = float32(0.7)
)

// DrawPlatforms renders trap and disappearing platforms. Plain solid
// tiles are part of the baked level background and are skipped here.
func DrawPlatforms(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentViewport(e, screen)
	if !ok {
		return
	}

	if trapImage == nil {
		trapImage = assets.GetObjectImage("trap.png")
		disappearImage = assets.GetObjectImage("disappearing.png")
	}

	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		if platform.Variant == components.PlatformSolid || !platform.Rendered() {
			return
		}

		r := platform.Rect
		if r.X+r.W < view.minX || r.X > view.maxX || r.Y+r.H < view.minY || r.Y > view.maxY {
			return
		}

		img := trapImage
		if platform.Variant == components.PlatformDisappearing {
			img = disappearImage
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(r.X, r.Y)
		drawOp.GeoM.Translate(view.camX, view.camY)

		if platform.Variant == components.PlatformDisappearing && platform.Alpha < 1 {
			drawOp.ColorScale.ScaleAlpha(platform.Alpha)
		}

		screen.DrawImage(img, drawOp)
	})
}

// DrawProjectiles renders coins (with their bob offset) and arrows.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentViewport(e, screen)
	if !ok {
		return
	}

	if coinImage == nil {
		coinImage = assets.GetObjectImage("coin.png")
		arrowImage = assets.GetObjectImage("arrow.png")
	}

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectile := components.Projectile.Get(entry)
		if projectile.Removed {
			return
		}

		r := projectile.Rect
		if r.X+r.W < view.minX || r.X > view.maxX || r.Y+r.H < view.minY || r.Y > view.maxY {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		switch projectile.Variant {
		case components.ProjectileCoin:
			drawOp.GeoM.Translate(r.X, r.Y+projectile.BobOffset())
			drawOp.GeoM.Translate(view.camX, view.camY)
			screen.DrawImage(coinImage, drawOp)

		case components.ProjectileArrow:
			// Arrow art points right; mirror for leftward flight.
			if projectile.VelX < 0 || (projectile.Stuck && projectile.SpawnVelX < 0) {
				drawOp.GeoM.Scale(-1, 1)
				drawOp.GeoM.Translate(r.W, 0)
			}
			drawOp.GeoM.Translate(r.X, r.Y)
			drawOp.GeoM.Translate(view.camX, view.camY)
			if projectile.Stuck {
				drawOp.ColorScale.Scale(arrowStuckDarken, arrowStuckDarken, arrowStuckDarken, 1)
			}
			screen.DrawImage(arrowImage, drawOp)
		}
	})
}
