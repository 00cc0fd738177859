package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/trapland/assets"
	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/fonts"
)

var hudCoinIcon *ebiten.Image
var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the coin counter, run timer and death count in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	level := getLevel(e)
	if level == nil || level.CurrentLevel == nil {
		return
	}

	// Lazy load coin icon
	if hudCoinIcon == nil {
		hudCoinIcon = assets.GetObjectImage("coin.png")
	}

	margin := cfg.HUD.Margin
	fontFace := fonts.Body.Get()

	hudDrawOp.GeoM.Reset()
	hudDrawOp.GeoM.Translate(margin, margin)
	screen.DrawImage(hudCoinIcon, hudDrawOp)

	iconW := float64(hudCoinIcon.Bounds().Dx())
	iconH := float64(hudCoinIcon.Bounds().Dy())

	coins := fmt.Sprintf("%d / %d", level.CoinsCollected, level.CoinsTotal)
	text.Draw(screen, coins, fontFace,
		int(margin+iconW+6), int(margin+iconH-2), cfg.HUD.TextColor)

	clock := FormatTime(level.ElapsedSeconds)
	text.Draw(screen, clock, fontFace,
		int(margin), int(margin+iconH+18), cfg.HUD.TextColor)

	if level.Deaths > 0 {
		deaths := fmt.Sprintf("Deaths: %d", level.Deaths)
		text.Draw(screen, deaths, fontFace,
			int(margin), int(margin+iconH+36), cfg.HUD.TextColor)
	}
}
