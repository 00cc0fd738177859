package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
	"github.com/automoto/trapland/fonts"
)

var winFade *gween.Tween

// getWin returns the win overlay singleton, or nil if none exists yet.
func getWin(e *ecs.ECS) *components.WinData {
	entry, ok := components.Win.First(e.World)
	if !ok {
		return nil
	}
	return components.Win.Get(entry)
}

// GetOrCreateWin returns the singleton Win component, creating if needed.
func GetOrCreateWin(e *ecs.ECS) *components.WinData {
	if _, ok := components.Win.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Win))
		components.Win.SetValue(ent, components.WinData{})
	}

	ent, _ := components.Win.First(e.World)
	return components.Win.Get(ent)
}

// NewUpdateWin creates the win-overlay system. It latches the overlay
// when the level flips to won, records the best time, and returns to
// the menu on confirm.
func NewUpdateWin(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		win := GetOrCreateWin(e)
		level := getLevel(e)

		if !win.IsComplete && level != nil && level.Won {
			win.IsComplete = true
			win.ClearTime = level.ElapsedSeconds
			win.FadeElapsed = 0
			winFade = gween.New(0, 1, float32(cfg.Win.FadeInSeconds), ease.OutQuad)

			win.BestTime = LoadBestTime()
			if win.BestTime == 0 || win.ClearTime < win.BestTime {
				win.NewBest = true
				win.BestTime = win.ClearTime
				SaveBestTime(win.ClearTime)
			}

			FadeOutMusic(e)
		}

		if !win.IsComplete {
			return
		}

		win.FadeElapsed += cfg.C.Dt

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawWin renders the level-clear overlay with a short fade-in.
func DrawWin(e *ecs.ECS, screen *ebiten.Image) {
	win := getWin(e)
	if win == nil || !win.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	alpha := float32(1)
	if winFade != nil {
		alpha, _ = winFade.Update(float32(cfg.C.Dt))
	}

	bg := cfg.Win.BackgroundColor
	bg.A = uint8(float32(bg.A) * alpha)
	vector.FillRect(screen, 0, 0, float32(width), float32(height), bg, false)

	// Hold the text until the backdrop is mostly in.
	if alpha < 0.6 {
		return
	}

	titleFont := fonts.Title.Get()
	title := cfg.Win.Title
	text.Draw(screen, title, titleFont, centerTextX(screen, title, titleFont),
		int(cfg.Win.TitleY), cfg.Win.TitleColor)

	bodyFont := fonts.Body.Get()
	lines := []string{
		fmt.Sprintf("Time: %s", FormatTime(win.ClearTime)),
		fmt.Sprintf("Best: %s", FormatTime(win.BestTime)),
	}
	if win.NewBest {
		lines[1] = fmt.Sprintf("Best: %s  NEW!", FormatTime(win.BestTime))
	}
	if level := getLevel(e); level != nil {
		lines = append(lines, fmt.Sprintf("Deaths: %d", level.Deaths))
	}

	lineHeight := 22.0
	for i, line := range lines {
		y := cfg.Win.StatsY + float64(i)*lineHeight
		text.Draw(screen, line, bodyFont, centerTextX(screen, line, bodyFont),
			int(y), cfg.Win.TextColor)
	}

	hintFont := fonts.Small.Get()
	hint := winHint(getOrCreateInput(e).LastInputMethod)
	text.Draw(screen, hint, hintFont, centerTextX(screen, hint, hintFont),
		int(cfg.Win.HintY), cfg.Win.HintColor)
}

func winHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Press A to return to menu"
	}
	return cfg.Win.ContinueHint
}

// centerTextX computes the X that centers s on the screen.
func centerTextX(screen *ebiten.Image, s string, face font.Face) int {
	bounds := text.BoundString(face, s)
	return (screen.Bounds().Dx() - bounds.Dx()) / 2
}

// FormatTime renders a duration in seconds as M:SS.cc.
func FormatTime(seconds float64) string {
	if seconds <= 0 {
		return "-:--.--"
	}
	minutes := int(seconds) / 60
	rem := seconds - float64(minutes*60)
	return fmt.Sprintf("%d:%05.2f", minutes, rem)
}
