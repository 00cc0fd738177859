package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/trapland/components"
	cfg "github.com/automoto/trapland/config"
)

// SettingsCallbacks are invoked by the widgets; the owning scene wires
// them to the systems package, which holds the ECS handle.
type SettingsCallbacks struct {
	OnMusicVolume func(direction int)
	OnSFXVolume   func(direction int)
	OnToggleMute  func()
	OnFullscreen  func()
	OnResolution  func(direction int)
	OnBack        func()
}

// SettingsUI holds the ebitenui interface for the settings overlay
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsMenuData

	Callbacks SettingsCallbacks

	// Widget references for updates
	musicValueLabel      *widget.Label
	sfxValueLabel        *widget.Label
	muteButton           *widget.Button
	fullscreenButton     *widget.Button
	resolutionValueLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewSettingsUI creates the settings overlay with ebitenui
func NewSettingsUI(settings *components.SettingsMenuData, callbacks SettingsCallbacks) *SettingsUI {
	sui := &SettingsUI{
		Settings:  settings,
		Callbacks: callbacks,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Smaller fonts to fit the 640x360 screen
	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *SettingsUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Title
	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	// Music volume row
	sui.musicValueLabel = sui.buildStepperRow(contentContainer, "Music",
		sui.musicVolumeText(), func(dir int) {
			if sui.Callbacks.OnMusicVolume != nil {
				sui.Callbacks.OnMusicVolume(dir)
			}
			sui.UpdateUI()
		})

	// SFX volume row
	sui.sfxValueLabel = sui.buildStepperRow(contentContainer, "SFX",
		sui.sfxVolumeText(), func(dir int) {
			if sui.Callbacks.OnSFXVolume != nil {
				sui.Callbacks.OnSFXVolume(dir)
			}
			sui.UpdateUI()
		})

	// Mute toggle
	sui.muteButton = sui.buildToggleRow(contentContainer, "Mute",
		toggleText(sui.Settings.Muted), func() {
			if sui.Callbacks.OnToggleMute != nil {
				sui.Callbacks.OnToggleMute()
			}
			sui.UpdateUI()
		})

	// Fullscreen toggle
	sui.fullscreenButton = sui.buildToggleRow(contentContainer, "Fullscreen",
		toggleText(sui.Settings.Fullscreen), func() {
			if sui.Callbacks.OnFullscreen != nil {
				sui.Callbacks.OnFullscreen()
			}
			sui.UpdateUI()
		})

	// Resolution row
	sui.resolutionValueLabel = sui.buildStepperRow(contentContainer, "Resolution",
		sui.resolutionText(), func(dir int) {
			if sui.Callbacks.OnResolution != nil {
				sui.Callbacks.OnResolution(dir)
			}
			sui.UpdateUI()
		})

	// Back button
	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Back", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.Callbacks.OnBack != nil {
				sui.Callbacks.OnBack()
			}
		}),
	)
	contentContainer.AddChild(backButton)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildStepperRow adds a "label  <  value  >" row and returns the value label.
func (sui *SettingsUI) buildStepperRow(parent *widget.Container, label, value string, onStep func(int)) *widget.Label {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%-10s", label), &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	row.AddChild(sui.stepButton("<", func() { onStep(-1) }))

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text(value, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(valueLabel)

	row.AddChild(sui.stepButton(">", func() { onStep(+1) }))

	parent.AddChild(row)
	return valueLabel
}

// buildToggleRow adds a "label  [toggle]" row and returns the toggle button.
func (sui *SettingsUI) buildToggleRow(parent *widget.Container, label, value string, onToggle func()) *widget.Button {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%-10s", label), &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(value, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onToggle()
		}),
	)
	row.AddChild(button)

	parent.AddChild(row)
	return button
}

func (sui *SettingsUI) stepButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SettingsUI) musicVolumeText() string {
	return fmt.Sprintf("%3d%%", int(sui.Settings.MusicVolume*100))
}

func (sui *SettingsUI) sfxVolumeText() string {
	return fmt.Sprintf("%3d%%", int(sui.Settings.SFXVolume*100))
}

func (sui *SettingsUI) resolutionText() string {
	if sui.Settings.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		return cfg.SettingsMenu.Resolutions[sui.Settings.ResolutionIndex].Label
	}
	return "Unknown"
}

func toggleText(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

// UpdateUI refreshes widget labels from the settings component.
func (sui *SettingsUI) UpdateUI() {
	if sui.musicValueLabel != nil {
		sui.musicValueLabel.Label = sui.musicVolumeText()
	}
	if sui.sfxValueLabel != nil {
		sui.sfxValueLabel.Label = sui.sfxVolumeText()
	}
	if sui.resolutionValueLabel != nil {
		sui.resolutionValueLabel.Label = sui.resolutionText()
	}
	if sui.muteButton != nil {
		if textWidget := sui.muteButton.Text(); textWidget != nil {
			textWidget.Label = toggleText(sui.Settings.Muted)
		}
	}
	if sui.fullscreenButton != nil {
		if textWidget := sui.fullscreenButton.Text(); textWidget != nil {
			textWidget.Label = toggleText(sui.Settings.Fullscreen)
		}
	}
}
