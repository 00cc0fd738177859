package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"path/filepath"

	"github.com/automoto/trapland/config"
	"github.com/automoto/trapland/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

// Layer names the loader understands. Tile layers become collision
// geometry or spawns depending on their name; anything with a "render"
// property is also baked into the background image.
const (
	layerGround       = "ground"
	layerTraps        = "traps"
	layerDisappearing = "disappearing"
	layerSlow         = "slow"
	layerCoins        = "coins"
	layerArrows       = "arrows"
)

type PlayerSpawn struct {
	X float64
	Y float64
}

type ArrowSpawn struct {
	X, Y       float64
	VelX, VelY float64
}

type TileRect struct {
	X, Y, Width, Height float64
}

func (t TileRect) AABB() gamemath.AABB {
	return gamemath.NewAABB(t.X, t.Y, t.Width, t.Height)
}

// Level is the parsed form of one Tiled map: a prerendered background
// plus the geometry and spawn points the world scene instantiates.
type Level struct {
	Background      *ebiten.Image
	SolidTiles      []TileRect
	TrapTiles       []TileRect
	DisappearTiles  []TileRect
	SlowZones       []TileRect
	CoinSpawns      []PlayerSpawn
	ArrowSpawns     []ArrowSpawn
	PlayerSpawn     PlayerSpawn
	HasPlayerSpawn  bool
	Name            string
	Width           int
	Height          int
}

// Bounds is the world rectangle projectiles are kept inside.
func (l *Level) Bounds() gamemath.AABB {
	return gamemath.NewAABB(0, 0, float64(l.Width), float64(l.Height))
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
// This prevents creating thousands of duplicate *ebiten.Image structs for the same frame.
func (l *AnimationLoader) GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state.String(), frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheetPath := fmt.Sprintf("images/spritesheets/%s/%s.png", dir, config.StateToFileName[state])
	sheet := l.MustLoadImage(sheetPath)

	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

func GetObjectImage(name string) *ebiten.Image {
	path := fmt.Sprintf("images/objects/%s", name)
	return animationLoader.MustLoadImage(path)
}

func GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(dir, state, frameIndex, srcRect)
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levelPath := filepath.Join("levels", entry.Name())
			level := l.MustLoadLevel(levelPath)
			levels = append(levels, level)
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "spawn" {
			continue
		}
		for _, o := range og.Objects {
			level.PlayerSpawn = PlayerSpawn{X: o.X, Y: o.Y}
			level.HasPlayerSpawn = true
			break
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		collect := func(each func(rect TileRect)) {
			for y := 0; y < levelMap.Height; y++ {
				for x := 0; x < levelMap.Width; x++ {
					tile := layer.Tiles[y*levelMap.Width+x]
					if tile.IsNil() {
						continue
					}
					each(TileRect{
						X:      float64(x) * tileW,
						Y:      float64(y) * tileH,
						Width:  tileW,
						Height: tileH,
					})
				}
			}
		}

		switch layer.Name {
		case layerGround:
			collect(func(r TileRect) { level.SolidTiles = append(level.SolidTiles, r) })
		case layerTraps:
			collect(func(r TileRect) { level.TrapTiles = append(level.TrapTiles, r) })
		case layerDisappearing:
			collect(func(r TileRect) { level.DisappearTiles = append(level.DisappearTiles, r) })
		case layerSlow:
			collect(func(r TileRect) { level.SlowZones = append(level.SlowZones, r) })
		case layerCoins:
			collect(func(r TileRect) {
				// Center the coin inside its tile.
				level.CoinSpawns = append(level.CoinSpawns, PlayerSpawn{
					X: r.X + (r.Width-config.Coin.Width)/2,
					Y: r.Y + (r.Height-config.Coin.Height)/2,
				})
			})
		case layerArrows:
			collect(func(r TileRect) {
				level.ArrowSpawns = append(level.ArrowSpawns,
					arrowSpawnFor(r, level.Width, level.Height))
			})
		}
	}

	level.Background = ebiten.NewImage(level.Width, level.Height)

	// Render image layers first (backgrounds)
	for _, imgLayer := range levelMap.ImageLayers {
		shouldRender := imgLayer.Properties.GetBool("render")
		if !shouldRender || imgLayer.Image == nil {
			continue
		}

		imgPath := filepath.Join("levels", imgLayer.Image.Source)
		imgBytes, err := assetFS.ReadFile(imgPath)
		if err != nil {
			fmt.Printf("Warning: Failed to load image layer %s: %v\n", imgLayer.Name, err)
			continue
		}

		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			fmt.Printf("Warning: Failed to decode image layer %s: %v\n", imgLayer.Name, err)
			continue
		}

		opacity := imgLayer.Opacity
		if opacity <= 0 {
			img.Deallocate()
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(imgLayer.OffsetX), float64(imgLayer.OffsetY))
		op.ColorScale.ScaleAlpha(float32(opacity))
		level.Background.DrawImage(img, op)
		img.Deallocate()
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}

	// Render all tile layers marked with the "render" custom property.
	// Trap, disappearing-platform and projectile layers are drawn by
	// their own systems instead, so their tiles stay out of the baked
	// background.
	for i, layer := range levelMap.Layers {
		shouldRender := layer.Properties.GetBool("render")
		if !shouldRender {
			continue
		}

		if err := renderer.RenderLayer(i); err != nil {
			fmt.Printf("Warning: Failed to render layer %d: %v\n", i, err)
			continue
		}
		opacity := layer.Opacity
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		if opacity <= 0 {
			layerImage.Deallocate()
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(opacity))
		level.Background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return level
}

// arrowSpawnFor derives an arrow's launch velocity from where its tile
// sits in the map: arrows on the left half fly right and vice versa, and
// arrows in the top or bottom third get a diving or rising component.
func arrowSpawnFor(r TileRect, worldW, worldH int) ArrowSpawn {
	s := ArrowSpawn{X: r.X, Y: r.Y + (r.Height-config.Arrow.Height)/2}

	if r.X+r.Width/2 < float64(worldW)/2 {
		s.VelX = config.Arrow.Speed
	} else {
		s.VelX = -config.Arrow.Speed
	}

	centerY := r.Y + r.Height/2
	switch {
	case centerY < float64(worldH)/3:
		s.VelY = config.Arrow.DiveSpeed
	case centerY > 2*float64(worldH)/3:
		s.VelY = -config.Arrow.DiveSpeed
	}

	return s
}

var (
	animationLoader = NewAnimationLoader()
)

func GetSheet(dir string, state config.StateID) *ebiten.Image {
	path := fmt.Sprintf("images/spritesheets/%s/%s.png", dir, config.StateToFileName[state])
	return animationLoader.MustLoadImage(path)
}

// PreloadAllAnimations preloads all sprite sheets and frames to avoid lag on first render.
// This is especially important for WASM where texture uploads are slower.
func PreloadAllAnimations() {
	for dir, defs := range config.CharacterAnimations {
		for state, def := range defs {
			_ = GetSheet(dir, state)

			step := def.Step
			if step <= 0 {
				step = 1
			}
			for i := def.First; i <= def.Last; i += step {
				sx := i * config.Player.FrameWidth
				srcRect := image.Rect(sx, 0, sx+config.Player.FrameWidth, config.Player.FrameHeight)
				_ = GetFrame(dir, state, i, srcRect)
			}
		}
	}
}
