package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Overrides mirrors the tunables that may be adjusted from a local
// trapland.yaml without rebuilding. Pointer fields distinguish "not
// set" from zero values; anything absent keeps its compiled default.
type Overrides struct {
	Game struct {
		Dt *float64 `yaml:"dt"`
	} `yaml:"game"`
	Player struct {
		MoveSpeed      *float64 `yaml:"moveSpeed"`
		Gravity        *float64 `yaml:"gravity"`
		JumpForce      *float64 `yaml:"jumpForce"`
		JumpDuration   *float64 `yaml:"jumpDuration"`
		DashSpeed      *float64 `yaml:"dashSpeed"`
		DashDuration   *float64 `yaml:"dashDuration"`
		DashCooldown   *float64 `yaml:"dashCooldown"`
		SlowMultiplier *float64 `yaml:"slowMultiplier"`
	} `yaml:"player"`
	Trap struct {
		HitboxReduction *float64 `yaml:"hitboxReduction"`
	} `yaml:"trap"`
	Disappearing struct {
		DisappearDelay *float64 `yaml:"disappearDelay"`
		ReappearDelay  *float64 `yaml:"reappearDelay"`
	} `yaml:"disappearing"`
	Coin struct {
		Bounce       *bool    `yaml:"bounce"`
		BobAmplitude *float64 `yaml:"bobAmplitude"`
		BobFrequency *float64 `yaml:"bobFrequency"`
	} `yaml:"coin"`
	Debug struct {
		SkipMenu     *bool `yaml:"skipMenu"`
		DrawHitboxes *bool `yaml:"drawHitboxes"`
	} `yaml:"debug"`
}

// LoadOverrides reads path and applies any set values onto the global
// configuration. A missing file is not an error; a malformed file is.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config overrides: %w", err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config overrides: %w", err)
	}

	applyFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	applyBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	applyFloat(&C.Dt, o.Game.Dt)
	if C.Dt > C.MaxDt {
		C.Dt = C.MaxDt
	}
	applyFloat(&Player.MoveSpeed, o.Player.MoveSpeed)
	applyFloat(&Player.Gravity, o.Player.Gravity)
	applyFloat(&Player.JumpForce, o.Player.JumpForce)
	applyFloat(&Player.JumpDuration, o.Player.JumpDuration)
	applyFloat(&Player.DashSpeed, o.Player.DashSpeed)
	applyFloat(&Player.DashDuration, o.Player.DashDuration)
	applyFloat(&Player.DashCooldown, o.Player.DashCooldown)
	applyFloat(&Player.SlowMultiplier, o.Player.SlowMultiplier)
	applyFloat(&Trap.HitboxReduction, o.Trap.HitboxReduction)
	applyFloat(&Disappearing.DisappearDelay, o.Disappearing.DisappearDelay)
	applyFloat(&Disappearing.ReappearDelay, o.Disappearing.ReappearDelay)
	applyBool(&Coin.Bounce, o.Coin.Bounce)
	applyFloat(&Coin.BobAmplitude, o.Coin.BobAmplitude)
	applyFloat(&Coin.BobFrequency, o.Coin.BobFrequency)
	applyBool(&Debug.SkipMenu, o.Debug.SkipMenu)
	applyBool(&Debug.DrawHitboxes, o.Debug.DrawHitboxes)

	return nil
}

// WatchOverrides reloads the override file whenever it changes, so
// physics tuning can be iterated while the game is running. The watcher
// runs until the process exits.
func WatchOverrides(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}

	// Watch the directory: editors commonly replace the file on save,
	// which drops a watch placed on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := LoadOverrides(path); err != nil {
					log.Printf("Warning: config reload failed: %v", err)
					continue
				}
				log.Printf("Reloaded config overrides from %s", path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: config watcher: %v", err)
			}
		}
	}()

	return nil
}
