package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundDash
	// Pickups and hazards
	SoundCoin
	SoundDeath
	SoundPlatformVanish
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundLevelClear
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames
	MusicPath         string
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
		MusicPath:         "audio/music/theme.wav",
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:           "audio/sfx/jump.wav",
			SoundLand:           "audio/sfx/land.wav",
			SoundDash:           "audio/sfx/dash.wav",
			SoundCoin:           "audio/sfx/coin.wav",
			SoundDeath:          "audio/sfx/death.wav",
			SoundPlatformVanish: "audio/sfx/vanish.wav",
			SoundMenuNavigate:   "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:     "audio/sfx/menu_select.wav",
			SoundLevelClear:     "audio/sfx/level_clear.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundDeath:      1.4,
			SoundLevelClear: 1.2,
		},
	}
}
