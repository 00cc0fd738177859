package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps a sprite-sheet directory (e.g., "player")
// to its per-state animation definitions. Sheets are horizontal strips
// of FrameWidth x FrameHeight frames.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:      {First: 0, Last: 3, Step: 1, Speed: 10},
		Moving:    {First: 0, Last: 3, Step: 1, Speed: 6},
		Jumping:   {First: 0, Last: 1, Step: 1, Speed: 8},
		Crouching: {First: 0, Last: 1, Step: 1, Speed: 12},
	},
}
