package config

// StateID identifies a discrete player movement state. The transition
// priority when several apply is Crouching > Jumping > Moving > Idle.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Moving
	Jumping
	Crouching
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Jumping:
		return "jumping"
	case Crouching:
		return "crouching"
	}
	return "none"
}

// StateToFileName maps states to sprite sheet base names under
// assets/images/spritesheets/<key>/.
var StateToFileName = map[StateID]string{
	Idle:      "idle",
	Moving:    "moving",
	Jumping:   "jumping",
	Crouching: "crouching",
}
