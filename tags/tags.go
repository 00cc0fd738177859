package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for the broad collision phase
const (
	ResolvSolid        = "solid"
	ResolvTrap         = "trap"
	ResolvDisappearing = "disappearing"
	ResolvCoin         = "coin"
	ResolvArrow        = "arrow"
	ResolvSlow         = "slow"
	ResolvPlayer       = "Player"
)
