package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Platform     = donburi.NewTag().SetName("Platform")
	ClimbSurface = donburi.NewTag().SetName("ClimbSurface")
	Cage         = donburi.NewTag().SetName("Cage")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Decoration   = donburi.NewTag().SetName("Decoration")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid  = "solid"
	ResolvClimb  = "climb"
	ResolvShoot  = "shoot"
	ResolvCage   = "cage"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
