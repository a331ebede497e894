package components

import "github.com/yohamta/donburi"

// ClimbSurfaceData marks a bamboo stalk. Collectible shoots are removed on
// contact and award Points.
type ClimbSurfaceData struct {
	Collectible bool
	Points      int
}

var ClimbSurface = donburi.NewComponentType[ClimbSurfaceData]()
