package components

import (
	"github.com/pandaescape/panda/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Index         int
	Name          string
	Width, Height float64
	PlayerStart   math.Vec2

	// Platforms in layout order. Platforms never change after the level is
	// built, so movement resolves against this slice instead of querying.
	Platforms []gamemath.Rect
}

var Level = donburi.NewComponentType[LevelData]()
