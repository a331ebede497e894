package components

import (
	"github.com/pandaescape/panda/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision body. Its Data field holds the owning
// *donburi.Entry so broadphase hits map back to entities.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Rect returns the body's current bounds.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

// SpaceData is the level's broadphase grid.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
