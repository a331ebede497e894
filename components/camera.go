package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the top-left viewport offset in world pixels.
type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
