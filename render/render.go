// Package render draws the world with ebiten vector shapes and text. It
// only reads simulation state.
package render

import (
	"github.com/pandaescape/panda/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Renderer layers, drawn in order.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
	LayerScreens
)

// cullPadding keeps shapes that hang over their body, like palm leaves,
// from popping at the viewport edges.
const cullPadding = 64.0

// cameraOffset returns the top-left of the viewport in world coordinates.
func cameraOffset(w donburi.World) (float64, float64) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	cam := components.Camera.Get(entry)
	return cam.Position.X, cam.Position.Y
}

// visible reports whether a world-space box overlaps the padded viewport.
func visible(x, y, w, h, camX, camY, viewW, viewH float64) bool {
	return x+w >= camX-cullPadding && x <= camX+viewW+cullPadding &&
		y+h >= camY-cullPadding && y <= camY+viewH+cullPadding
}
