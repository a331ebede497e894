package systems

import (
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/gamemath"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the viewport toward the player, clamped to the level.
func UpdateCamera(w donburi.World) {
	followPlayer(w, ActiveConfig(w).Camera.FollowSmoothing)
}

// SnapCamera centres the viewport on the player immediately.
func SnapCamera(w donburi.World) {
	followPlayer(w, 1)
}

func followPlayer(w donburi.World, factor float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	window := ActiveConfig(w).Window
	viewW, viewH := float64(window.Width), float64(window.Height)

	cx, cy := components.Object.Get(playerEntry).Rect().Center()
	targetX, targetY := gamemath.CameraTarget(cx, cy, viewW, viewH)

	camera.Position.X = gamemath.FollowAxis(camera.Position.X, targetX, factor, level.Width, viewW)
	camera.Position.Y = gamemath.FollowAxis(camera.Position.Y, targetY, factor, level.Height, viewH)
}
