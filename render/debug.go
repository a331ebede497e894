package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/systems"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision body and prints tick rate and player
// flags. Only drawn with debug enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	w := e.World
	cfg := systems.ActiveConfig(w)
	if !cfg.Debug.Enabled {
		return
	}

	lines := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if game := systems.GetGame(w); game != nil {
		lines += fmt.Sprintf("\nState: %s", game.State)
	}
	if playerEntry, ok := tags.Player.First(w); ok {
		p := components.Player.Get(playerEntry)
		lines += fmt.Sprintf("\nClimbing: %v  OnGround: %v\nV: (%0.2f, %0.2f)", p.Climbing, p.OnGround, p.SpeedX, p.SpeedY)
	}
	ebitenutil.DebugPrintAt(screen, lines, hudMargin, screen.Bounds().Dy()-80)

	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	camX, camY := cameraOffset(w)
	viewW, viewH := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		if !visible(obj.X, obj.Y, obj.W, obj.H, camX, camY, viewW, viewH) {
			continue
		}

		c := color.Color(cfg.Theme.DebugOutline)
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}
		vector.StrokeRect(screen, float32(obj.X-camX), float32(obj.Y-camY), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
