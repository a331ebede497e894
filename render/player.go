package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/systems"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer renders the panda inside its collision box.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	w := e.World
	cfg := systems.ActiveConfig(w)
	camX, camY := cameraOffset(w)

	tags.Player.Each(w, func(entry *donburi.Entry) {
		r := components.Object.Get(entry).Rect()
		player := components.Player.Get(entry)
		// blink while enemies are ignored
		if player.Grace > 0 && (player.Grace/6)%2 == 1 {
			return
		}
		drawPanda(screen, player, float32(r.X-camX), float32(r.Y-camY), float32(r.W), cfg.Theme.PandaWhite, cfg.Theme.PandaBlack)
	})
}

// drawPanda lays out the panda relative to the top-left corner of a
// size x size box. Eyes look the way the panda faces; arms go up while
// climbing.
func drawPanda(screen *ebiten.Image, p *components.PlayerData, x, y, size float32, white, black color.Color) {
	s := size / 40
	cx := x + size/2
	look := 2 * s
	if p.Facing == components.FacingLeft {
		look = -look
	}

	// Ears
	vector.DrawFilledCircle(screen, cx-10*s, y+5*s, 5*s, black, true)
	vector.DrawFilledCircle(screen, cx+10*s, y+5*s, 5*s, black, true)

	// Body and feet
	vector.FillRect(screen, cx-11*s, y+22*s, 22*s, 13*s, white, true)
	vector.DrawFilledCircle(screen, cx-8*s, y+36*s, 4*s, black, true)
	vector.DrawFilledCircle(screen, cx+8*s, y+36*s, 4*s, black, true)

	// Arms
	armY := y + 26*s
	if p.Climbing {
		armY = y + 10*s
	}
	vector.DrawFilledCircle(screen, cx-14*s, armY, 4*s, black, true)
	vector.DrawFilledCircle(screen, cx+14*s, armY, 4*s, black, true)

	// Head
	vector.DrawFilledCircle(screen, cx, y+15*s, 12*s, white, true)

	// Eye patches and eyes
	vector.DrawFilledCircle(screen, cx-5*s+look, y+13*s, 4*s, black, true)
	vector.DrawFilledCircle(screen, cx+5*s+look, y+13*s, 4*s, black, true)
	vector.DrawFilledCircle(screen, cx-5*s+look, y+12*s, 1.5*s, white, true)
	vector.DrawFilledCircle(screen, cx+5*s+look, y+12*s, 1.5*s, white, true)

	// Nose
	vector.DrawFilledCircle(screen, cx+look, y+19*s, 2*s, black, true)
}
