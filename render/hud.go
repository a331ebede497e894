package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/fonts"
	"github.com/pandaescape/panda/systems"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin   = 10
	livesMargin = 6
	livesRadius = 8
)

// DrawHUD shows the level, score and remaining lives while a level is on
// screen.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	w := e.World
	game := systems.GetGame(w)
	if game == nil || game.State == config.StateMenu {
		return
	}
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	cfg := systems.ActiveConfig(w)

	face := fonts.Regular.Get()
	text.Draw(screen, fmt.Sprintf("Level %d: %s", level.Index, level.Name), face, hudMargin, hudMargin+16, cfg.Theme.Text)
	text.Draw(screen, fmt.Sprintf("Score: %d", game.Score), face, hudMargin, hudMargin+36, cfg.Theme.TextAccent)

	livesEntry, ok := components.Lives.First(w)
	if !ok {
		return
	}
	lives := components.Lives.Get(livesEntry)
	width := float32(screen.Bounds().Dx())
	for i := 0; i < lives.Lives; i++ {
		cx := width - hudMargin - livesRadius - float32(i)*(2*livesRadius+livesMargin)
		cy := float32(hudMargin + livesRadius + 4)
		vector.DrawFilledCircle(screen, cx-5, cy-6, 3, cfg.Theme.PandaBlack, true)
		vector.DrawFilledCircle(screen, cx+5, cy-6, 3, cfg.Theme.PandaBlack, true)
		vector.DrawFilledCircle(screen, cx, cy, livesRadius, cfg.Theme.PandaWhite, true)
		vector.DrawFilledCircle(screen, cx-3, cy-1, 2, cfg.Theme.PandaBlack, true)
		vector.DrawFilledCircle(screen, cx+3, cy-1, 2, cfg.Theme.PandaBlack, true)
	}
}
