package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/fonts"
	"github.com/pandaescape/panda/systems"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var menuControls = []string{
	"Arrows / A D: move",
	"Space / X: jump",
	"Up / Down: climb bamboo",
	"P: pause   Esc: quit",
}

// DrawScreens draws the menu and the overlays for every state other than
// Playing.
func DrawScreens(e *ecs.ECS, screen *ebiten.Image) {
	w := e.World
	game := systems.GetGame(w)
	if game == nil {
		return
	}
	cfg := systems.ActiveConfig(w)
	theme := cfg.Theme
	height := screen.Bounds().Dy()

	switch game.State {
	case config.StateMenu:
		drawCentered(screen, cfg.Window.Title, fonts.Title.Get(), height/3, theme.TextAccent)
		drawCentered(screen, "Free every caged animal to clear a level", fonts.Regular.Get(), height/3+40, theme.Text)
		drawCentered(screen, "Press ENTER to Start", fonts.Bold.Get(), height/2+10, theme.Text)
		for i, line := range menuControls {
			drawCentered(screen, line, fonts.Small.Get(), height/2+60+i*20, theme.Text)
		}

	case config.StatePaused:
		overlay(screen, theme.Overlay)
		drawCentered(screen, "Paused", fonts.Title.Get(), height/2, theme.Text)
		drawCentered(screen, "Press P to resume", fonts.Small.Get(), height/2+36, theme.Text)

	case config.StateLevelComplete:
		overlay(screen, theme.Overlay)
		drawCentered(screen, "Level Complete!", fonts.Title.Get(), height/2-20, theme.TextAccent)
		drawCentered(screen, fmt.Sprintf("Score: %d", game.Score), fonts.Bold.Get(), height/2+20, theme.Text)
		drawCentered(screen, "Press ENTER to continue", fonts.Small.Get(), height/2+56, theme.Text)

	case config.StateGameOver:
		overlay(screen, theme.Overlay)
		title, titleColor := "Game Over", theme.Enemy
		if game.Victory {
			title, titleColor = "You freed every animal!", theme.TextAccent
		}
		drawCentered(screen, title, fonts.Title.Get(), height/2-20, titleColor)
		drawCentered(screen, fmt.Sprintf("Final score: %d", game.Score), fonts.Bold.Get(), height/2+20, theme.Text)
		drawCentered(screen, "ENTER: menu   Esc: quit", fonts.Small.Get(), height/2+56, theme.Text)
	}
}

func overlay(screen *ebiten.Image, c color.Color) {
	vector.FillRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), c, false)
}

// drawCentered draws s horizontally centred with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, c)
}
