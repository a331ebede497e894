package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/levels"
	"github.com/pandaescape/panda/systems"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	bambooSegment = 30.0
	cageBarGap    = 10.0
	palmHeight    = 120.0
	waveSpacing   = 40.0
)

// DrawLevel renders the sky, parallax backdrop, decorations and every
// level body, offset by the camera.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	w := e.World
	cfg := systems.ActiveConfig(w)
	screen.Fill(cfg.Theme.Sky)

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	camX, camY := cameraOffset(w)
	viewW, viewH := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	drawBackdrop(screen, cfg, camX, viewW, viewH)
	drawDecorations(w, screen, cfg, camX, camY, viewW, viewH)

	tags.Platform.Each(w, func(entry *donburi.Entry) {
		r := components.Object.Get(entry).Rect()
		if !visible(r.X, r.Y, r.W, r.H, camX, camY, viewW, viewH) {
			return
		}
		c := cfg.Theme.Platform
		if r.Bottom() >= level.Height {
			c = cfg.Theme.Ground
		}
		vector.FillRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.W), float32(r.H), c, false)
	})

	tags.ClimbSurface.Each(w, func(entry *donburi.Entry) {
		r := components.Object.Get(entry).Rect()
		if !visible(r.X, r.Y, r.W, r.H, camX, camY, viewW, viewH) {
			return
		}
		drawStalk(screen, cfg, components.ClimbSurface.Get(entry).Collectible, r.X-camX, r.Y-camY, r.W, r.H)
	})

	tags.Cage.Each(w, func(entry *donburi.Entry) {
		r := components.Object.Get(entry).Rect()
		if !visible(r.X, r.Y, r.W, r.H, camX, camY, viewW, viewH) {
			return
		}
		drawCage(screen, cfg, components.Cage.Get(entry), r.X-camX, r.Y-camY, r.W)
	})

	tags.Enemy.Each(w, func(entry *donburi.Entry) {
		r := components.Object.Get(entry).Rect()
		if !visible(r.X, r.Y, r.W, r.H, camX, camY, viewW, viewH) {
			return
		}
		drawEnemy(screen, cfg, components.Enemy.Get(entry).FacingRight, r.X-camX, r.Y-camY, r.W, r.H)
	})
}

// drawBackdrop paints rolling hills that scroll slower than the level.
func drawBackdrop(screen *ebiten.Image, cfg *config.Config, camX, viewW, viewH float64) {
	shift := camX * cfg.Decoration.BackdropParallax
	base := float32(viewH * 0.75)
	const hillRadius = 120.0
	start := math.Floor(shift/(hillRadius*1.5)) * hillRadius * 1.5
	for x := start; x < shift+viewW+hillRadius; x += hillRadius * 1.5 {
		vector.DrawFilledCircle(screen, float32(x-shift), base, hillRadius, cfg.Theme.Backdrop, true)
	}
	vector.FillRect(screen, 0, base, float32(viewW), float32(viewH)-base, cfg.Theme.Backdrop, false)
}

func drawDecorations(w donburi.World, screen *ebiten.Image, cfg *config.Config, camX, camY, viewW, viewH float64) {
	components.Decoration.Each(w, func(entry *donburi.Entry) {
		d := components.Decoration.Get(entry)
		switch d.Kind {
		case levels.DecorWave:
			drawWaves(screen, cfg, d, camX*cfg.Decoration.WaveParallax, camY, viewW, viewH)
		case levels.DecorFish:
			x := d.X - camX*cfg.Decoration.WaveParallax
			y := d.Y - float64(d.Value) - camY
			vector.DrawFilledCircle(screen, float32(x), float32(y), 8, cfg.Theme.Fish, true)
			vector.FillRect(screen, float32(x-14), float32(y-5), 7, 10, cfg.Theme.Fish, false)
		case levels.DecorPalm:
			if !visible(d.X, d.Y-palmHeight, 0, palmHeight, camX, camY, viewW, viewH) {
				return
			}
			drawPalm(screen, cfg, d.X-camX, d.Y-camY, float64(d.Value))
		}
	})
}

// drawWaves fills the sea from the bobbing waterline down and adds crests.
func drawWaves(screen *ebiten.Image, cfg *config.Config, d *components.DecorationData, shift, camY, viewW, viewH float64) {
	top := d.Y + float64(d.Value) - camY
	vector.FillRect(screen, 0, float32(top), float32(viewW), float32(viewH-top), cfg.Theme.Sea, false)

	start := math.Floor((shift-d.X)/waveSpacing)*waveSpacing + d.X
	for x := start; x < shift+viewW+waveSpacing; x += waveSpacing {
		vector.DrawFilledCircle(screen, float32(x-shift), float32(top), waveSpacing/2, cfg.Theme.Sea, true)
	}
}

// drawPalm draws a trunk rooted at (x, y) leaning by angle radians.
func drawPalm(screen *ebiten.Image, cfg *config.Config, x, y, angle float64) {
	topX := x + math.Sin(angle)*palmHeight
	topY := y - math.Cos(angle)*palmHeight
	vector.StrokeLine(screen, float32(x), float32(y), float32(topX), float32(topY), 8, cfg.Theme.PalmTrunk, true)
	for i := -2; i <= 2; i++ {
		leaf := angle + float64(i)*0.6
		lx := topX + math.Sin(leaf)*40
		ly := topY - math.Cos(leaf)*20
		vector.StrokeLine(screen, float32(topX), float32(topY), float32(lx), float32(ly), 5, cfg.Theme.PalmLeaf, true)
	}
}

func drawStalk(screen *ebiten.Image, cfg *config.Config, collectible bool, x, y, w, h float64) {
	if collectible {
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Theme.Shoot, false)
		vector.DrawFilledCircle(screen, float32(x+w/2), float32(y), float32(w), cfg.Theme.Shoot, true)
		return
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Theme.Bamboo, false)
	for sy := y + bambooSegment; sy < y+h; sy += bambooSegment {
		vector.StrokeLine(screen, float32(x), float32(sy), float32(x+w), float32(sy), 2, cfg.Theme.PalmLeaf, false)
	}
}

// drawCage draws the animal behind bars. Once open the bars slide up with
// the door animation.
func drawCage(screen *ebiten.Image, cfg *config.Config, cage *components.CageData, x, y, size float64) {
	if !cage.IsOpen {
		vector.DrawFilledCircle(screen, float32(x+size/2), float32(y+size/2), float32(size/4), cfg.Theme.TextAccent, true)
	}

	bars := cfg.Theme.CageBars
	if cage.IsOpen {
		bars = cfg.Theme.CageOpen
	}
	lift := size * float64(cage.DoorProgress)
	if cage.IsOpen && cage.Door == nil {
		lift = size
	}

	vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 2, bars, false)
	if lift >= size {
		return
	}
	for bx := x + cageBarGap; bx < x+size; bx += cageBarGap {
		vector.StrokeLine(screen, float32(bx), float32(y), float32(bx), float32(y+size-lift), 2, bars, false)
	}
}

func drawEnemy(screen *ebiten.Image, cfg *config.Config, facingRight bool, x, y, w, h float64) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Theme.Enemy, false)
	eyeX := x + w*0.3
	if facingRight {
		eyeX = x + w*0.7
	}
	vector.DrawFilledCircle(screen, float32(eyeX), float32(y+h*0.25), 4, cfg.Theme.PandaWhite, true)
	vector.DrawFilledCircle(screen, float32(eyeX), float32(y+h*0.25), 2, cfg.Theme.PandaBlack, true)
}
