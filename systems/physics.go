package systems

import (
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/gamemath"
	"github.com/pandaescape/panda/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Reused every tick to avoid allocating the climb surface list.
var climbScratch []gamemath.Rect

// UpdatePlayer advances the player against the level's platforms and
// climb surfaces.
func UpdatePlayer(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	climbScratch = climbScratch[:0]
	tags.ClimbSurface.Each(w, func(e *donburi.Entry) {
		climbScratch = append(climbScratch, components.Object.Get(e).Rect())
	})

	tags.Player.Each(w, func(e *donburi.Entry) {
		StepPlayer(components.Object.Get(e).Object, components.Player.Get(e), level.Platforms, climbScratch)
	})
}

// StepPlayer integrates one tick of player movement. The order of the
// steps is significant: climb detection uses the pre-move box, horizontal
// resolution runs before the vertical move, and overlapping platforms are
// resolved one after another in slice order so the last one wins.
func StepPlayer(body *resolv.Object, p *components.PlayerData, platforms, climbables []gamemath.Rect) {
	prevY := body.Y
	bounds := func() gamemath.Rect {
		return gamemath.NewRect(body.X, body.Y, body.W, body.H)
	}

	p.Climbing = bounds().IntersectsAny(climbables)

	switch {
	case !p.Climbing:
		p.SpeedY += p.Gravity
		p.ClimbDirection = components.ClimbNone
	case p.ClimbDirection != components.ClimbNone:
		p.SpeedY = float64(p.ClimbDirection) * p.ClimbSpeed
	default:
		p.SpeedY *= p.ClimbIdleDecay
	}

	body.X += p.SpeedX
	if body.X < p.BoundLeft {
		body.X = p.BoundLeft
		p.SpeedX = 0
	} else if body.X+body.W > p.BoundRight {
		body.X = p.BoundRight - body.W
		p.SpeedX = 0
	}

	if p.SpeedX > 0 {
		p.Facing = components.FacingRight
	} else if p.SpeedX < 0 {
		p.Facing = components.FacingLeft
	}

	// Sides: no vertical range check, a box overlapping a platform from
	// below is pushed sideways too.
	for _, platform := range platforms {
		if !bounds().Intersects(platform) {
			continue
		}
		if p.SpeedX > 0 {
			body.X = platform.Left() - body.W
		} else if p.SpeedX < 0 {
			body.X = platform.Right()
		}
	}

	body.Y += p.SpeedY

	p.OnGround = false
	for _, platform := range platforms {
		if !bounds().Intersects(platform) {
			continue
		}
		// Climbing ignores platforms except when descending onto one.
		if p.Climbing && p.SpeedY <= 0 {
			continue
		}
		if p.SpeedY > 0 {
			body.Y = platform.Top() - body.H
			p.SpeedY = 0
			p.OnGround = true
		} else if p.SpeedY < 0 && prevY > platform.Bottom()-p.RiseSnapDistance {
			body.Y = platform.Bottom()
			p.SpeedY = 0
		}
	}
}
