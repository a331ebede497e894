package systems

import (
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/systems/factory"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// UpdateLevel advances everything the level owns that moves on its own:
// enemies, decorations and opening cage doors.
func UpdateLevel(w donburi.World) {
	UpdateEnemies(w)
	UpdateDecorations(w)
}

// UpdateDecorations steps the cosmetic tweens. Decorations ping-pong by
// swapping their endpoints whenever a tween finishes.
func UpdateDecorations(w donburi.World) {
	dt := ActiveConfig(w).TickSeconds()

	components.Decoration.Each(w, func(e *donburi.Entry) {
		deco := components.Decoration.Get(e)
		value, finished := deco.Tween.Update(dt)
		deco.Value = value
		if finished {
			deco.From, deco.To = deco.To, deco.From
			deco.Tween = gween.New(deco.From, deco.To, deco.Seconds, factory.DecorationEasing(deco.Kind))
		}
	})

	components.Cage.Each(w, func(e *donburi.Entry) {
		cage := components.Cage.Get(e)
		if !cage.IsOpen || cage.Door == nil {
			return
		}
		progress, finished := cage.Door.Update(dt)
		cage.DoorProgress = progress
		if finished {
			cage.Door = nil
		}
	})
}
