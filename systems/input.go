package systems

import (
	"github.com/pandaescape/panda/components"
	cfg "github.com/pandaescape/panda/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateInput returns the shared input state, creating it if needed.
func GetOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// PushInput records this frame's pressed actions.
// Must run BEFORE every system that reads input.
func PushInput(w donburi.World, pressed [cfg.ActionCount]bool) {
	input := GetOrCreateInput(w)
	input.Previous = input.Current
	input.Current = pressed
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
