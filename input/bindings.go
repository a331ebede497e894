package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/pandaescape/panda/config"
)

// Binding represents the keys and buttons that trigger one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AnalogDeadzone is how far the left stick must travel to count as a
// direction (0.0 to 1.0)
const AnalogDeadzone = 0.25

// Bindings maps every action to its controls
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	cfg.ActionMoveRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	cfg.ActionClimbUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	cfg.ActionClimbDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	cfg.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionPause: {
		Keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
	cfg.ActionConfirm: {
		Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
		// B / Circle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
}
