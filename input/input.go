// Package input polls the keyboard and gamepads into the world's action
// state. It is the only gameplay code that talks to ebiten input.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/systems"
	"github.com/yohamta/donburi"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll samples every binding and pushes the result as this frame's input.
// Must run BEFORE the simulation pipeline.
func Poll(w donburi.World) {
	var pressed [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	left, right, up, down := analogStick(gamepadIDs)
	pressed[cfg.ActionMoveLeft] = pressed[cfg.ActionMoveLeft] || left
	pressed[cfg.ActionMoveRight] = pressed[cfg.ActionMoveRight] || right
	pressed[cfg.ActionClimbUp] = pressed[cfg.ActionClimbUp] || up
	pressed[cfg.ActionClimbDown] = pressed[cfg.ActionClimbDown] || down

	systems.PushInput(w, pressed)
}

// analogStick reads the left stick of every standard gamepad
func analogStick(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -AnalogDeadzone
		right = right || horizontal > AnalogDeadzone
		up = up || vertical < -AnalogDeadzone
		down = down || vertical > AnalogDeadzone
	}
	return
}
