package systems

import (
	"github.com/pandaescape/panda/components"
	cfg "github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayerInput turns the frame's input into player commands. Jump and
// climb react to presses; horizontal movement follows the held state and is
// reapplied every tick.
func UpdatePlayerInput(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	input := GetOrCreateInput(w)

	if GetAction(input, cfg.ActionJump).JustPressed {
		player.Jump()
	}

	climbUp := GetAction(input, cfg.ActionClimbUp)
	climbDown := GetAction(input, cfg.ActionClimbDown)
	if climbUp.JustPressed {
		player.Climb(components.ClimbUp)
	}
	if climbDown.JustPressed {
		player.Climb(components.ClimbDown)
	}
	if climbUp.JustReleased || climbDown.JustReleased {
		player.StopClimbing()
	}

	switch {
	case GetAction(input, cfg.ActionMoveLeft).Pressed:
		player.Move(-1)
	case GetAction(input, cfg.ActionMoveRight).Pressed:
		player.Move(1)
	default:
		player.Move(0)
	}
}
