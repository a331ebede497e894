package systems

import "github.com/yohamta/donburi"

// Pipeline lists the per-tick systems in execution order. Input for the
// frame must be pushed before the first one runs. Gameplay systems are
// gated on the Playing state, which freezes the level and camera in every
// other state.
func Pipeline() []func(donburi.World) {
	return []func(donburi.World){
		UpdateGameState,
		WithPlaying(UpdatePlayerInput),
		WithPlaying(UpdateLevel),
		WithPlaying(UpdatePlayer),
		WithPlaying(UpdateObjects),
		WithPlaying(UpdateInteractions),
		WithPlaying(UpdateCamera),
	}
}
