package config

// GameState is the top-level game mode. The set is closed; transitions
// between states are listed in systems.Transition.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}
