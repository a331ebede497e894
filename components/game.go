package components

import (
	"github.com/pandaescape/panda/config"
	"github.com/yohamta/donburi"
)

// GameData is the controller state shared by every system.
type GameData struct {
	State         config.GameState
	PreviousState config.GameState
	LevelIndex    int
	Score         int
	Victory       bool
	Quit          bool

	// Err is set when a level fails to build; the scene returns it from Update.
	Err error
}

var Game = donburi.NewComponentType[GameData]()

// SettingsData carries the active configuration. Pending holds a reloaded
// configuration that takes effect at the next level build.
type SettingsData struct {
	Config  *config.Config
	Pending *config.Config
}

var Settings = donburi.NewComponentType[SettingsData]()
