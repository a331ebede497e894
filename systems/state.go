package systems

import (
	"log"

	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/levels"
	"github.com/pandaescape/panda/systems/factory"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

// Event drives game state transitions.
type Event int

const (
	EventStart Event = iota
	EventPause
	EventResume
	EventLevelCleared
	EventNextLevel
	EventCampaignWon
	EventOutOfLives
	EventReturnToMenu
)

var transitions = map[config.GameState]map[Event]config.GameState{
	config.StateMenu: {
		EventStart: config.StatePlaying,
	},
	config.StatePlaying: {
		EventPause:        config.StatePaused,
		EventLevelCleared: config.StateLevelComplete,
		EventOutOfLives:   config.StateGameOver,
	},
	config.StatePaused: {
		EventResume: config.StatePlaying,
	},
	config.StateLevelComplete: {
		EventNextLevel:   config.StatePlaying,
		EventCampaignWon: config.StateGameOver,
	},
	config.StateGameOver: {
		EventReturnToMenu: config.StateMenu,
	},
}

// Transition looks up the state reached from "from" on ev. ok is false when
// the event is not accepted in that state.
func Transition(from config.GameState, ev Event) (config.GameState, bool) {
	next, ok := transitions[from][ev]
	return next, ok
}

// GetGame returns the controller entry. The scene creates it before any
// system runs.
func GetGame(w donburi.World) *components.GameData {
	entry, ok := components.Game.First(w)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

// ActiveConfig returns the configuration the current level was built with.
func ActiveConfig(w donburi.World) *config.Config {
	entry, ok := components.Settings.First(w)
	if !ok {
		return config.Default()
	}
	return components.Settings.Get(entry).Config
}

func IsPlaying(w donburi.World) bool {
	game := GetGame(w)
	return game != nil && game.State == config.StatePlaying
}

// WithPlaying wraps a system so it only runs while a level is being played.
func WithPlaying(system func(donburi.World)) func(donburi.World) {
	return func(w donburi.World) {
		if IsPlaying(w) {
			system(w)
		}
	}
}

func fire(w donburi.World, ev Event) bool {
	game := GetGame(w)
	if game == nil {
		return false
	}
	next, ok := Transition(game.State, ev)
	if !ok {
		return false
	}
	if ActiveConfig(w).Debug.Enabled {
		log.Printf("State %s -> %s", game.State, next)
	}
	game.PreviousState = game.State
	game.State = next
	return true
}

// UpdateGameState handles the discrete menu, pause and confirm inputs.
// Must run AFTER input is pushed and BEFORE gameplay systems.
func UpdateGameState(w donburi.World) {
	game := GetGame(w)
	if game == nil {
		return
	}
	input := GetOrCreateInput(w)
	confirm := GetAction(input, config.ActionConfirm).JustPressed
	pause := GetAction(input, config.ActionPause).JustPressed
	quit := GetAction(input, config.ActionQuit).JustPressed

	switch game.State {
	case config.StateMenu:
		if quit {
			game.Quit = true
		} else if confirm {
			StartGame(w)
		}
	case config.StatePlaying:
		if pause {
			fire(w, EventPause)
		}
	case config.StatePaused:
		if pause {
			fire(w, EventResume)
		}
	case config.StateLevelComplete:
		if confirm {
			AdvanceLevel(w)
		}
	case config.StateGameOver:
		if quit {
			game.Quit = true
		} else if confirm {
			ReturnToMenu(w)
		}
	}
}

// StartGame resets score and lives and loads the first level.
func StartGame(w donburi.World) {
	game := GetGame(w)
	if game == nil || game.State != config.StateMenu {
		return
	}
	resetRun(w)

	if err := LoadLevel(w, ActiveConfig(w).Debug.StartLevel); err != nil {
		game.Err = err
		return
	}
	fire(w, EventStart)
}

// AdvanceLevel moves past a completed level, or ends the run in victory
// after the last one.
func AdvanceLevel(w donburi.World) {
	game := GetGame(w)
	if game == nil || game.State != config.StateLevelComplete {
		return
	}

	next := game.LevelIndex + 1
	if next > levels.Count() {
		game.Victory = true
		fire(w, EventCampaignWon)
		return
	}
	if err := LoadLevel(w, next); err != nil {
		game.Err = err
		return
	}
	fire(w, EventNextLevel)
}

// ReturnToMenu tears the level down after a game over.
func ReturnToMenu(w donburi.World) {
	if !fire(w, EventReturnToMenu) {
		return
	}
	factory.ClearLevel(w)
	resetRun(w)
}

func resetRun(w donburi.World) {
	game := GetGame(w)
	game.Score = 0
	game.Victory = false
	game.LevelIndex = 0
	game.Err = nil

	if entry, ok := components.Lives.First(w); ok {
		components.Lives.Get(entry).Reset(ActiveConfig(w).Player.StartingLives)
	}
}

// LoadLevel builds the level at index, spawns a fresh player at its start
// and snaps the camera. A pending reloaded configuration is applied first.
func LoadLevel(w donburi.World, index int) error {
	if entry, ok := components.Settings.First(w); ok {
		settings := components.Settings.Get(entry)
		if settings.Pending != nil {
			// The window is sized once at startup.
			next := *settings.Pending
			next.Window = settings.Config.Window
			settings.Config = &next
			settings.Pending = nil
			log.Printf("Applied reloaded config")
		}
	}
	cfg := ActiveConfig(w)

	levelEntry, err := factory.BuildLevel(w, index, cfg)
	if err != nil {
		return err
	}
	if _, ok := components.Camera.First(w); !ok {
		factory.CreateCamera(w)
	}

	if game := GetGame(w); game != nil {
		game.LevelIndex = index
	}
	spawnPlayer(w)

	if cfg.Debug.Enabled {
		level := components.Level.Get(levelEntry)
		log.Printf("Loaded level %d (%s) %vx%v", index, level.Name, level.Width, level.Height)
	}
	return nil
}

// LoseLife handles the player being caught. With lives left the player
// respawns at the level start; otherwise the game is over.
func LoseLife(w donburi.World) {
	entry, ok := components.Lives.First(w)
	if !ok {
		return
	}
	if !components.Lives.Get(entry).Lose() {
		fire(w, EventOutOfLives)
		return
	}
	spawnPlayer(w)
}

// spawnPlayer replaces any existing player with a fresh one at the level
// start and snaps the camera to it.
func spawnPlayer(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	var old []*donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		old = append(old, e)
	})
	for _, e := range old {
		removeBody(w, e)
	}

	factory.CreatePlayer(w, level.PlayerStart.X, level.PlayerStart.Y, level.Width, ActiveConfig(w))
	SnapCamera(w)
}

// removeBody takes an entity out of the space and the world.
func removeBody(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
