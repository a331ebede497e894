package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/input"
	"github.com/pandaescape/panda/render"
	"github.com/pandaescape/panda/systems"
	"github.com/pandaescape/panda/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reloader rebuilds the configuration from its sources after the tuning
// file changes.
type Reloader func() (*config.Config, error)

// GameScene runs the whole game: menu, levels and end screens are states
// of one world.
type GameScene struct {
	ecs    *ecs.ECS
	cfg    *config.Config
	reload Reloader

	tuningPath string
	watcher    *config.Watcher

	once sync.Once
}

// NewGameScene creates the scene. With cfg.Debug.Watch set and a tuning
// path, edits to that file are reloaded and applied at the next level.
func NewGameScene(cfg *config.Config, tuningPath string, reload Reloader) *GameScene {
	return &GameScene{cfg: cfg, tuningPath: tuningPath, reload: reload}
}

func (gs *GameScene) Update() error {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.pollTuning()

	game := systems.GetGame(gs.ecs.World)
	if game.Err != nil {
		gs.Close()
		return game.Err
	}
	if game.Quit {
		gs.Close()
		return ebiten.Termination
	}
	return nil
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

// Close stops the tuning watcher, if any.
func (gs *GameScene) Close() {
	if gs.watcher == nil {
		return
	}
	if err := gs.watcher.Close(); err != nil {
		log.Printf("Warning: closing tuning watcher: %v", err)
	}
	gs.watcher = nil
}

func (gs *GameScene) configure() {
	world := donburi.NewWorld()
	gs.ecs = ecs.NewECS(world)

	factory.CreateGame(world, gs.cfg)
	factory.CreateCamera(world)

	// Input is pushed before any system reads it
	gs.ecs.AddSystem(func(e *ecs.ECS) {
		input.Poll(e.World)
	})
	for _, system := range systems.Pipeline() {
		gs.ecs.AddSystem(func(e *ecs.ECS) {
			system(e.World)
		})
	}

	gs.ecs.AddRenderer(render.LayerWorld, render.DrawLevel)
	gs.ecs.AddRenderer(render.LayerWorld, render.DrawPlayer)
	gs.ecs.AddRenderer(render.LayerHUD, render.DrawHUD)
	gs.ecs.AddRenderer(render.LayerHUD, render.DrawDebug)
	gs.ecs.AddRenderer(render.LayerScreens, render.DrawScreens)

	if gs.cfg.Debug.Watch && gs.tuningPath != "" && gs.reload != nil {
		watcher, err := config.NewWatcher(gs.tuningPath)
		if err != nil {
			log.Printf("Warning: could not watch %s: %v", gs.tuningPath, err)
		} else {
			gs.watcher = watcher
		}
	}

	if gs.cfg.Debug.SkipMenu {
		systems.StartGame(world)
	}
}

// pollTuning drains watcher events without blocking. A reloaded config is
// parked in Settings.Pending until the next level load.
func (gs *GameScene) pollTuning() {
	if gs.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-gs.watcher.Events:
			if !ok {
				gs.watcher = nil
				return
			}
			cfg, err := gs.reload()
			if err != nil {
				log.Printf("Warning: ignoring %s: %v", path, err)
				continue
			}
			if entry, ok := components.Settings.First(gs.ecs.World); ok {
				components.Settings.Get(entry).Pending = cfg
				log.Printf("Reloaded %s, applying at next level", path)
			}
		case err, ok := <-gs.watcher.Errors:
			if !ok {
				gs.watcher = nil
				return
			}
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}
