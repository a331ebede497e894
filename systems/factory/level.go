package factory

import (
	"fmt"

	"github.com/pandaescape/panda/archetypes"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/gamemath"
	"github.com/pandaescape/panda/levels"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BuildLevel replaces whatever level is loaded with the layout at index.
// The player is not spawned here.
func BuildLevel(w donburi.World, index int, cfg *config.Config) (*donburi.Entry, error) {
	layout, err := levels.Get(index)
	if err != nil {
		return nil, fmt.Errorf("factory: build level: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("factory: build level %d: %w", index, err)
	}

	ClearLevel(w)

	CreateSpace(w, int(layout.Width), int(layout.Height), cfg.Space.CellSize, cfg.Space.CellSize)

	level := archetypes.Level.Spawn(w)
	platforms := make([]gamemath.Rect, 0, len(layout.Platforms))
	for _, p := range layout.Platforms {
		CreatePlatform(w, p)
		platforms = append(platforms, p)
	}
	components.Level.SetValue(level, components.LevelData{
		Index:       index,
		Name:        layout.Name,
		Width:       layout.Width,
		Height:      layout.Height,
		PlayerStart: math.NewVec2(layout.StartX, layout.StartY),
		Platforms:   platforms,
	})

	for _, s := range layout.Bamboo {
		CreateClimbSurface(w, s, cfg)
	}
	for _, c := range layout.Cages {
		CreateCage(w, c, cfg)
	}
	for _, e := range layout.Enemies {
		CreateEnemy(w, e.X, e.Y, e.Start, e.End, cfg)
	}
	for _, d := range layout.Decorations {
		CreateDecoration(w, d, cfg)
	}

	return level, nil
}

// ClearLevel removes every level-scoped entity: bodies, decorations, the
// level record and its space. The game and camera entities survive.
func ClearLevel(w donburi.World) {
	var doomed []donburi.Entity
	collect := func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	}
	components.Object.Each(w, collect)
	components.Decoration.Each(w, collect)
	components.Level.Each(w, collect)
	components.Space.Each(w, collect)

	for _, e := range doomed {
		w.Remove(e)
	}
}

// CreateGame spawns the controller entity in the menu state.
func CreateGame(w donburi.World, cfg *config.Config) *donburi.Entry {
	game := archetypes.Game.Spawn(w)
	components.Game.SetValue(game, components.GameData{
		State:         config.StateMenu,
		PreviousState: config.StateMenu,
	})
	components.Lives.SetValue(game, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})
	components.Settings.SetValue(game, components.SettingsData{Config: cfg})
	return game
}
