package archetypes

import (
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	ClimbSurface = newArchetype(
		tags.ClimbSurface,
		components.ClimbSurface,
		components.Object,
	)
	Cage = newArchetype(
		tags.Cage,
		components.Cage,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Decoration,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Game = newArchetype(
		components.Game,
		components.Lives,
		components.Settings,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
