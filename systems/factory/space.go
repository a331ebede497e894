package factory

import (
	"github.com/pandaescape/panda/archetypes"
	"github.com/pandaescape/panda/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addToSpace registers obj with the level's space if one exists.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// newBody creates a rectangular collision object linked back to entry.
func newBody(w donburi.World, entry *donburi.Entry, x, y, width, height float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(w, obj)
	return obj
}
