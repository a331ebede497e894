package factory

import (
	"github.com/pandaescape/panda/archetypes"
	"github.com/pandaescape/panda/gamemath"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	newBody(w, platform, r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	return platform
}
