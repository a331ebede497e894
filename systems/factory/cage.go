package factory

import (
	"github.com/pandaescape/panda/archetypes"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/levels"
	"github.com/pandaescape/panda/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func CreateCage(w donburi.World, spot levels.CageSpot, cfg *config.Config) *donburi.Entry {
	cage := archetypes.Cage.Spawn(w)

	// The door tween only advances once the cage is open.
	components.Cage.SetValue(cage, components.CageData{
		Animal: spot.Animal,
		Door:   gween.New(0, 1, float32(cfg.Cage.DoorOpenSeconds), ease.OutQuad),
	})

	newBody(w, cage, spot.X, spot.Y, cfg.Cage.Size, cfg.Cage.Size, tags.ResolvCage)
	return cage
}
