package factory

import (
	"github.com/pandaescape/panda/archetypes"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/levels"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

// CreateClimbSurface builds a bamboo stalk. Collectible shoots also carry
// the shoot tag so the interaction system can find them.
func CreateClimbSurface(w donburi.World, s levels.Stalk, cfg *config.Config) *donburi.Entry {
	stalk := archetypes.ClimbSurface.Spawn(w)

	resolvTags := []string{tags.ResolvClimb}
	data := components.ClimbSurfaceData{}
	if s.Collectible {
		resolvTags = append(resolvTags, tags.ResolvShoot)
		data.Collectible = true
		data.Points = cfg.Score.ShootPoints
	}
	components.ClimbSurface.SetValue(stalk, data)

	newBody(w, stalk, s.X, s.Y, cfg.Climb.Width, s.Height, resolvTags...)
	return stalk
}
