package factory

import (
	"github.com/pandaescape/panda/archetypes"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns a patrol walker at (x, y) that walks between start and
// end, initially heading right.
func CreateEnemy(w donburi.World, x, y, start, end float64, cfg *config.Config) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	components.Enemy.SetValue(enemy, components.EnemyData{
		PatrolStart: start,
		PatrolEnd:   end,
		Direction:   1,
		Speed:       cfg.Enemy.Speed,
		FacingRight: true,
	})

	newBody(w, enemy, x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	return enemy
}
