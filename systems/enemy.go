package systems

import (
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func UpdateEnemies(w donburi.World) {
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		StepPatrol(components.Object.Get(e).Object, components.Enemy.Get(e))
	})
}

// StepPatrol walks an enemy one tick and turns it around at the patrol
// bounds. Both bounds are inclusive; a step that would pass a bound stops
// on it.
func StepPatrol(body *resolv.Object, enemy *components.EnemyData) {
	body.X += enemy.Speed * enemy.Direction

	if body.X >= enemy.PatrolEnd {
		body.X = enemy.PatrolEnd
		enemy.Direction = -1
	} else if body.X <= enemy.PatrolStart {
		body.X = enemy.PatrolStart
		enemy.Direction = 1
	}

	enemy.FacingRight = enemy.Direction > 0
}
