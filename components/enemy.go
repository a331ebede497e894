package components

import (
	"github.com/yohamta/donburi"
)

// EnemyData is a patrol walker. Direction is +1 (right) or -1 (left).
type EnemyData struct {
	PatrolStart float64
	PatrolEnd   float64
	Direction   float64
	Speed       float64
	FacingRight bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
