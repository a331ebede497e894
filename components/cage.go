package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CageData struct {
	Animal string
	IsOpen bool

	// Door animates from 0 (shut) to 1 (fully open) once the cage opens.
	Door         *gween.Tween
	DoorProgress float32
}

var Cage = donburi.NewComponentType[CageData]()

// Open frees the animal. It reports true only on the closed to open
// transition, so callers can award points exactly once.
func (c *CageData) Open() bool {
	if c.IsOpen {
		return false
	}
	c.IsOpen = true
	return true
}
