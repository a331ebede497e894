package systems

import (
	"github.com/pandaescape/panda/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects re-registers moved bodies with their space cells.
func UpdateObjects(w donburi.World) {
	components.Object.Each(w, func(e *donburi.Entry) {
		components.Object.Get(e).Update()
	})
}
