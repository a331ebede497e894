package factory

import (
	"github.com/pandaescape/panda/archetypes"
	"github.com/pandaescape/panda/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
