package factory

import (
	"github.com/pandaescape/panda/archetypes"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns a fresh panda at (x, y) bounded to [0, levelWidth].
func CreatePlayer(w donburi.World, x, y, levelWidth float64, cfg *config.Config) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Player.SetValue(player, components.NewPlayerData(cfg.Player, 0, levelWidth))
	newBody(w, player, x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)

	return player
}
