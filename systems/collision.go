package systems

import (
	"log"

	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/gamemath"
	"github.com/pandaescape/panda/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateInteractions resolves player contact with cages, bamboo shoots and
// enemies, then evaluates the level outcome. Completion is checked before
// capture, so opening the last cage wins the level even if an enemy is
// touching the player on the same tick.
// Must run AFTER UpdateObjects so broadphase cells are current.
func UpdateInteractions(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry).Object
	game := GetGame(w)
	cfg := ActiveConfig(w)

	for _, e := range touching(body, tags.ResolvCage) {
		cage := components.Cage.Get(e)
		if cage.Open() {
			game.Score += cfg.Score.CagePoints
			if cfg.Debug.Enabled {
				log.Printf("Freed the %s", cage.Animal)
			}
		}
	}

	for _, e := range touching(body, tags.ResolvShoot) {
		shoot := components.ClimbSurface.Get(e)
		if !shoot.Collectible {
			continue
		}
		game.Score += shoot.Points
		removeBody(w, e)
	}

	if LevelComplete(w) {
		fire(w, EventLevelCleared)
		return
	}

	player := components.Player.Get(playerEntry)
	if player.Grace > 0 {
		player.Grace--
		return
	}
	if len(touching(body, tags.ResolvEnemy)) > 0 {
		LoseLife(w)
	}
}

// LevelComplete reports whether the level has at least one cage and every
// cage is open.
func LevelComplete(w donburi.World) bool {
	total, open := 0, 0
	tags.Cage.Each(w, func(e *donburi.Entry) {
		total++
		if components.Cage.Get(e).IsOpen {
			open++
		}
	})
	return total > 0 && open == total
}

// PlayerCaught reports whether the player overlaps any enemy.
func PlayerCaught(w donburi.World) bool {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return false
	}
	return len(touching(components.Object.Get(playerEntry).Object, tags.ResolvEnemy)) > 0
}

// touching returns the entries tagged tag whose bodies overlap body. The
// space check only narrows candidates to shared cells; the rectangle test
// decides.
func touching(body *resolv.Object, tag string) []*donburi.Entry {
	check := body.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	bounds := gamemath.NewRect(body.X, body.Y, body.W, body.H)
	var hits []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if bounds.Intersects(gamemath.NewRect(o.X, o.Y, o.W, o.H)) {
			hits = append(hits, entry)
		}
	}
	return hits
}
