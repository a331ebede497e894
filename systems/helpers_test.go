package systems

import (
	"testing"

	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/systems/factory"
	"github.com/pandaescape/panda/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func newGameWorld(cfg *config.Config) donburi.World {
	w := donburi.NewWorld()
	factory.CreateGame(w, cfg)
	factory.CreateCamera(w)
	return w
}

// tick runs one full frame with the given actions held.
func tick(w donburi.World, held ...config.ActionID) {
	var pressed [config.ActionCount]bool
	for _, a := range held {
		pressed[a] = true
	}
	PushInput(w, pressed)
	for _, system := range Pipeline() {
		system(w)
	}
}

func playerBody(t *testing.T, w donburi.World) *resolv.Object {
	t.Helper()
	entry, ok := tags.Player.First(w)
	if !ok {
		t.Fatalf("no player in world")
	}
	return components.Object.Get(entry).Object
}

// place teleports a body and refreshes its broadphase cells.
func place(body *resolv.Object, x, y float64) {
	body.X, body.Y = x, y
	body.Update()
}

type iterable interface {
	Each(donburi.World, func(*donburi.Entry))
}

func entries(w donburi.World, tag iterable) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func livesLeft(w donburi.World) int {
	entry, _ := components.Lives.First(w)
	return components.Lives.Get(entry).Lives
}

func near(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}
