package factory

import (
	"errors"
	"testing"

	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/levels"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

func count(w donburi.World, c interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestBuildLevelMatchesLayout(t *testing.T) {
	cfg := config.Default()
	for i := 1; i <= levels.Count(); i++ {
		t.Run(levelName(i), func(t *testing.T) {
			w := donburi.NewWorld()
			entry, err := BuildLevel(w, i, cfg)
			if err != nil {
				t.Fatalf("BuildLevel: %v", err)
			}
			layout, _ := levels.Get(i)
			level := components.Level.Get(entry)

			if level.Index != i || level.Width != layout.Width || level.Height != layout.Height {
				t.Fatalf("level record %+v does not match layout", level)
			}
			if level.PlayerStart.X != layout.StartX || level.PlayerStart.Y != layout.StartY {
				t.Fatalf("player start = %v", level.PlayerStart)
			}
			if len(level.Platforms) != len(layout.Platforms) {
				t.Fatalf("cached platforms = %d, want %d", len(level.Platforms), len(layout.Platforms))
			}
			for j, p := range layout.Platforms {
				if level.Platforms[j] != p {
					t.Fatalf("platform %d out of order: %v != %v", j, level.Platforms[j], p)
				}
			}

			checks := []struct {
				name string
				got  int
				want int
			}{
				{"platforms", count(w, tags.Platform), len(layout.Platforms)},
				{"climb_surfaces", count(w, tags.ClimbSurface), len(layout.Bamboo)},
				{"cages", count(w, tags.Cage), len(layout.Cages)},
				{"enemies", count(w, tags.Enemy), len(layout.Enemies)},
				{"decorations", count(w, tags.Decoration), len(layout.Decorations)},
				{"spaces", count(w, components.Space), 1},
				{"players", count(w, tags.Player), 0},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
				}
			}
		})
	}
}

func levelName(i int) string {
	l, _ := levels.Get(i)
	return l.Name
}

func TestBuildLevelUnknownIndex(t *testing.T) {
	w := donburi.NewWorld()
	_, err := BuildLevel(w, levels.Count()+1, config.Default())
	if !errors.Is(err, levels.ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
	if count(w, components.Level) != 0 {
		t.Fatalf("a failed build must not leave a level behind")
	}
}

func TestRebuildReplacesLevel(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()
	CreateGame(w, cfg)
	CreateCamera(w)

	if _, err := BuildLevel(w, 1, cfg); err != nil {
		t.Fatal(err)
	}
	CreatePlayer(w, 100, 500, 1600, cfg)
	if _, err := BuildLevel(w, 2, cfg); err != nil {
		t.Fatal(err)
	}

	layout, _ := levels.Get(2)
	if got := count(w, tags.Platform); got != len(layout.Platforms) {
		t.Fatalf("platforms after rebuild = %d, want %d", got, len(layout.Platforms))
	}
	if count(w, components.Level) != 1 || count(w, components.Space) != 1 {
		t.Fatalf("expected exactly one level and space after rebuild")
	}
	if count(w, tags.Player) != 0 {
		t.Fatalf("rebuild should remove the old player")
	}
	if count(w, components.Game) != 1 || count(w, components.Camera) != 1 {
		t.Fatalf("game and camera must survive a rebuild")
	}
}

func TestBodiesAreLinkedAndSpaced(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()
	if _, err := BuildLevel(w, 1, cfg); err != nil {
		t.Fatal(err)
	}
	player := CreatePlayer(w, 100, 500, 1600, cfg)

	obj := components.Object.Get(player)
	if obj.Data != player {
		t.Fatalf("body Data should point back at its entry")
	}
	if obj.Space == nil {
		t.Fatalf("player body was not added to the space")
	}
	if obj.W != cfg.Player.Width || obj.H != cfg.Player.Height {
		t.Fatalf("player size = %vx%v", obj.W, obj.H)
	}

	p := components.Player.Get(player)
	if p.BoundLeft != 0 || p.BoundRight != 1600 || p.Speed != cfg.Player.Speed {
		t.Fatalf("unexpected player data %+v", p)
	}

	components.ClimbSurface.Each(w, func(e *donburi.Entry) {
		data := components.ClimbSurface.Get(e)
		body := components.Object.Get(e)
		if data.Collectible != body.HasTags(tags.ResolvShoot) {
			t.Errorf("shoot tag mismatch for stalk at %v,%v", body.X, body.Y)
		}
		if data.Collectible && data.Points != cfg.Score.ShootPoints {
			t.Errorf("shoot points = %d", data.Points)
		}
	})
}

func TestCreateGame(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()
	entry := CreateGame(w, cfg)

	game := components.Game.Get(entry)
	if game.State != config.StateMenu {
		t.Fatalf("new game should start in the menu, got %s", game.State)
	}
	lives := components.Lives.Get(entry)
	if lives.Lives != cfg.Player.StartingLives {
		t.Fatalf("lives = %d", lives.Lives)
	}
	if components.Settings.Get(entry).Config != cfg {
		t.Fatalf("settings should hold the given config")
	}
}
