package systems

import (
	"errors"
	"testing"

	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/levels"
	"github.com/pandaescape/panda/systems/factory"
	"github.com/pandaescape/panda/tags"
	"github.com/yohamta/donburi"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from config.GameState
		ev   Event
		to   config.GameState
		ok   bool
	}{
		{config.StateMenu, EventStart, config.StatePlaying, true},
		{config.StateMenu, EventPause, 0, false},
		{config.StatePlaying, EventPause, config.StatePaused, true},
		{config.StatePlaying, EventLevelCleared, config.StateLevelComplete, true},
		{config.StatePlaying, EventOutOfLives, config.StateGameOver, true},
		{config.StatePlaying, EventStart, 0, false},
		{config.StatePaused, EventResume, config.StatePlaying, true},
		{config.StatePaused, EventLevelCleared, 0, false},
		{config.StateLevelComplete, EventNextLevel, config.StatePlaying, true},
		{config.StateLevelComplete, EventCampaignWon, config.StateGameOver, true},
		{config.StateLevelComplete, EventOutOfLives, 0, false},
		{config.StateGameOver, EventReturnToMenu, config.StateMenu, true},
		{config.StateGameOver, EventStart, 0, false},
	}
	for _, c := range cases {
		to, ok := Transition(c.from, c.ev)
		if ok != c.ok || (ok && to != c.to) {
			t.Errorf("Transition(%s, %d) = (%s, %v), want (%s, %v)", c.from, c.ev, to, ok, c.to, c.ok)
		}
	}
}

func TestStartFromMenu(t *testing.T) {
	w := newGameWorld(config.Default())
	tick(w)
	if GetGame(w).State != config.StateMenu {
		t.Fatalf("should wait in the menu")
	}
	if _, ok := tags.Player.First(w); ok {
		t.Fatalf("no player should exist before starting")
	}

	tick(w, config.ActionConfirm)
	game := GetGame(w)
	if game.State != config.StatePlaying || game.LevelIndex != 1 {
		t.Fatalf("state=%s level=%d, want Playing on level 1", game.State, game.LevelIndex)
	}
	if livesLeft(w) != 3 || game.Score != 0 {
		t.Fatalf("lives=%d score=%d", livesLeft(w), game.Score)
	}
	if body := playerBody(t, w); body.X != 100 {
		t.Fatalf("player x = %v, want the level start", body.X)
	}
}

func TestQuitFromMenu(t *testing.T) {
	w := newGameWorld(config.Default())
	tick(w, config.ActionQuit)
	if !GetGame(w).Quit {
		t.Fatalf("quit should be requested from the menu")
	}
}

func TestPauseFreezesGameplay(t *testing.T) {
	w := newGameWorld(config.Default())
	tick(w, config.ActionConfirm)
	tick(w)

	tick(w, config.ActionPause)
	if GetGame(w).State != config.StatePaused {
		t.Fatalf("expected Paused, got %s", GetGame(w).State)
	}
	body := playerBody(t, w)
	x, y := body.X, body.Y
	for i := 0; i < 10; i++ {
		tick(w, config.ActionMoveRight)
	}
	if body.X != x || body.Y != y {
		t.Fatalf("player moved while paused: (%v, %v) -> (%v, %v)", x, y, body.X, body.Y)
	}

	tick(w, config.ActionPause, config.ActionMoveRight)
	if GetGame(w).State != config.StatePlaying {
		t.Fatalf("expected Playing after unpausing, got %s", GetGame(w).State)
	}
	if body.X != x+5 {
		t.Fatalf("gameplay should resume on the unpause tick, x=%v", body.X)
	}
}

func TestCaughtCostsALife(t *testing.T) {
	cfg := config.Default()
	cfg.Player.RespawnGraceTicks = 0
	w := newGameWorld(cfg)
	tick(w, config.ActionConfirm)

	for want := 2; want >= 0; want-- {
		enemy := components.Object.Get(entries(w, tags.Enemy)[0])
		place(playerBody(t, w), enemy.X, enemy.Y)
		if !PlayerCaught(w) {
			t.Fatalf("player on top of an enemy should be caught")
		}
		UpdateInteractions(w)

		if got := livesLeft(w); got != want {
			t.Fatalf("lives = %d, want %d", got, want)
		}
		if want == 0 {
			break
		}
		body := playerBody(t, w)
		if body.X != 100 || body.Y != 500 {
			t.Fatalf("respawn at (%v, %v), want level start", body.X, body.Y)
		}
		if n := len(entries(w, tags.Player)); n != 1 {
			t.Fatalf("expected exactly one player after respawn, got %d", n)
		}
		camEntry, _ := components.Camera.First(w)
		if cam := components.Camera.Get(camEntry); cam.Position.X != 0 || cam.Position.Y != 0 {
			t.Fatalf("camera should snap back to the start, got %v", cam.Position)
		}
		if GetGame(w).State != config.StatePlaying {
			t.Fatalf("should keep playing with lives left")
		}
	}

	game := GetGame(w)
	if game.State != config.StateGameOver || game.Victory {
		t.Fatalf("state=%s victory=%v, want a lost game", game.State, game.Victory)
	}

	tick(w)
	tick(w, config.ActionConfirm)
	if game.State != config.StateMenu {
		t.Fatalf("confirm on game over should return to the menu, got %s", game.State)
	}
	if _, ok := components.Level.First(w); ok {
		t.Fatalf("level should be torn down in the menu")
	}
	if livesLeft(w) != 3 || game.Score != 0 {
		t.Fatalf("run state not reset: lives=%d score=%d", livesLeft(w), game.Score)
	}
}

func TestRespawnBesideEnemyCostsOneLife(t *testing.T) {
	cfg := config.Default()
	w := newGameWorld(cfg)
	tick(w, config.ActionConfirm)

	playerEntry, _ := tags.Player.First(w)
	components.Player.Get(playerEntry).Grace = 0
	// patrols straight through the start box
	factory.CreateEnemy(w, 110, 500, 0, 400, cfg)

	for i := 0; i < 10; i++ {
		tick(w)
	}
	if got := livesLeft(w); got != 2 {
		t.Fatalf("lives = %d, want exactly one lost", got)
	}
	if GetGame(w).State != config.StatePlaying {
		t.Fatalf("should keep playing, got %s", GetGame(w).State)
	}
	if !PlayerCaught(w) {
		t.Fatalf("respawned player should still overlap the enemy")
	}
	playerEntry, _ = tags.Player.First(w)
	if g := components.Player.Get(playerEntry).Grace; g != cfg.Player.RespawnGraceTicks-9 {
		t.Fatalf("grace = %d, want it counting down from %d", g, cfg.Player.RespawnGraceTicks)
	}
}

// freeCages walks the player onto every cage of the current level.
func freeCages(t *testing.T, w donburi.World) {
	t.Helper()
	for _, cage := range entries(w, tags.Cage) {
		obj := components.Object.Get(cage)
		place(playerBody(t, w), obj.X+5, obj.Y+5)
		UpdateInteractions(w)
	}
}

func TestCampaignVictory(t *testing.T) {
	w := newGameWorld(config.Default())
	tick(w, config.ActionConfirm)
	game := GetGame(w)

	first := entries(w, tags.Cage)[0]
	obj := components.Object.Get(first)
	place(playerBody(t, w), obj.X+5, obj.Y+5)
	UpdateInteractions(w)
	UpdateInteractions(w)
	if game.Score != 100 {
		t.Fatalf("standing in an open cage must not score twice, score=%d", game.Score)
	}
	if game.State != config.StatePlaying {
		t.Fatalf("one open cage should not complete the level")
	}

	freeCages(t, w)
	if game.State != config.StateLevelComplete {
		t.Fatalf("expected LevelComplete, got %s", game.State)
	}
	if game.Score != 200 {
		t.Fatalf("score = %d, want 200", game.Score)
	}

	tick(w)
	tick(w, config.ActionConfirm)
	if game.State != config.StatePlaying || game.LevelIndex != 2 {
		t.Fatalf("state=%s level=%d, want Playing on level 2", game.State, game.LevelIndex)
	}
	if game.Score != 200 || livesLeft(w) != 3 {
		t.Fatalf("score and lives should carry over: score=%d lives=%d", game.Score, livesLeft(w))
	}
	level, _ := components.Level.First(w)
	if components.Level.Get(level).Width != 2000 {
		t.Fatalf("level 2 not loaded")
	}

	freeCages(t, w)
	if game.State != config.StateLevelComplete {
		t.Fatalf("expected LevelComplete on level 2, got %s", game.State)
	}

	tick(w)
	tick(w, config.ActionConfirm)
	if game.State != config.StateGameOver || !game.Victory {
		t.Fatalf("state=%s victory=%v, want victory after the last level", game.State, game.Victory)
	}

	tick(w)
	tick(w, config.ActionConfirm)
	if game.State != config.StateMenu || game.Victory {
		t.Fatalf("expected a fresh menu, got %s victory=%v", game.State, game.Victory)
	}
}

func TestStartUnknownLevelFails(t *testing.T) {
	cfg := config.Default()
	cfg.Debug.StartLevel = levels.Count() + 1
	w := newGameWorld(cfg)

	tick(w, config.ActionConfirm)
	game := GetGame(w)
	if !errors.Is(game.Err, levels.ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", game.Err)
	}
	if game.State != config.StateMenu {
		t.Fatalf("failed start should stay in the menu, got %s", game.State)
	}
}

func TestPendingConfigAppliesOnLoad(t *testing.T) {
	w := newGameWorld(config.Default())
	tick(w, config.ActionConfirm)

	reloaded := config.Default()
	reloaded.Player.Speed = 9
	reloaded.Window.Width = 1024
	reloaded.Window.FPS = 30
	settingsEntry, _ := components.Settings.First(w)
	components.Settings.Get(settingsEntry).Pending = reloaded

	if ActiveConfig(w).Player.Speed != 5 {
		t.Fatalf("pending config must not apply mid-level")
	}
	if err := LoadLevel(w, 1); err != nil {
		t.Fatal(err)
	}
	active := ActiveConfig(w)
	if active.Player.Speed != 9 {
		t.Fatalf("reloaded config should be active after a level load")
	}
	if active.Window != config.Default().Window {
		t.Fatalf("window must keep its startup size, got %+v", active.Window)
	}
	playerEntry, _ := tags.Player.First(w)
	if components.Player.Get(playerEntry).Speed != 9 {
		t.Fatalf("new player should use the reloaded tuning")
	}
}
