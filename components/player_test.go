package components

import (
	"testing"

	"github.com/pandaescape/panda/config"
)

func newTestPlayer() PlayerData {
	return NewPlayerData(config.Default().Player, 0, 800)
}

func TestJump(t *testing.T) {
	cases := []struct {
		name      string
		onGround  bool
		wantSpeed float64
	}{
		{"grounded", true, -15},
		{"airborne", false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer()
			p.OnGround = c.onGround
			p.Jump()
			if p.SpeedY != c.wantSpeed {
				t.Fatalf("SpeedY = %v, want %v", p.SpeedY, c.wantSpeed)
			}
			if p.OnGround {
				t.Fatalf("OnGround should be false after a jump attempt")
			}
		})
	}
}

func TestMove(t *testing.T) {
	p := newTestPlayer()
	for _, dir := range []int{-1, 0, 1} {
		p.Move(dir)
		if want := float64(dir) * 5; p.SpeedX != want {
			t.Fatalf("Move(%d): SpeedX = %v, want %v", dir, p.SpeedX, want)
		}
	}
}

func TestClimbRequiresClimbSurface(t *testing.T) {
	p := newTestPlayer()
	p.SpeedY = 4
	p.Climb(ClimbUp)
	if p.ClimbDirection != ClimbNone || p.SpeedY != 4 {
		t.Fatalf("climb off a surface should be a no-op, got dir=%d vy=%v", p.ClimbDirection, p.SpeedY)
	}

	p.Climbing = true
	p.Climb(ClimbUp)
	if p.ClimbDirection != ClimbUp || p.SpeedY != -3 {
		t.Fatalf("climb up: dir=%d vy=%v", p.ClimbDirection, p.SpeedY)
	}
	p.Climb(ClimbDown)
	if p.ClimbDirection != ClimbDown || p.SpeedY != 3 {
		t.Fatalf("climb down: dir=%d vy=%v", p.ClimbDirection, p.SpeedY)
	}

	p.StopClimbing()
	if p.ClimbDirection != ClimbNone || p.SpeedY != 0 {
		t.Fatalf("stop climbing: dir=%d vy=%v", p.ClimbDirection, p.SpeedY)
	}
}

func TestStopClimbingOffSurface(t *testing.T) {
	p := newTestPlayer()
	p.SpeedY = 7
	p.ClimbDirection = ClimbDown
	p.StopClimbing()
	if p.SpeedY != 7 || p.ClimbDirection != ClimbDown {
		t.Fatalf("StopClimbing should only act while climbing")
	}
}

func TestSetBoundaries(t *testing.T) {
	p := newTestPlayer()
	p.SetBoundaries(10, 1600)
	if p.BoundLeft != 10 || p.BoundRight != 1600 {
		t.Fatalf("bounds = [%v, %v]", p.BoundLeft, p.BoundRight)
	}
}
