package systems

import (
	"testing"

	"github.com/pandaescape/panda/components"
	"github.com/solarlune/resolv"
)

func TestPatrolStaysInBounds(t *testing.T) {
	cases := []struct {
		name       string
		x          float64
		start, end float64
		speed      float64
	}{
		{"level_one_guard", 400, 300, 600, 2},
		{"odd_offset", 301, 300, 600, 2},
		{"fast", 450, 300, 600, 7},
		{"zero_width", 100, 100, 100, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body := resolv.NewObject(c.x, 500, 30, 50)
			enemy := &components.EnemyData{PatrolStart: c.start, PatrolEnd: c.end, Direction: 1, Speed: c.speed}

			sawEnd, sawStart := false, false
			for i := 0; i < 2000; i++ {
				StepPatrol(body, enemy)
				if body.X < c.start || body.X > c.end {
					t.Fatalf("tick %d: x=%v left [%v, %v]", i, body.X, c.start, c.end)
				}
				if enemy.FacingRight != (enemy.Direction > 0) {
					t.Fatalf("facing does not mirror direction")
				}
				if c.start == c.end {
					continue
				}
				if body.X == c.end {
					sawEnd = true
					if enemy.Direction != -1 {
						t.Fatalf("tick %d: at end but direction %v", i, enemy.Direction)
					}
				}
				if body.X == c.start {
					sawStart = true
					if enemy.Direction != 1 {
						t.Fatalf("tick %d: at start but direction %v", i, enemy.Direction)
					}
				}
			}
			if c.start != c.end && (!sawEnd || !sawStart) {
				t.Fatalf("patrol never reached both bounds")
			}
		})
	}
}

func TestPatrolFlipsExactlyAtBoundary(t *testing.T) {
	body := resolv.NewObject(596, 500, 30, 50)
	enemy := &components.EnemyData{PatrolStart: 300, PatrolEnd: 600, Direction: 1, Speed: 2}

	StepPatrol(body, enemy)
	if body.X != 598 || enemy.Direction != 1 {
		t.Fatalf("x=%v dir=%v, want 598 heading right", body.X, enemy.Direction)
	}
	StepPatrol(body, enemy)
	if body.X != 600 || enemy.Direction != -1 {
		t.Fatalf("x=%v dir=%v, want 600 turning left", body.X, enemy.Direction)
	}
	StepPatrol(body, enemy)
	if body.X != 598 || enemy.FacingRight {
		t.Fatalf("x=%v facingRight=%v, want 598 facing left", body.X, enemy.FacingRight)
	}
}
