package gamemath

import "testing"

func TestMaxOffset(t *testing.T) {
	if got := MaxOffset(1600, 800); got != 800 {
		t.Fatalf("MaxOffset = %v, want 800", got)
	}
	if got := MaxOffset(600, 600); got != 0 {
		t.Fatalf("MaxOffset for equal sizes = %v, want 0", got)
	}
	if got := MaxOffset(400, 800); got != 0 {
		t.Fatalf("MaxOffset for small level = %v, want 0", got)
	}
}

func TestFollowAxis(t *testing.T) {
	cases := []struct {
		name                    string
		current, target, factor float64
		levelSize, viewportSize float64
		want                    float64
	}{
		{"smoothed_step", 0, 100, 0.1, 1600, 800, 10},
		{"clamped_low", 0, -300, 0.5, 1600, 800, 0},
		{"clamped_high", 790, 2000, 0.5, 1600, 800, 800},
		{"level_fits_viewport", 0, 50, 1, 600, 600, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FollowAxis(c.current, c.target, c.factor, c.levelSize, c.viewportSize)
			if got != c.want {
				t.Fatalf("FollowAxis = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCameraTarget(t *testing.T) {
	x, y := CameraTarget(500, 300, 800, 600)
	if x != 100 || y != 0 {
		t.Fatalf("CameraTarget = (%v, %v), want (100, 0)", x, y)
	}
}
