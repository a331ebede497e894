package gamemath

// Approach moves current toward target by the given fraction of the gap.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// MaxOffset is the largest camera offset along one axis that keeps the
// viewport inside the level. Levels smaller than the viewport pin the
// camera at zero.
func MaxOffset(levelSize, viewportSize float64) float64 {
	if levelSize <= viewportSize {
		return 0
	}
	return levelSize - viewportSize
}

// CameraTarget returns the offset that centres the viewport on (cx, cy).
func CameraTarget(cx, cy, viewportW, viewportH float64) (float64, float64) {
	return cx - viewportW/2, cy - viewportH/2
}

// FollowAxis performs one smoothed camera step on a single axis and clamps
// the result to the level extents.
func FollowAxis(current, target, factor, levelSize, viewportSize float64) float64 {
	return Clamp(Approach(current, target, factor), 0, MaxOffset(levelSize, viewportSize))
}
