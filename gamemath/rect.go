package gamemath

// Rect is an axis-aligned rectangle in world pixels. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge do not intersect, so a body
// resting exactly on a platform top is not in contact with it.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// IntersectsAny reports whether r intersects at least one rectangle in rs.
func (r Rect) IntersectsAny(rs []Rect) bool {
	for _, o := range rs {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

// Clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
