package model

// Tripoint is a position on the overmap terrain grid.
// X and Y are overmap terrain cell indices, Z is the vertical level
// (0 = surface, negative = underground).
// Value type, passed by value (immutable).
type Tripoint struct {
	X int32
	Y int32
	Z int32
}

// InvalidTripoint is the sentinel returned by failed overmap searches.
var InvalidTripoint = Tripoint{X: -2147483647, Y: -2147483647, Z: -2147483647}

// NewTripoint creates a Tripoint with the given coordinates.
func NewTripoint(x, y, z int32) Tripoint {
	return Tripoint{X: x, Y: y, Z: z}
}

// IsValid reports whether the point is not the invalid sentinel.
func (t Tripoint) IsValid() bool {
	return t != InvalidTripoint
}

// WithZ returns a new Tripoint with the vertical level replaced.
func (t Tripoint) WithZ(z int32) Tripoint {
	t.Z = z
	return t
}

// Add returns the point offset by (dx, dy).
func (t Tripoint) Add(dx, dy int32) Tripoint {
	t.X += dx
	t.Y += dy
	return t
}

// SquareDist returns the Chebyshev distance to the other point,
// ignoring the vertical level. Diagonal steps count as one.
func (t Tripoint) SquareDist(other Tripoint) int32 {
	dx := abs32(t.X - other.X)
	dy := abs32(t.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Submap returns the submap coordinates backing this overmap terrain cell.
// Each overmap terrain cell covers a 2×2 window of submaps.
func (t Tripoint) Submap() Tripoint {
	return Tripoint{X: t.X * 2, Y: t.Y * 2, Z: t.Z}
}

// Overmap returns the overmap terrain cell containing the given submap position.
func SubmapToOvermap(sm Tripoint) Tripoint {
	return Tripoint{X: divFloor(sm.X, 2), Y: divFloor(sm.Y, 2), Z: sm.Z}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func divFloor(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
