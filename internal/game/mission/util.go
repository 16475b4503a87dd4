package mission

import (
	"math/rand/v2"

	"github.com/wastefall/wastefall/internal/model"
)

// center tile of the chunk editing window.
const (
	centerX = 12
	centerY = 12
)

// rng returns a random value in [low, high] inclusive.
func rng(low, high int32) int32 {
	if high <= low {
		return low
	}
	return low + rand.Int32N(high-low+1)
}

// oneIn returns true with probability 1/n.
func oneIn(n int32) bool {
	return n <= 1 || rand.Int32N(n) == 0
}

// randomEntry picks a random element, or the fallback when the slice is
// empty.
func randomEntry(points []model.Tripoint, fallback model.Tripoint) model.Tripoint {
	if len(points) == 0 {
		return fallback
	}
	return points[rand.IntN(len(points))]
}
