package overmap

import "github.com/wastefall/wastefall/internal/model"

// routeLimit caps BFS expansion so a broken road network cannot walk
// the whole overmap.
const routeLimit = 100000

// RevealRoute finds a road path between two road cells and reveals every
// cell along it. Returns false when either endpoint is not a road or no
// connected road path exists.
func (b *Buffer) RevealRoute(src, dst model.Tripoint) bool {
	if !src.IsValid() || !dst.IsValid() {
		return false
	}
	if !b.Ter(src).IsRoad() || !b.Ter(dst).IsRoad() {
		return false
	}

	path := b.roadPath(src, dst)
	if path == nil {
		return false
	}
	for _, pos := range path {
		b.Reveal(pos, 0)
	}
	return true
}

// roadPath runs a BFS over road cells from src to dst and reconstructs
// the path. Returns nil when unreachable.
func (b *Buffer) roadPath(src, dst model.Tripoint) []model.Tripoint {
	b.mu.RLock()
	defer b.mu.RUnlock()

	type node struct {
		pos  model.Tripoint
		prev int
	}
	queue := []node{{pos: src, prev: -1}}
	visited := map[model.Tripoint]bool{src: true}

	for i := 0; i < len(queue) && i < routeLimit; i++ {
		cur := queue[i]
		if cur.pos == dst {
			var path []model.Tripoint
			for j := i; j != -1; j = queue[j].prev {
				path = append(path, queue[j].pos)
			}
			// Reverse into src→dst order.
			for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
				path[l], path[r] = path[r], path[l]
			}
			return path
		}

		for _, d := range [4][2]int32{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			next := cur.pos.Add(d[0], d[1])
			if visited[next] || !b.tiles[next].IsRoad() {
				continue
			}
			visited[next] = true
			queue = append(queue, node{pos: next, prev: i})
		}
	}
	return nil
}
