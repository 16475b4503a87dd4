package overmap

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/wastefall/wastefall/internal/model"
)

// DefaultSearchRange bounds searches that pass a non-positive range.
// Matches the width of one overmap in terrain cells.
const DefaultSearchRange = 180

// TileRecord is one persisted overmap cell.
type TileRecord struct {
	Pos    model.Tripoint
	Ter    TerrainID
	Seen   bool
	Danger bool
}

// Repository persists overmap tiles and cities. Implemented in the db
// package.
type Repository interface {
	LoadTiles(ctx context.Context) ([]TileRecord, error)
	LoadCities(ctx context.Context) ([]City, error)
	SaveTiles(ctx context.Context, tiles []TileRecord) error
}

// Buffer is the in-memory overmap: terrain cells with seen and danger
// flags, plus the city index. Mutations are tracked and flushed back to
// the repository. Thread-safe.
type Buffer struct {
	mu     sync.RWMutex
	tiles  map[model.Tripoint]TerrainID
	seen   map[model.Tripoint]bool
	danger map[model.Tripoint]bool
	cities []City
	dirty  map[model.Tripoint]bool

	repo Repository
}

// NewBuffer creates an empty overmap buffer.
func NewBuffer(repo Repository) *Buffer {
	return &Buffer{
		tiles:  make(map[model.Tripoint]TerrainID, 4096),
		seen:   make(map[model.Tripoint]bool, 1024),
		danger: make(map[model.Tripoint]bool, 256),
		dirty:  make(map[model.Tripoint]bool, 256),
		repo:   repo,
	}
}

// Load pulls all tiles and cities from the repository.
func (b *Buffer) Load(ctx context.Context) error {
	tiles, err := b.repo.LoadTiles(ctx)
	if err != nil {
		return fmt.Errorf("loading overmap tiles: %w", err)
	}
	cities, err := b.repo.LoadCities(ctx)
	if err != nil {
		return fmt.Errorf("loading cities: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range tiles {
		b.tiles[t.Pos] = t.Ter
		if t.Seen {
			b.seen[t.Pos] = true
		}
		if t.Danger {
			b.danger[t.Pos] = true
		}
	}
	b.cities = cities

	slog.Info("overmap loaded", "tiles", len(tiles), "cities", len(cities))
	return nil
}

// Flush writes every mutated tile back to the repository.
func (b *Buffer) Flush(ctx context.Context) error {
	b.mu.Lock()
	records := make([]TileRecord, 0, len(b.dirty))
	for pos := range b.dirty {
		records = append(records, TileRecord{
			Pos:    pos,
			Ter:    b.tiles[pos],
			Seen:   b.seen[pos],
			Danger: b.danger[pos],
		})
	}
	b.dirty = make(map[model.Tripoint]bool, 256)
	b.mu.Unlock()

	if len(records) == 0 {
		return nil
	}
	if err := b.repo.SaveTiles(ctx, records); err != nil {
		return fmt.Errorf("saving %d overmap tiles: %w", len(records), err)
	}
	slog.Debug("overmap flushed", "tiles", len(records))
	return nil
}

// SetTile installs a tile without marking it dirty. Used by world
// seeding and tests.
func (b *Buffer) SetTile(pos model.Tripoint, ter TerrainID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tiles[pos] = ter
}

// AddCity adds a city to the index.
func (b *Buffer) AddCity(c City) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cities = append(b.cities, c)
}

// Ter returns the terrain at the given cell (TerEmpty if ungenerated).
func (b *Buffer) Ter(pos model.Tripoint) TerrainID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tiles[pos]
}

// SetTer replaces the terrain at the given cell and marks it dirty.
func (b *Buffer) SetTer(pos model.Tripoint, ter TerrainID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tiles[pos] = ter
	b.dirty[pos] = true
}

// CheckTerType reports whether the cell holds the given terrain type or
// one of its variants.
func (b *Buffer) CheckTerType(typ TerrainID, pos model.Tripoint) bool {
	return b.Ter(pos).IsType(typ)
}

// Seen reports whether the player has revealed the cell.
func (b *Buffer) Seen(pos model.Tripoint) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.seen[pos]
}

// Reveal marks every cell within radius (Chebyshev) of center as seen.
func (b *Buffer) Reveal(center model.Tripoint, radius int32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			pos := center.Add(dx, dy)
			if !b.seen[pos] {
				b.seen[pos] = true
				b.dirty[pos] = true
			}
		}
	}
}

// SetDanger marks a cell as dangerous for IsSafe.
func (b *Buffer) SetDanger(pos model.Tripoint, dangerous bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if dangerous {
		b.danger[pos] = true
	} else {
		delete(b.danger, pos)
	}
	b.dirty[pos] = true
}

// IsSafe reports whether the cell has no recorded danger.
func (b *Buffer) IsSafe(pos model.Tripoint) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return !b.danger[pos]
}

// FindClosest searches outward from origin for a cell of the given
// terrain type on origin's z-level. searchRange <= 0 uses
// DefaultSearchRange. With mustSee only revealed cells match. Returns
// model.InvalidTripoint when nothing is found.
func (b *Buffer) FindClosest(origin model.Tripoint, typ TerrainID, searchRange int32, mustSee bool) model.Tripoint {
	if searchRange <= 0 {
		searchRange = DefaultSearchRange
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for radius := int32(0); radius <= searchRange; radius++ {
		for _, pos := range ringPoints(origin, radius) {
			if b.matchLocked(pos, typ, mustSee) {
				return pos
			}
		}
	}
	return model.InvalidTripoint
}

// FindRandom returns a uniformly random matching cell within searchRange
// of origin, or model.InvalidTripoint when nothing matches.
func (b *Buffer) FindRandom(origin model.Tripoint, typ TerrainID, searchRange int32, mustSee bool) model.Tripoint {
	matches := b.FindAll(origin, typ, searchRange, mustSee)
	if len(matches) == 0 {
		return model.InvalidTripoint
	}
	return matches[rand.IntN(len(matches))]
}

// FindAll returns every matching cell within searchRange of origin.
func (b *Buffer) FindAll(origin model.Tripoint, typ TerrainID, searchRange int32, mustSee bool) []model.Tripoint {
	if searchRange <= 0 {
		searchRange = DefaultSearchRange
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	var matches []model.Tripoint
	for pos, ter := range b.tiles {
		if pos.Z != origin.Z {
			continue
		}
		if pos.SquareDist(origin) > searchRange {
			continue
		}
		if !ter.IsType(typ) {
			continue
		}
		if mustSee && !b.seen[pos] {
			continue
		}
		matches = append(matches, pos)
	}
	return matches
}

// ClosestCity returns the city whose border is nearest to the given
// absolute submap position.
func (b *Buffer) ClosestCity(absSm model.Tripoint) CityRef {
	omt := model.SubmapToOvermap(absSm)

	b.mu.RLock()
	defer b.mu.RUnlock()
	best := CityRef{Distance: -1}
	for _, c := range b.cities {
		dist := c.Pos.SquareDist(omt) - c.Size
		if dist < 0 {
			dist = 0
		}
		if best.Distance < 0 || dist < best.Distance {
			best = CityRef{City: c, AbsSmPos: absSm, Distance: dist}
		}
	}
	return best
}

// PlaceSpecial stamps the special onto replaceable ground within
// searchRange of origin. Candidate origins are scanned outward so the
// special lands as close as possible. Returns false when no footprint
// fits.
func (b *Buffer) PlaceSpecial(id SpecialID, origin model.Tripoint, searchRange int32) bool {
	special := GetSpecial(id)
	if special == nil {
		slog.Error("unknown overmap special", "special", id)
		return false
	}
	if searchRange <= 0 {
		searchRange = DefaultSearchRange
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for radius := int32(0); radius <= searchRange; radius++ {
		for _, anchor := range ringPoints(origin, radius) {
			if !b.footprintFitsLocked(special, anchor) {
				continue
			}
			for _, cell := range special.Cells {
				pos := anchor.Add(cell.Offset.X, cell.Offset.Y).WithZ(anchor.Z + cell.Offset.Z)
				b.tiles[pos] = cell.Ter
				b.dirty[pos] = true
			}
			slog.Info("overmap special placed", "special", id, "anchor", anchor)
			return true
		}
	}
	return false
}

func (b *Buffer) footprintFitsLocked(special *Special, anchor model.Tripoint) bool {
	for _, cell := range special.Cells {
		pos := anchor.Add(cell.Offset.X, cell.Offset.Y).WithZ(anchor.Z + cell.Offset.Z)
		if !b.tiles[pos].IsReplaceable() {
			return false
		}
	}
	return true
}

func (b *Buffer) matchLocked(pos model.Tripoint, typ TerrainID, mustSee bool) bool {
	ter, ok := b.tiles[pos]
	if !ok || !ter.IsType(typ) {
		return false
	}
	if mustSee && !b.seen[pos] {
		return false
	}
	return true
}

// ringPoints returns the cells at exactly the given Chebyshev radius
// from center, on center's z-level.
func ringPoints(center model.Tripoint, radius int32) []model.Tripoint {
	if radius == 0 {
		return []model.Tripoint{center}
	}
	points := make([]model.Tripoint, 0, 8*radius)
	for d := -radius; d <= radius; d++ {
		points = append(points,
			center.Add(d, -radius),
			center.Add(d, radius),
		)
	}
	for d := -radius + 1; d < radius; d++ {
		points = append(points,
			center.Add(-radius, d),
			center.Add(radius, d),
		)
	}
	return points
}
