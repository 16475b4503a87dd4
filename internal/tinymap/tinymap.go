package tinymap

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/wastefall/wastefall/internal/data"
	"github.com/wastefall/wastefall/internal/model"
)

// Direction names an edge of the loaded window for wall scans.
type Direction int32

const (
	North Direction = iota
	South
	West
	East
)

// Repository persists submaps. LoadSubmap returns nil for a chunk that
// has never been saved; the loader substitutes a blank submap.
// Implemented in the db package.
type Repository interface {
	LoadSubmap(ctx context.Context, pos model.Tripoint) (*Submap, error)
	SaveSubmap(ctx context.Context, pos model.Tripoint, sm *Submap) error
}

// Map is an editing window over the 2×2 submaps backing one overmap
// terrain cell. Load, mutate, Save. Not safe for concurrent use; each
// mission start handler edits through its own Map.
type Map struct {
	repo     Repository
	originSm model.Tripoint // submap coordinates of the NW submap
	submaps  [2][2]*Submap
	loaded   bool
}

// New creates an unloaded editing window.
func New(repo Repository) *Map {
	return &Map{repo: repo}
}

// Load pulls the submaps backing the given overmap terrain cell.
// Missing submaps start blank.
func (m *Map) Load(ctx context.Context, omt model.Tripoint) error {
	origin := omt.Submap()
	for sx := int32(0); sx < 2; sx++ {
		for sy := int32(0); sy < 2; sy++ {
			pos := origin.Add(sx, sy)
			sm, err := m.repo.LoadSubmap(ctx, pos)
			if err != nil {
				return fmt.Errorf("loading submap %+v: %w", pos, err)
			}
			if sm == nil {
				sm = NewSubmap()
			}
			m.submaps[sx][sy] = sm
		}
	}
	m.originSm = origin
	m.loaded = true
	return nil
}

// Save writes all four submaps back to the repository.
func (m *Map) Save(ctx context.Context) error {
	if !m.loaded {
		return fmt.Errorf("saving unloaded map window")
	}
	for sx := int32(0); sx < 2; sx++ {
		for sy := int32(0); sy < 2; sy++ {
			pos := m.originSm.Add(sx, sy)
			if err := m.repo.SaveSubmap(ctx, pos, m.submaps[sx][sy]); err != nil {
				return fmt.Errorf("saving submap %+v: %w", pos, err)
			}
		}
	}
	return nil
}

// InBounds reports whether (x, y) lies inside the loaded window.
func InBounds(x, y int32) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// at resolves window coordinates to a submap and local coordinates.
func (m *Map) at(x, y int32) (*Submap, int32, int32) {
	return m.submaps[x/SubmapSize][y/SubmapSize], x % SubmapSize, y % SubmapSize
}

// Ter returns the terrain at window coordinates. Out-of-bounds reads
// return the null terrain.
func (m *Map) Ter(x, y int32) model.TerrainID {
	if !InBounds(x, y) {
		return model.TerNull
	}
	sm, lx, ly := m.at(x, y)
	return sm.Ter[lx][ly]
}

// SetTer sets the terrain at window coordinates. Out-of-bounds writes
// are dropped.
func (m *Map) SetTer(x, y int32, ter model.TerrainID) {
	if !InBounds(x, y) {
		return
	}
	sm, lx, ly := m.at(x, y)
	sm.Ter[lx][ly] = ter
}

// Furn returns the furniture at window coordinates.
func (m *Map) Furn(x, y int32) model.FurnitureID {
	if !InBounds(x, y) {
		return model.FurnNull
	}
	sm, lx, ly := m.at(x, y)
	return sm.Furn[lx][ly]
}

// SetFurn sets the furniture at window coordinates.
func (m *Map) SetFurn(x, y int32, furn model.FurnitureID) {
	if !InBounds(x, y) {
		return
	}
	sm, lx, ly := m.at(x, y)
	sm.Furn[lx][ly] = furn
}

// HasFlagWall reports whether the tile's terrain is a wall.
func (m *Map) HasFlagWall(x, y int32) bool {
	return m.Ter(x, y).HasWallFlag()
}

// Translate replaces every tile of terrain from with to across the
// whole window.
func (m *Map) Translate(from, to model.TerrainID) {
	for x := int32(0); x < Size; x++ {
		for y := int32(0); y < Size; y++ {
			if m.Ter(x, y) == from {
				m.SetTer(x, y, to)
			}
		}
	}
}

// DrawSquareTer fills the inclusive rectangle with the terrain.
func (m *Map) DrawSquareTer(ter model.TerrainID, x1, y1, x2, y2 int32) {
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			m.SetTer(x, y, ter)
		}
	}
}

// DrawSquareFurn fills the inclusive rectangle with the furniture.
func (m *Map) DrawSquareFurn(furn model.FurnitureID, x1, y1, x2, y2 int32) {
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			m.SetFurn(x, y, furn)
		}
	}
}

// IsLastTerWall reports whether (x, y) is the outermost wall toward the
// given edge: no other wall lies between it and that edge in the same
// row or column.
func (m *Map) IsLastTerWall(x, y int32, dir Direction) bool {
	if !m.HasFlagWall(x, y) {
		return false
	}
	switch dir {
	case North:
		for yy := int32(0); yy < y; yy++ {
			if m.HasFlagWall(x, yy) {
				return false
			}
		}
	case South:
		for yy := y + 1; yy < Size; yy++ {
			if m.HasFlagWall(x, yy) {
				return false
			}
		}
	case West:
		for xx := int32(0); xx < x; xx++ {
			if m.HasFlagWall(xx, y) {
				return false
			}
		}
	case East:
		for xx := x + 1; xx < Size; xx++ {
			if m.HasFlagWall(xx, y) {
				return false
			}
		}
	}
	return true
}

// AddSpawn records a monster spawn at window coordinates.
func (m *Map) AddSpawn(spawn model.MonsterSpawn) {
	if !InBounds(spawn.PosX, spawn.PosY) {
		return
	}
	sm, lx, ly := m.at(spawn.PosX, spawn.PosY)
	spawn.PosX, spawn.PosY = lx, ly
	sm.Spawns = append(sm.Spawns, spawn)
}

// Spawns returns every spawn record in the window, positions in window
// coordinates.
func (m *Map) Spawns() []model.MonsterSpawn {
	var out []model.MonsterSpawn
	for sx := int32(0); sx < 2; sx++ {
		for sy := int32(0); sy < 2; sy++ {
			for _, sp := range m.submaps[sx][sy].Spawns {
				sp.PosX += sx * SubmapSize
				sp.PosY += sy * SubmapSize
				out = append(out, sp)
			}
		}
	}
	return out
}

// SpawnItem drops a single item of the given type on the tile.
func (m *Map) SpawnItem(x, y int32, id model.ItemID) {
	m.SpawnItemCount(x, y, id, 1)
}

// SpawnItemCount drops count items of the given type on the tile.
func (m *Map) SpawnItemCount(x, y int32, id model.ItemID, count int32) {
	if !InBounds(x, y) || count < 1 {
		return
	}
	sm, lx, ly := m.at(x, y)
	sm.Items = append(sm.Items, PlacedItem{
		Item: model.Item{ID: id, Count: count},
		X:    lx,
		Y:    ly,
	})
}

// Items returns every placed item in the window, positions in window
// coordinates.
func (m *Map) Items() []PlacedItem {
	var out []PlacedItem
	for sx := int32(0); sx < 2; sx++ {
		for sy := int32(0); sy < 2; sy++ {
			for _, it := range m.submaps[sx][sy].Items {
				it.X += sx * SubmapSize
				it.Y += sy * SubmapSize
				out = append(out, it)
			}
		}
	}
	return out
}

// PlaceItems rolls the item group once per tile of the inclusive
// rectangle, dropping a roll with the given percent chance. Matches the
// scatter behavior of structure stocking.
func (m *Map) PlaceItems(group model.ItemGroupID, chance int32, x1, y1, x2, y2 int32) {
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			if rand.Int32N(100) >= chance {
				continue
			}
			it, ok := data.RollItemGroup(group)
			if !ok {
				continue
			}
			m.SpawnItemCount(x, y, it.ID, it.Count)
		}
	}
}

// AddComputer installs a terminal on the tile and returns it for option
// wiring. The tile's terrain is set to a working console.
func (m *Map) AddComputer(x, y int32, name string, security int32) *model.Computer {
	if !InBounds(x, y) {
		return nil
	}
	m.SetTer(x, y, model.TerConsole)
	sm, lx, ly := m.at(x, y)
	comp := &model.Computer{Name: name, Security: security, PosX: lx, PosY: ly}
	sm.Computers = append(sm.Computers, comp)
	return comp
}

// ComputerAt returns the terminal on the tile, or nil.
func (m *Map) ComputerAt(x, y int32) *model.Computer {
	if !InBounds(x, y) {
		return nil
	}
	sm, lx, ly := m.at(x, y)
	for _, comp := range sm.Computers {
		if comp.PosX == lx && comp.PosY == ly {
			return comp
		}
	}
	return nil
}

// PlaceNpc records a template-based NPC on the tile.
func (m *Map) PlaceNpc(x, y int32, templateID string) {
	if !InBounds(x, y) {
		return
	}
	sm, lx, ly := m.at(x, y)
	sm.Npcs = append(sm.Npcs, NpcPlacement{TemplateID: templateID, X: lx, Y: ly})
}

// Npcs returns every NPC placement in the window, positions in window
// coordinates.
func (m *Map) Npcs() []NpcPlacement {
	var out []NpcPlacement
	for sx := int32(0); sx < 2; sx++ {
		for sy := int32(0); sy < 2; sy++ {
			for _, np := range m.submaps[sx][sy].Npcs {
				np.X += sx * SubmapSize
				np.Y += sy * SubmapSize
				out = append(out, np)
			}
		}
	}
	return out
}

// AddVehicle records a vehicle prototype at window coordinates.
func (m *Map) AddVehicle(proto model.VehicleProtoID, x, y, dir int32) {
	if !InBounds(x, y) {
		return
	}
	sm, lx, ly := m.at(x, y)
	sm.Vehicles = append(sm.Vehicles, VehicleRecord{Proto: proto, X: lx, Y: ly, Dir: dir})
}

// Vehicles returns every vehicle record in the window, positions in
// window coordinates.
func (m *Map) Vehicles() []VehicleRecord {
	var out []VehicleRecord
	for sx := int32(0); sx < 2; sx++ {
		for sy := int32(0); sy < 2; sy++ {
			for _, v := range m.submaps[sx][sy].Vehicles {
				v.X += sx * SubmapSize
				v.Y += sy * SubmapSize
				out = append(out, v)
			}
		}
	}
	return out
}
