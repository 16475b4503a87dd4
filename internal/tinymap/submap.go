// Package tinymap edits saved map chunks: it loads the 2×2 submap window
// backing one overmap terrain cell, applies terrain/furniture/content
// mutations, and writes the submaps back. Mission start handlers use it
// for all their map edits.
package tinymap

import "github.com/wastefall/wastefall/internal/model"

// SubmapSize is the tile width of one square submap.
const SubmapSize = 12

// Size is the tile width of the loaded window: a 2×2 block of submaps
// backing a single overmap terrain cell.
const Size = SubmapSize * 2

// PlacedItem is one item lying on a tile.
type PlacedItem struct {
	Item model.Item
	X    int32
	Y    int32
}

// NpcPlacement is a template-based NPC recorded in a submap, spawned
// into the world when the chunk becomes active.
type NpcPlacement struct {
	TemplateID string
	X          int32
	Y          int32
}

// VehicleRecord is a vehicle prototype placed in a submap.
type VehicleRecord struct {
	Proto model.VehicleProtoID
	X     int32
	Y     int32
	Dir   int32 // facing, degrees
}

// Submap is one persisted map chunk. Tile arrays are indexed [x][y]
// with submap-local coordinates.
type Submap struct {
	Ter       [SubmapSize][SubmapSize]model.TerrainID   `json:"ter"`
	Furn      [SubmapSize][SubmapSize]model.FurnitureID `json:"furn"`
	Spawns    []model.MonsterSpawn                      `json:"spawns,omitempty"`
	Items     []PlacedItem                              `json:"items,omitempty"`
	Computers []*model.Computer                         `json:"computers,omitempty"`
	Npcs      []NpcPlacement                            `json:"npcs,omitempty"`
	Vehicles  []VehicleRecord                           `json:"vehicles,omitempty"`
}

// NewSubmap returns a blank submap filled with dirt.
func NewSubmap() *Submap {
	sm := &Submap{}
	for x := range SubmapSize {
		for y := range SubmapSize {
			sm.Ter[x][y] = model.TerDirt
		}
	}
	return sm
}
