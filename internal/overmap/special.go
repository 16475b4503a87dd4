package overmap

import "github.com/wastefall/wastefall/internal/model"

// SpecialID identifies a multi-cell overmap structure.
type SpecialID string

const (
	SpecialEvacCenter SpecialID = "evac_center"
)

// SpecialCell is one terrain cell of a special, relative to its origin.
type SpecialCell struct {
	Offset model.Tripoint
	Ter    TerrainID
}

// Special is a multi-cell structure stamped onto replaceable ground.
type Special struct {
	ID    SpecialID
	Cells []SpecialCell
}

// specials is the registry of placeable structures. The evacuation
// center is a 3×3 compound whose center cell is the mission target.
var specials = map[SpecialID]*Special{
	SpecialEvacCenter: {
		ID: SpecialEvacCenter,
		Cells: []SpecialCell{
			{Offset: model.NewTripoint(-1, -1, 0), Ter: "evac_center_7"},
			{Offset: model.NewTripoint(0, -1, 0), Ter: "evac_center_8"},
			{Offset: model.NewTripoint(1, -1, 0), Ter: "evac_center_9"},
			{Offset: model.NewTripoint(-1, 0, 0), Ter: "evac_center_17"},
			{Offset: model.NewTripoint(0, 0, 0), Ter: TerEvacCenter},
			{Offset: model.NewTripoint(1, 0, 0), Ter: "evac_center_19"},
			{Offset: model.NewTripoint(-1, 1, 0), Ter: "evac_center_27"},
			{Offset: model.NewTripoint(0, 1, 0), Ter: "evac_center_28"},
			{Offset: model.NewTripoint(1, 1, 0), Ter: "evac_center_29"},
		},
	},
}

// GetSpecial returns a registered special, or nil if unknown.
func GetSpecial(id SpecialID) *Special {
	return specials[id]
}

// ContainsTerrain reports whether the special produces a cell of the
// given terrain type.
func (s *Special) ContainsTerrain(typ TerrainID) bool {
	for _, c := range s.Cells {
		if c.Ter.IsType(typ) {
			return true
		}
	}
	return false
}
