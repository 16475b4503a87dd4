// Package overmap implements the overmap terrain buffer: a seen-flagged
// grid of terrain cells with closest/random search, reveal, road routing,
// city lookup, and special placement. Mission start handlers are its main
// consumer.
package overmap

import "strings"

// TerrainID identifies an overmap terrain cell type. Rotated and indexed
// variants share a base prefix, e.g. "house_north" matches type "house".
type TerrainID string

// Overmap terrain referenced by mission targeting.
const (
	TerEmpty                   TerrainID = ""
	TerField                   TerrainID = "field"
	TerForest                  TerrainID = "forest"
	TerForestThick             TerrainID = "forest_thick"
	TerRoad                    TerrainID = "road"
	TerHouse                   TerrainID = "house"
	TerPharmacy                TerrainID = "s_pharm"
	TerBank                    TerrainID = "bank"
	TerCabin                   TerrainID = "cabin"
	TerOfficeTower             TerrainID = "office_tower_1"
	TerHotelTower              TerrainID = "hotel_tower_1_8"
	TerSchool                  TerrainID = "school_5"
	TerNecropolis              TerrainID = "necropolis_c_44"
	TerLab                     TerrainID = "lab"
	TerLabStairs               TerrainID = "lab_stairs"
	TerHiddenLabStairs         TerrainID = "hidden_lab_stairs"
	TerBasementHiddenLabStairs TerrainID = "basement_hidden_lab_stairs"
	TerIceLab                  TerrainID = "ice_lab"
	TerLabTrainDepot           TerrainID = "lab_train_depot"
	TerEvacCenter              TerrainID = "evac_center_18"
)

// IsType reports whether the terrain is the given type or one of its
// variants: an exact match or the type followed by a "_" suffix.
func (t TerrainID) IsType(typ TerrainID) bool {
	if t == typ {
		return true
	}
	return strings.HasPrefix(string(t), string(typ)+"_")
}

// IsRoad reports whether the terrain is passable by road routing.
func (t TerrainID) IsRoad() bool {
	return t.IsType(TerRoad) || t.IsType("bridge")
}

// IsReplaceable reports whether a special or a substituted mission
// terrain may overwrite this cell.
func (t TerrainID) IsReplaceable() bool {
	return t == TerEmpty || t.IsType(TerField) || t.IsType(TerForest)
}
