package data

import (
	"math/rand/v2"

	"github.com/wastefall/wastefall/internal/model"
)

// GroupEntry is one weighted item in a group table.
type GroupEntry struct {
	ID     model.ItemID
	Weight int32
	Max    int32 // maximum count per roll, minimum 1
}

// Item group tables consumed by tinymap.PlaceItems. Weights are relative
// within a group.
var itemGroups = map[model.ItemGroupID][]GroupEntry{
	model.GroupCleaning: {
		{ID: "rag", Weight: 40, Max: 4},
		{ID: "soap", Weight: 25, Max: 2},
		{ID: "bleach", Weight: 20, Max: 1},
		{ID: "mop", Weight: 15, Max: 1},
	},
	model.GroupSurgery: {
		{ID: "scalpel", Weight: 30, Max: 1},
		{ID: model.ItemBandages, Weight: 30, Max: 3},
		{ID: "syringe", Weight: 20, Max: 2},
		{ID: "thread", Weight: 20, Max: 2},
	},
	model.GroupMechanics: {
		{ID: "wrench", Weight: 30, Max: 1},
		{ID: "screwdriver", Weight: 25, Max: 1},
		{ID: "duct_tape", Weight: 25, Max: 2},
		{ID: "metal_scrap", Weight: 20, Max: 6},
	},
	model.GroupHardware: {
		{ID: "nails", Weight: 30, Max: 8},
		{ID: "2x4", Weight: 25, Max: 4},
		{ID: "hammer", Weight: 20, Max: 1},
		{ID: "chain", Weight: 15, Max: 1},
		{ID: "padlock", Weight: 10, Max: 1},
	},
}

// ItemGroup returns the weighted entries for a group, or nil if unknown.
func ItemGroup(id model.ItemGroupID) []GroupEntry {
	return itemGroups[id]
}

// RollItemGroup picks one weighted entry from the group and rolls its
// count. Returns false for an unknown or empty group.
func RollItemGroup(id model.ItemGroupID) (model.Item, bool) {
	entries := itemGroups[id]
	if len(entries) == 0 {
		return model.Item{}, false
	}

	var total int32
	for _, e := range entries {
		total += e.Weight
	}

	pick := rand.Int32N(total)
	for _, e := range entries {
		pick -= e.Weight
		if pick < 0 {
			count := int32(1)
			if e.Max > 1 {
				count = 1 + rand.Int32N(e.Max)
			}
			return model.Item{ID: e.ID, Count: count}, true
		}
	}

	// Unreachable with positive weights.
	last := entries[len(entries)-1]
	return model.Item{ID: last.ID, Count: 1}, true
}
