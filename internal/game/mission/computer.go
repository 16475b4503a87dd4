package mission

import (
	"context"
	"fmt"

	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
	"github.com/wastefall/wastefall/internal/tinymap"
)

// findPotentialComputerPoint locates a tile for a terminal. In order,
// prefer broken consoles, then floor tiles next to a bed or dresser,
// then enclosed corners bounded by the outermost walls. Falls back to a
// random spot near the center of the chunk.
func findPotentialComputerPoint(tm *tinymap.Map) (int32, int32) {
	var broken, potential [][2]int32
	for x := int32(0); x < tinymap.Size; x++ {
		for y := int32(0); y < tinymap.Size; y++ {
			switch {
			case tm.Ter(x, y) == model.TerConsoleBroken:
				broken = append(broken, [2]int32{x, y})
			case tm.Ter(x, y) == model.TerFloor && tm.Furn(x, y) == model.FurnNull:
				okay := false
				wall := int32(0)
				for x2 := x - 1; x2 <= x+1 && !okay; x2++ {
					for y2 := y - 1; y2 <= y+1 && !okay; y2++ {
						if tm.Furn(x2, y2) == model.FurnBed || tm.Furn(x2, y2) == model.FurnDresser {
							okay = true
							potential = append(potential, [2]int32{x, y})
						}
						if tm.HasFlagWall(x2, y2) {
							wall++
						}
					}
				}
				if !okay && wall == 5 {
					if tm.IsLastTerWall(x, y, tinymap.North) &&
						tm.IsLastTerWall(x, y, tinymap.South) &&
						tm.IsLastTerWall(x, y, tinymap.West) &&
						tm.IsLastTerWall(x, y, tinymap.East) {
						potential = append(potential, [2]int32{x, y})
					}
				}
			}
		}
	}

	candidates := broken
	if len(candidates) == 0 {
		candidates = potential
	}
	if len(candidates) == 0 {
		// Random spot near the center, skipping tiles that already
		// hold a terminal so repeated placements stay distinct.
		for x := int32(10); x <= tinymap.Size-11; x++ {
			for y := int32(10); y <= tinymap.Size-11; y++ {
				if tm.Ter(x, y) != model.TerConsole {
					candidates = append(candidates, [2]int32{x, y})
				}
			}
		}
	}
	if len(candidates) == 0 {
		return rng(10, tinymap.Size-11), rng(10, tinymap.Size-11)
	}
	pick := candidates[rng(0, int32(len(candidates)-1))]
	return pick[0], pick[1]
}

// createLabConsoles drops four terminals in nearby chunks of the given
// lab terrain so the player can stumble upon one of them.
func (mgr *Manager) createLabConsoles(ctx context.Context, miss *model.Mission, place model.Tripoint, otype overmap.TerrainID, security int32, compName, downloadName string) error {
	for i := 0; i < 4; i++ {
		omPlace := mgr.targetOmTerRandom(otype, -1, miss, false, 4, &place)
		if !omPlace.IsValid() {
			return fmt.Errorf("no %s terrain near %+v for console %d", otype, place, i)
		}

		tm, err := mgr.loadMap(ctx, omPlace)
		if err != nil {
			return err
		}
		x, y := findPotentialComputerPoint(tm)
		comp := tm.AddComputer(x, y, compName, security)
		comp.MissionUID = miss.UID()
		comp.AddOption(downloadName, model.ActionDownloadSoftware, security)
		comp.AddFailure(model.FailAlarm)
		comp.AddFailure(model.FailDamage)
		comp.AddFailure(model.FailManhacks)

		if err := tm.Save(ctx); err != nil {
			return err
		}
	}
	return nil
}
