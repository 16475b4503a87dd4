package mission

import (
	"context"
	"fmt"

	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
	"github.com/wastefall/wastefall/internal/tinymap"
)

// Picks a lab that has spaces on z = -1, e.g. in hidden labs, and
// seeds its terminals.
func (mgr *Manager) startCreateLabConsole(ctx context.Context, miss *model.Mission) error {
	loc := mgr.world.Player().OmtLocation().WithZ(-1)
	place := mgr.omb.FindClosest(loc, overmap.TerLab, 0, false)
	if !place.IsValid() {
		return fmt.Errorf("no lab near %+v", loc)
	}

	if err := mgr.createLabConsoles(ctx, miss, place, overmap.TerLab, 2, "Workstation", "Download Memory Contents"); err != nil {
		return err
	}

	target := mgr.closestLabEntrance(place, 2, miss)
	mgr.revealRoad(mgr.world.Player().OmtLocation(), target)
	return nil
}

// Picks a hidden lab entrance and seeds terminals one level below it.
func (mgr *Manager) startCreateHiddenLabConsole(ctx context.Context, miss *model.Mission) error {
	loc := mgr.world.Player().OmtLocation().WithZ(-1)
	place := mgr.targetOmTerRandom(overmap.TerBasementHiddenLabStairs, -1, miss, false, 0, &loc)
	if !place.IsValid() {
		return fmt.Errorf("no hidden lab stairs near %+v", loc)
	}
	place = place.WithZ(-2)

	if err := mgr.createLabConsoles(ctx, miss, place, overmap.TerLab, 3, "Workstation", "Download Encryption Routines"); err != nil {
		return err
	}

	target := mgr.closestLabEntrance(place, 2, miss)
	mgr.revealRoad(mgr.world.Player().OmtLocation(), target)
	return nil
}

// Picks an ice lab with spaces on z = -4 and seeds its archives.
func (mgr *Manager) startCreateIceLabConsole(ctx context.Context, miss *model.Mission) error {
	loc := mgr.world.Player().OmtLocation().WithZ(-4)
	place := mgr.omb.FindClosest(loc, overmap.TerIceLab, 0, false)
	if !place.IsValid() {
		return fmt.Errorf("no ice lab near %+v", loc)
	}

	if err := mgr.createLabConsoles(ctx, miss, place, overmap.TerIceLab, 3, "Durable Storage Archive", "Download Archives"); err != nil {
		return err
	}

	target := mgr.closestLabEntrance(place, 2, miss)
	mgr.revealRoad(mgr.world.Player().OmtLocation(), target)
	return nil
}

// Finds the train depot tunnels at z = -4 and enables routing
// downloads on the depot terminal.
func (mgr *Manager) startRevealLabTrainDepot(ctx context.Context, miss *model.Mission) error {
	loc := mgr.world.Player().OmtLocation().WithZ(-4)
	place := mgr.omb.FindClosest(loc, overmap.TerLabTrainDepot, 0, false)
	if !place.IsValid() {
		return fmt.Errorf("no lab train depot near %+v", loc)
	}

	tm, err := mgr.loadMap(ctx, place)
	if err != nil {
		return err
	}

	compX, compY := int32(-1), int32(-1)
search:
	for x := int32(0); x < tinymap.Size; x++ {
		for y := int32(0); y < tinymap.Size; y++ {
			if tm.Ter(x, y) == model.TerConsole {
				compX, compY = x, y
				break search
			}
		}
	}
	if compX < 0 {
		return fmt.Errorf("no console in lab train depot at %+v", place)
	}

	comp := tm.ComputerAt(compX, compY)
	if comp == nil {
		comp = tm.AddComputer(compX, compY, "Lab Train Controls", 0)
	}
	comp.MissionUID = miss.UID()
	comp.AddOption("Download Routing Software", model.ActionDownloadSoftware, 0)

	if err := tm.Save(ctx); err != nil {
		return err
	}

	target := mgr.closestLabEntrance(place, 2, miss)
	mgr.revealRoad(mgr.world.Player().OmtLocation(), target)
	return nil
}
