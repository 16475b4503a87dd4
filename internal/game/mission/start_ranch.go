package mission

import (
	"context"
	"fmt"

	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
	"github.com/wastefall/wastefall/internal/tinymap"
)

// Ranch camp chunks edited by the construction missions.
const (
	terRanchGarage   overmap.TerrainID = "ranch_camp_48"
	terRanchYard     overmap.TerrainID = "ranch_camp_49"
	terRanchOutfield overmap.TerrainID = "ranch_camp_50"
	terRanchClinic   overmap.TerrainID = "ranch_camp_59"
)

const ranchSize = 5

// ranchMap targets a ranch chunk and opens it for editing.
func (mgr *Manager) ranchMap(ctx context.Context, ter overmap.TerrainID, miss *model.Mission) (*tinymap.Map, error) {
	site := mgr.targetOmTerRandom(ter, 1, miss, false, ranchSize, nil)
	if !site.IsValid() {
		return nil, fmt.Errorf("no %s chunk within ranch", ter)
	}
	return mgr.loadMap(ctx, site)
}

// Improvements to the clinic: shelving and basic supplies.
func (mgr *Manager) startRanchNurse1(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchClinic, miss)
	if err != nil {
		return err
	}
	bay.DrawSquareFurn(model.FurnRack, 16, 9, 17, 9)
	bay.SpawnItemCount(16, 9, model.ItemBandages, rng(1, 3))
	bay.SpawnItemCount(17, 9, model.ItemAspirin, rng(1, 2))
	return bay.Save(ctx)
}

// Improvements to the clinic: a counter and a reference shelf.
func (mgr *Manager) startRanchNurse2(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchClinic, miss)
	if err != nil {
		return err
	}
	bay.DrawSquareFurn(model.FurnCounter, 3, 7, 5, 7)
	bay.DrawSquareFurn(model.FurnRack, 8, 4, 8, 5)
	bay.SpawnItem(8, 4, model.ItemFirstAidManual)
	return bay.Save(ctx)
}

// Improvements to the clinic: ground broken for the expansion.
func (mgr *Manager) startRanchNurse3(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchOutfield, miss)
	if err != nil {
		return err
	}
	bay.DrawSquareTer(model.TerDirt, 2, 16, 9, 23)
	bay.DrawSquareTer(model.TerDirt, 13, 16, 20, 23)
	bay.DrawSquareTer(model.TerDirt, 10, 17, 12, 23)
	if err := bay.Save(ctx); err != nil {
		return err
	}

	bay, err = mgr.ranchMap(ctx, terRanchClinic, miss)
	if err != nil {
		return err
	}
	bay.DrawSquareTer(model.TerDirt, 2, 0, 20, 2)
	bay.DrawSquareTer(model.TerDirt, 10, 3, 12, 4)
	return bay.Save(ctx)
}

// Improvements to the clinic: framed walls and door frames.
func (mgr *Manager) startRanchNurse4(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchOutfield, miss)
	if err != nil {
		return err
	}
	bay.DrawSquareTer(model.TerWallHalf, 2, 16, 9, 23)
	bay.DrawSquareTer(model.TerDirt, 3, 17, 8, 22)
	bay.DrawSquareTer(model.TerWallHalf, 13, 16, 20, 23)
	bay.DrawSquareTer(model.TerDirt, 14, 17, 19, 22)
	bay.DrawSquareTer(model.TerWallHalf, 10, 17, 12, 23)
	bay.DrawSquareTer(model.TerDirt, 10, 18, 12, 23)
	bay.SetTer(9, 19, model.TerDoorFrame)
	bay.SetTer(13, 19, model.TerDoorFrame)
	if err := bay.Save(ctx); err != nil {
		return err
	}

	bay, err = mgr.ranchMap(ctx, terRanchClinic, miss)
	if err != nil {
		return err
	}
	bay.DrawSquareTer(model.TerWallHalf, 4, 0, 18, 2)
	bay.DrawSquareTer(model.TerWallHalf, 10, 3, 12, 4)
	bay.DrawSquareTer(model.TerDirt, 5, 0, 8, 2)
	bay.DrawSquareTer(model.TerDirt, 10, 0, 12, 4)
	bay.DrawSquareTer(model.TerDirt, 14, 0, 17, 2)
	bay.SetTer(9, 1, model.TerDoorFrame)
	bay.SetTer(13, 1, model.TerDoorFrame)
	return bay.Save(ctx)
}

// Improvements to the clinic: walls finished, window frames cut.
func (mgr *Manager) startRanchNurse5(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchOutfield, miss)
	if err != nil {
		return err
	}
	bay.Translate(model.TerWallHalf, model.TerWallWood)
	bay.SetTer(2, 21, model.TerWindowFrame)
	bay.SetTer(2, 18, model.TerWindowFrame)
	bay.SetTer(20, 18, model.TerWindowFrame)
	bay.SetTer(20, 21, model.TerWindowFrame)
	bay.SetTer(11, 17, model.TerWindowFrame)
	if err := bay.Save(ctx); err != nil {
		return err
	}

	bay, err = mgr.ranchMap(ctx, terRanchClinic, miss)
	if err != nil {
		return err
	}
	bay.Translate(model.TerWallHalf, model.TerWallWood)
	bay.DrawSquareTer(model.TerDirt, 10, 0, 12, 4)
	return bay.Save(ctx)
}

// Improvements to the clinic: windows boarded, doors hung, floors laid.
func (mgr *Manager) startRanchNurse6(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchOutfield, miss)
	if err != nil {
		return err
	}
	bay.Translate(model.TerWindowFrame, model.TerWindowBoarded)
	bay.Translate(model.TerDoorFrame, model.TerDoorClosed)
	bay.DrawSquareTer(model.TerDirtFloor, 3, 17, 8, 22)
	bay.DrawSquareTer(model.TerDirtFloor, 14, 17, 19, 22)
	bay.DrawSquareTer(model.TerDirtFloor, 10, 18, 12, 23)
	if err := bay.Save(ctx); err != nil {
		return err
	}

	bay, err = mgr.ranchMap(ctx, terRanchClinic, miss)
	if err != nil {
		return err
	}
	bay.Translate(model.TerDoorFrame, model.TerDoorClosed)
	bay.DrawSquareTer(model.TerDirtFloor, 5, 0, 8, 2)
	bay.DrawSquareTer(model.TerDirtFloor, 10, 0, 12, 4)
	bay.DrawSquareTer(model.TerDirtFloor, 14, 0, 17, 2)
	return bay.Save(ctx)
}

// Improvements to the clinic: proper flooring and a supply rack.
func (mgr *Manager) startRanchNurse7(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchOutfield, miss)
	if err != nil {
		return err
	}
	bay.Translate(model.TerDirtFloor, model.TerFloor)
	if err := bay.Save(ctx); err != nil {
		return err
	}

	bay, err = mgr.ranchMap(ctx, terRanchClinic, miss)
	if err != nil {
		return err
	}
	bay.Translate(model.TerDirtFloor, model.TerFloor)
	bay.DrawSquareTer(model.TerFloor, 10, 5, 12, 5)
	bay.DrawSquareFurn(model.FurnRack, 17, 0, 17, 2)
	return bay.Save(ctx)
}

// Improvements to the clinic: patient beds and medical stock.
func (mgr *Manager) startRanchNurse8(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchOutfield, miss)
	if err != nil {
		return err
	}
	for _, x := range []int32{4, 7, 15, 18} {
		bay.DrawSquareFurn(model.FurnMakeshiftBed, x, 21, x, 22)
		bay.DrawSquareFurn(model.FurnMakeshiftBed, x, 17, x, 18)
	}
	if err := bay.Save(ctx); err != nil {
		return err
	}

	bay, err = mgr.ranchMap(ctx, terRanchClinic, miss)
	if err != nil {
		return err
	}
	bay.Translate(model.TerDirtFloor, model.TerFloor)
	bay.PlaceItems(model.GroupCleaning, 75, 17, 0, 17, 2)
	bay.PlaceItems(model.GroupSurgery, 75, 15, 4, 18, 4)
	return bay.Save(ctx)
}

// Improvements to the clinic: dressers for the ward and a resident
// doctor.
func (mgr *Manager) startRanchNurse9(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchOutfield, miss)
	if err != nil {
		return err
	}
	for _, x := range []int32{3, 8, 14, 19} {
		bay.SetFurn(x, 22, model.FurnDresser)
		bay.SetFurn(x, 17, model.FurnDresser)
	}
	bay.PlaceNpc(16, 19, "ranch_doctor")
	if err := bay.Save(ctx); err != nil {
		return err
	}

	mgr.targetOmTerRandom(terRanchClinic, 1, miss, false, ranchSize, nil)
	return nil
}

// Scavenger outpost: fence off the salvage yard.
func (mgr *Manager) startRanchScavenger1(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchGarage, miss)
	if err != nil {
		return err
	}
	bay.DrawSquareTer(model.TerChainFence, 15, 13, 15, 22)
	bay.DrawSquareTer(model.TerChainFence, 16, 13, 23, 13)
	bay.DrawSquareTer(model.TerChainFence, 16, 22, 23, 22)
	if err := bay.Save(ctx); err != nil {
		return err
	}

	bay, err = mgr.ranchMap(ctx, terRanchYard, miss)
	if err != nil {
		return err
	}
	bay.PlaceItems(model.GroupMechanics, 65, 9, 13, 10, 16)
	bay.DrawSquareTer(model.TerChainFence, 0, 22, 7, 22)
	bay.DrawSquareTer(model.TerDirt, 2, 22, 3, 22)
	bay.SpawnItem(7, 19, model.ItemStorageDrum)
	return bay.Save(ctx)
}

// Scavenger outpost: drag in a chassis and frame the workshop.
func (mgr *Manager) startRanchScavenger2(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchGarage, miss)
	if err != nil {
		return err
	}
	bay.AddVehicle(model.VehicleCarChassis, 20, 15, 0)
	bay.DrawSquareTer(model.TerWallHalf, 18, 19, 21, 22)
	bay.DrawSquareTer(model.TerDirt, 19, 20, 20, 21)
	bay.SetTer(19, 19, model.TerDoorFrame)
	if err := bay.Save(ctx); err != nil {
		return err
	}

	bay, err = mgr.ranchMap(ctx, terRanchYard, miss)
	if err != nil {
		return err
	}
	bay.PlaceItems(model.GroupHardware, 65, 12, 13, 13, 16)
	bay.DrawSquareTer(model.TerChainGate, 2, 22, 3, 22)
	bay.SpawnItem(7, 20, model.ItemStorageDrum)
	return bay.Save(ctx)
}

// Scavenger outpost: finish the workshop and stock the salvage.
func (mgr *Manager) startRanchScavenger3(ctx context.Context, miss *model.Mission) error {
	bay, err := mgr.ranchMap(ctx, terRanchGarage, miss)
	if err != nil {
		return err
	}
	bay.Translate(model.TerDoorFrame, model.TerDoorLocked)
	bay.Translate(model.TerWallHalf, model.TerWallWood)
	bay.DrawSquareTer(model.TerDirtFloor, 19, 20, 20, 21)
	bay.SpawnItem(16, 21, model.ItemWideWheel)
	bay.SpawnItem(17, 21, model.ItemWideWheel)
	bay.SpawnItem(23, 18, model.ItemV8Engine)
	bay.SetFurn(23, 17, model.FurnArcadeMachine)
	bay.SetTer(23, 16, model.TerMachineLight)
	bay.SetFurn(20, 21, model.FurnWoodStove)
	if err := bay.Save(ctx); err != nil {
		return err
	}

	bay, err = mgr.ranchMap(ctx, terRanchYard, miss)
	if err != nil {
		return err
	}
	bay.PlaceItems(model.GroupHardware, 65, 2, 10, 4, 10)
	bay.PlaceItems(model.GroupHardware, 65, 2, 13, 4, 13)
	bay.SetFurn(1, 15, model.FurnFridge)
	bay.SpawnItem(2, 15, model.ItemHeavyDutyFrame)
	bay.SetFurn(3, 15, model.FurnWasher)
	return bay.Save(ctx)
}
