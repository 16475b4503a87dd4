package mission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wastefall/wastefall/internal/data"
	"github.com/wastefall/wastefall/internal/game/npcact"
	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
	"github.com/wastefall/wastefall/internal/tinymap"
)

// Start handlers make changes to the game at the moment the mission is
// accepted. They are also responsible for updating the mission with the
// target and any other important information.

// startStandard applies no world changes.
func (mgr *Manager) startStandard(context.Context, *model.Mission) error {
	return nil
}

// startJoin turns the mission giver into a follower.
func (mgr *Manager) startJoin(_ context.Context, miss *model.Mission) error {
	npc, err := mgr.findNpc(miss.NpcID())
	if err != nil {
		return err
	}
	npc.SetAttitude(model.AttitudeFollow)
	return nil
}

// startInfectNpc infects the mission giver, strips their antibiotics,
// and pins them in place.
func (mgr *Manager) startInfectNpc(_ context.Context, miss *model.Mission) error {
	npc, err := mgr.findNpc(miss.NpcID())
	if err != nil {
		return err
	}
	npcact.Infect(npc)
	return nil
}

// startNeedDrugs strips the mission item from the giver and pins them
// in place.
func (mgr *Manager) startNeedDrugs(_ context.Context, miss *model.Mission) error {
	npc, err := mgr.findNpc(miss.NpcID())
	if err != nil {
		return err
	}
	npcact.StripItem(npc, miss.ItemID())
	return nil
}

// startPlaceDog hides a friendly dog in a house in the closest city and
// gives the player a dog whistle.
func (mgr *Manager) startPlaceDog(ctx context.Context, miss *model.Mission) error {
	house := mgr.randomHouseInClosestCity()
	npc, err := mgr.findNpc(miss.NpcID())
	if err != nil {
		return err
	}

	player := mgr.world.Player()
	player.AddItem(model.NewItem(model.ItemDogWhistle))
	player.AddMessage(fmt.Sprintf("%s gave you a dog whistle.", npc.Name()))

	miss.SetTarget(house)
	mgr.omb.Reveal(house, 6)

	tm, err := mgr.loadMap(ctx, house)
	if err != nil {
		return err
	}
	tm.AddSpawn(model.MonsterSpawn{
		Type:       model.MonDog,
		Count:      1,
		PosX:       centerX,
		PosY:       centerY,
		Friendly:   true,
		FactionID:  -1,
		MissionUID: miss.UID(),
	})
	return tm.Save(ctx)
}

// startPlaceZombieMom places a uniquely named zombie in a house in the
// closest city.
func (mgr *Manager) startPlaceZombieMom(ctx context.Context, miss *model.Mission) error {
	house := mgr.randomHouseInClosestCity()

	miss.SetTarget(house)
	mgr.omb.Reveal(house, 6)

	tm, err := mgr.loadMap(ctx, house)
	if err != nil {
		return err
	}
	tm.AddSpawn(model.MonsterSpawn{
		Type:       model.MonZombie,
		Count:      1,
		PosX:       centerX,
		PosY:       centerY,
		FactionID:  -1,
		MissionUID: miss.UID(),
		Name:       data.RandomFemaleGivenName(),
	})
	return tm.Save(ctx)
}

// startPlaceJabberwock spawns the jabberwock in thick forest.
func (mgr *Manager) startPlaceJabberwock(ctx context.Context, miss *model.Mission) error {
	site := mgr.targetOmTer(overmap.TerForestThick, 6, miss, false, 0)
	if !site.IsValid() {
		return fmt.Errorf("no thick forest for jabberwock")
	}
	tm, err := mgr.loadMap(ctx, site)
	if err != nil {
		return err
	}
	tm.AddSpawn(model.MonsterSpawn{
		Type:       model.MonJabberwock,
		Count:      1,
		PosX:       centerX,
		PosY:       centerY,
		FactionID:  -1,
		MissionUID: miss.UID(),
		Name:       "NONE",
	})
	return tm.Save(ctx)
}

// startKillNightmares targets the necropolis underground.
func (mgr *Manager) startKillNightmares(_ context.Context, miss *model.Mission) error {
	mgr.targetOmTer(overmap.TerNecropolis, 3, miss, false, -2)
	return nil
}

// startKillHordeMaster recruits the giver and seeds a zombie horde at a
// nearby landmark.
func (mgr *Manager) startKillHordeMaster(ctx context.Context, miss *model.Mission) error {
	npc, err := mgr.findNpc(miss.NpcID())
	if err != nil {
		return err
	}
	npc.SetAttitude(model.AttitudeFollow)

	// Pick one of the below locations for the horde to haunt.
	center := npc.OmtLocation()
	site := mgr.omb.FindClosest(center, overmap.TerOfficeTower, 0, false)
	if !site.IsValid() {
		site = mgr.omb.FindClosest(center, overmap.TerHotelTower, 0, false)
	}
	if !site.IsValid() {
		site = mgr.omb.FindClosest(center, overmap.TerSchool, 0, false)
	}
	if !site.IsValid() {
		site = mgr.omb.FindClosest(center, overmap.TerForestThick, 0, false)
	}
	if !site.IsValid() {
		return fmt.Errorf("no landmark for horde master near %+v", center)
	}

	miss.SetTarget(site)
	mgr.omb.Reveal(site, 6)

	tm, err := mgr.loadMap(ctx, site)
	if err != nil {
		return err
	}
	tm.AddSpawn(model.MonsterSpawn{
		Type: model.MonZombieMaster, Count: 1, PosX: centerX, PosY: centerY,
		FactionID: -1, MissionUID: miss.UID(), Name: "Demonic Soul",
	})
	tm.AddSpawn(model.MonsterSpawn{
		Type: model.MonZombieBrute, Count: 3, PosX: centerX, PosY: centerY, FactionID: -1,
	})
	tm.AddSpawn(model.MonsterSpawn{
		Type: model.MonZombieDog, Count: 3, PosX: centerX, PosY: centerY, FactionID: -1,
	})
	for x := int32(centerX - 1); x <= centerX+1; x++ {
		for y := int32(centerY - 1); y <= centerY+1; y++ {
			tm.AddSpawn(model.MonsterSpawn{
				Type: model.MonZombie, Count: rng(3, 10), PosX: x, PosY: y, FactionID: -1,
			})
		}
		tm.AddSpawn(model.MonsterSpawn{
			Type: model.MonZombieDog, Count: rng(0, 2), PosX: centerX, PosY: centerY, FactionID: -1,
		})
	}
	tm.AddSpawn(model.MonsterSpawn{
		Type: model.MonZombieNecro, Count: 2, PosX: centerX, PosY: centerY, FactionID: -1,
	})
	tm.AddSpawn(model.MonsterSpawn{
		Type: model.MonZombieHulk, Count: 1, PosX: centerX, PosY: centerY, FactionID: -1,
	})
	return tm.Save(ctx)
}

// startPlaceNpcSoftware hides software on a terminal matched to the
// giver's profession and hands the player a USB drive.
func (mgr *Manager) startPlaceNpcSoftware(ctx context.Context, miss *model.Mission) error {
	dev, err := mgr.findNpc(miss.NpcID())
	if err != nil {
		return err
	}

	player := mgr.world.Player()
	player.AddItem(model.NewItem(model.ItemUSBDrive))
	player.AddMessage(fmt.Sprintf("%s gave you a USB drive.", dev.Name()))

	siteType := overmap.TerHouse
	switch dev.Class() {
	case model.ClassHacker:
		miss.SetItemID(model.ItemSoftwareHacking)
	case model.ClassDoctor:
		miss.SetItemID(model.ItemSoftwareMedical)
		siteType = overmap.TerPharmacy
		miss.SetFollowUp(TypeGetZombieBlood)
	case model.ClassScientist:
		miss.SetItemID(model.ItemSoftwareMath)
	default:
		miss.SetItemID(model.ItemSoftwareUseless)
	}

	var place model.Tripoint
	if siteType == overmap.TerHouse {
		place = mgr.randomHouseInClosestCity()
	} else {
		place = mgr.omb.FindClosest(dev.OmtLocation(), siteType, 0, false)
	}
	if !place.IsValid() {
		return fmt.Errorf("no %s to hide software in", siteType)
	}
	miss.SetTarget(place)
	mgr.omb.Reveal(place, 6)

	tm, err := mgr.loadMap(ctx, place)
	if err != nil {
		return err
	}
	x, y := findPotentialComputerPoint(tm)
	comp := tm.AddComputer(x, y, fmt.Sprintf("%s's Terminal", dev.Name()), 0)
	comp.MissionUID = miss.UID()
	comp.AddOption("Download Software", model.ActionDownloadSoftware, 0)
	return tm.Save(ctx)
}

// startPlacePriestDiary hides the diary in furniture in a house in the
// closest city.
func (mgr *Manager) startPlacePriestDiary(ctx context.Context, miss *model.Mission) error {
	place := mgr.randomHouseInClosestCity()
	miss.SetTarget(place)
	mgr.omb.Reveal(place, 2)

	tm, err := mgr.loadMap(ctx, place)
	if err != nil {
		return err
	}

	var valid []model.Tripoint
	for x := int32(0); x < tinymap.Size; x++ {
		for y := int32(0); y < tinymap.Size; y++ {
			switch tm.Furn(x, y) {
			case model.FurnBed, model.FurnDresser, model.FurnIndoorPlant, model.FurnCupboard:
				valid = append(valid, model.NewTripoint(x, y, place.Z))
			}
		}
	}
	fallback := model.NewTripoint(rng(6, 17), rng(6, 17), place.Z)
	point := randomEntry(valid, fallback)
	tm.SpawnItem(point.X, point.Y, model.ItemPriestDiary)
	return tm.Save(ctx)
}

// startPlaceDepositBox recruits the giver and hides a deposit box next
// to metal walls in a bank, or an office tower as fallback.
func (mgr *Manager) startPlaceDepositBox(ctx context.Context, miss *model.Mission) error {
	npc, err := mgr.findNpc(miss.NpcID())
	if err != nil {
		return err
	}
	npc.SetAttitude(model.AttitudeFollow)

	site := mgr.omb.FindClosest(npc.OmtLocation(), overmap.TerBank, 0, false)
	if !site.IsValid() {
		site = mgr.omb.FindClosest(npc.OmtLocation(), overmap.TerOfficeTower, 0, false)
	}
	if !site.IsValid() {
		site = npc.OmtLocation()
		slog.Error("couldn't find a place for deposit box")
	}

	miss.SetTarget(site)
	mgr.omb.Reveal(site, 2)

	tm, err := mgr.loadMap(ctx, site)
	if err != nil {
		return err
	}

	var valid []model.Tripoint
	for x := int32(0); x < tinymap.Size; x++ {
		for y := int32(0); y < tinymap.Size; y++ {
			if tm.Ter(x, y) != model.TerFloor {
				continue
			}
		adjacent:
			for x2 := x - 1; x2 <= x+1; x2++ {
				for y2 := y - 1; y2 <= y+1; y2++ {
					if tm.Ter(x2, y2) == model.TerWallMetal {
						valid = append(valid, model.NewTripoint(x, y, site.Z))
						break adjacent
					}
				}
			}
		}
	}
	fallback := model.NewTripoint(rng(6, 17), rng(6, 17), site.Z)
	point := randomEntry(valid, fallback)
	tm.SpawnItem(point.X, point.Y, model.ItemSafeDepositBox)
	return tm.Save(ctx)
}

// startFindSafety targets the nearest cell with no recorded danger,
// spiraling outward from the player. When nothing within range is safe,
// the target is simply set far away.
func (mgr *Manager) startFindSafety(_ context.Context, miss *model.Mission) error {
	place := mgr.world.Player().OmtLocation()
	for radius := int32(0); radius <= 20; radius++ {
		for dist := -radius; dist <= radius; dist++ {
			offset := rng(0, 3) // randomizes the direction we check first
			for i := int32(0); i <= 3; i++ {
				check := place
				switch (offset + i) % 4 {
				case 0:
					check.X += dist
					check.Y -= radius
				case 1:
					check.X += dist
					check.Y += radius
				case 2:
					check.Y += dist
					check.X -= radius
				case 3:
					check.Y += dist
					check.X += radius
				}
				if mgr.omb.IsSafe(check) {
					miss.SetTarget(check)
					return nil
				}
			}
		}
	}

	// Couldn't find safety; so just set the target to far away.
	switch rng(0, 3) {
	case 0:
		miss.SetTarget(place.Add(-20, -20))
	case 1:
		miss.SetTarget(place.Add(-20, 20))
	case 2:
		miss.SetTarget(place.Add(20, -20))
	case 3:
		miss.SetTarget(place.Add(20, 20))
	}
	return nil
}

// startRecruitTracker recruits the giver and spawns a cowboy shopkeeper
// at a cabin with a join mission of his own.
func (mgr *Manager) startRecruitTracker(_ context.Context, miss *model.Mission) error {
	npc, err := mgr.findNpc(miss.NpcID())
	if err != nil {
		return err
	}
	npc.SetAttitude(model.AttitudeFollow)

	site := mgr.targetOmTer(overmap.TerCabin, 2, miss, false, 0)
	if !site.IsValid() {
		return fmt.Errorf("no cabin for tracker recruit")
	}
	miss.SetRecruitClass(model.ClassCowboy)

	recruit := npcact.SpawnRecruit(mgr.world, model.ClassCowboy, site, 11, 11)
	recruit.AddMission(mgr.Reserve(TypeJoinTracker, recruit.ObjectID()))
	return nil
}

// startRevealRefugeeCenter marks the evacuation center on the player's
// map, stamping the compound onto the overmap when none exists, and
// tries to reveal the road leading there.
func (mgr *Manager) startRevealRefugeeCenter(_ context.Context, miss *model.Mission) error {
	origin := mgr.world.Player().OmtLocation()

	params := NewTargetParams(overmap.TerEvacCenter)
	params.SearchOrigin = &origin
	params.Special = overmap.SpecialEvacCenter
	params.SearchRange = overmap.DefaultSearchRange * 5
	params.RevealRadius = 3

	player := mgr.world.Player()
	target, ok := mgr.AssignTarget(params, miss)
	if !ok {
		player.AddMessage("You don't know where the address could be...")
		return nil
	}

	if mgr.revealRoad(origin, target) {
		player.AddMessage("You mark the refugee center and the road that leads to it...")
	} else {
		player.AddMessage("You mark the refugee center, but you have no idea how to get there by road...")
	}
	return nil
}
