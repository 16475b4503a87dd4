package mission

import (
	"context"
	"testing"

	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
	"github.com/wastefall/wastefall/internal/tinymap"
)

// seedCity surrounds a city center with house cells so house searches
// have something to find.
func (f *fixture) seedCity(center model.Tripoint, size int32) {
	f.omb.AddCity(overmap.City{ID: 1, Name: "Concord", Pos: center, Size: size})
	for x := center.X - size; x <= center.X+size; x++ {
		for y := center.Y - size; y <= center.Y+size; y++ {
			f.omb.SetTile(model.NewTripoint(x, y, 0), overmap.TerHouse)
		}
	}
}

func findSpawn(spawns []model.MonsterSpawn, typ model.MonsterID) *model.MonsterSpawn {
	for i := range spawns {
		if spawns[i].Type == typ {
			return &spawns[i]
		}
	}
	return nil
}

func hasItem(items []tinymap.PlacedItem, id model.ItemID) bool {
	for _, it := range items {
		if it.Item.ID == id {
			return true
		}
	}
	return false
}

func countComputers(tm *tinymap.Map) int {
	n := 0
	for x := int32(0); x < tinymap.Size; x++ {
		for y := int32(0); y < tinymap.Size; y++ {
			if tm.ComputerAt(x, y) != nil {
				n++
			}
		}
	}
	return n
}

func TestStartJoin(t *testing.T) {
	f := newFixture()

	miss := f.reserve(TypeJoin)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if f.npc.Attitude() != model.AttitudeFollow {
		t.Errorf("attitude = %v, want follow", f.npc.Attitude())
	}
}

func TestStartJoinMissingNpc(t *testing.T) {
	f := newFixture()

	miss := f.mgr.Reserve(TypeJoin, 99999)
	if err := f.mgr.Start(context.Background(), miss); err == nil {
		t.Fatal("Start() with missing npc, want error")
	}
}

func TestStartInfectNpc(t *testing.T) {
	f := newFixture()
	f.npc.AddItem(model.NewItem(model.ItemAntibiotics))

	miss := f.reserve(TypeInfectNpc)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	if !f.npc.HasEffect(model.EffectInfection) {
		t.Error("npc not infected")
	}
	for _, it := range f.npc.Inventory() {
		if it.ID == model.ItemAntibiotics {
			t.Error("npc kept antibiotics")
		}
	}
	if !f.npc.IsGuarding() {
		t.Error("npc not guarding")
	}
}

func TestStartNeedDrugs(t *testing.T) {
	f := newFixture()
	f.npc.AddItem(model.NewItem(model.ItemAntibiotics))

	miss := f.reserve(TypeNeedDrugs)
	miss.SetItemID(model.ItemAntibiotics)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if len(f.npc.Inventory()) != 0 {
		t.Errorf("inventory = %v, want empty", f.npc.Inventory())
	}
	if !f.npc.IsGuarding() {
		t.Error("npc not guarding")
	}
}

func TestStartPlaceDog(t *testing.T) {
	f := newFixture()
	f.seedCity(model.NewTripoint(6, 6, 0), 2)

	miss := f.reserve(TypePlaceDog)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	if !f.world.Player().HasItem(model.ItemDogWhistle) {
		t.Error("player has no dog whistle")
	}
	target := miss.Target()
	if !target.IsValid() {
		t.Fatal("no target assigned")
	}
	if !f.omb.CheckTerType(overmap.TerHouse, target) {
		t.Errorf("target terrain = %v, want a house", f.omb.Ter(target))
	}
	if !f.omb.Seen(target) {
		t.Error("target not revealed")
	}

	spawn := findSpawn(f.window(t, target).Spawns(), model.MonDog)
	if spawn == nil {
		t.Fatal("no dog spawn recorded")
	}
	if !spawn.Friendly {
		t.Error("dog spawn is hostile")
	}
	if spawn.MissionUID != miss.UID() {
		t.Errorf("spawn mission uid = %d, want %d", spawn.MissionUID, miss.UID())
	}
}

func TestStartPlaceZombieMom(t *testing.T) {
	f := newFixture()
	f.seedCity(model.NewTripoint(6, 6, 0), 2)

	miss := f.reserve(TypePlaceZombieMom)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	spawn := findSpawn(f.window(t, miss.Target()).Spawns(), model.MonZombie)
	if spawn == nil {
		t.Fatal("no zombie spawn recorded")
	}
	if spawn.Name == "" {
		t.Error("zombie has no name")
	}
}

func TestStartPlaceJabberwock(t *testing.T) {
	f := newFixture()
	f.omb.SetTile(model.NewTripoint(8, 3, 0), overmap.TerForestThick)

	miss := f.reserve(TypePlaceJabberwock)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	target := miss.Target()
	if f.omb.Ter(target) != overmap.TerForestThick {
		t.Errorf("target terrain = %v, want thick forest", f.omb.Ter(target))
	}
	if findSpawn(f.window(t, target).Spawns(), model.MonJabberwock) == nil {
		t.Error("no jabberwock spawn recorded")
	}
}

func TestStartKillNightmares(t *testing.T) {
	f := newFixture()
	site := model.NewTripoint(4, 4, -2)
	f.omb.SetTile(site, overmap.TerNecropolis)

	miss := f.reserve(TypeKillNightmares)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if miss.Target() != site {
		t.Errorf("target = %+v, want %+v", miss.Target(), site)
	}
}

func TestStartKillHordeMasterLandmarkFallback(t *testing.T) {
	f := newFixture()
	// No towers, no school: the horde falls back to thick forest.
	site := model.NewTripoint(7, 2, 0)
	f.omb.SetTile(site, overmap.TerForestThick)

	miss := f.reserve(TypeKillHordeMaster)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	if f.npc.Attitude() != model.AttitudeFollow {
		t.Errorf("attitude = %v, want follow", f.npc.Attitude())
	}
	if miss.Target() != site {
		t.Errorf("target = %+v, want %+v", miss.Target(), site)
	}

	spawns := f.window(t, site).Spawns()
	master := findSpawn(spawns, model.MonZombieMaster)
	if master == nil {
		t.Fatal("no horde master spawn recorded")
	}
	if master.MissionUID != miss.UID() {
		t.Errorf("master mission uid = %d, want %d", master.MissionUID, miss.UID())
	}
	if findSpawn(spawns, model.MonZombieNecro) == nil {
		t.Error("no necromancer escort recorded")
	}
}

func TestStartKillHordeMasterNoLandmark(t *testing.T) {
	f := newFixture()

	miss := f.reserve(TypeKillHordeMaster)
	if err := f.mgr.Start(context.Background(), miss); err == nil {
		t.Fatal("Start() on an empty overmap, want error")
	}
}

func TestStartPlaceNpcSoftwareDoctor(t *testing.T) {
	f := newFixture()
	pharm := model.NewTripoint(3, 1, 0)
	f.omb.SetTile(pharm, overmap.TerPharmacy)

	miss := f.reserve(TypePlaceNpcSoftware)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	if !f.world.Player().HasItem(model.ItemUSBDrive) {
		t.Error("player has no usb drive")
	}
	if miss.ItemID() != model.ItemSoftwareMedical {
		t.Errorf("mission item = %v, want medical software", miss.ItemID())
	}
	if miss.FollowUp() != TypeGetZombieBlood {
		t.Errorf("follow-up = %v, want zombie blood", miss.FollowUp())
	}
	if miss.Target() != pharm {
		t.Errorf("target = %+v, want the pharmacy", miss.Target())
	}
	if countComputers(f.window(t, pharm)) != 1 {
		t.Error("no terminal placed in the pharmacy")
	}
}

func TestStartPlaceNpcSoftwareHacker(t *testing.T) {
	f := newFixture()
	f.seedCity(model.NewTripoint(6, 6, 0), 2)

	hacker := model.NewNpc(f.world.NextObjectID(), "DarkWyrm", model.ClassHacker)
	hacker.SpawnAt(model.NewTripoint(0, 0, 0), 6, 6)
	f.world.InsertNpc(hacker)

	miss := f.mgr.Reserve(TypePlaceNpcSoftware, hacker.ObjectID())
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if miss.ItemID() != model.ItemSoftwareHacking {
		t.Errorf("mission item = %v, want hacking software", miss.ItemID())
	}
	if miss.FollowUp() != "" {
		t.Errorf("follow-up = %v, want none", miss.FollowUp())
	}
}

func TestStartPlacePriestDiary(t *testing.T) {
	f := newFixture()
	f.seedCity(model.NewTripoint(6, 6, 0), 2)

	miss := f.reserve(TypePlacePriestDiary)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if !hasItem(f.window(t, miss.Target()).Items(), model.ItemPriestDiary) {
		t.Error("diary not placed")
	}
}

func TestStartPlaceDepositBox(t *testing.T) {
	f := newFixture()
	bank := model.NewTripoint(2, 2, 0)
	f.omb.SetTile(bank, overmap.TerBank)

	// Give the vault a floor tile beside a metal wall.
	vault := f.window(t, bank)
	vault.SetTer(10, 10, model.TerFloor)
	vault.SetTer(10, 9, model.TerWallMetal)
	if err := vault.Save(context.Background()); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	miss := f.reserve(TypePlaceDepositBox)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	if f.npc.Attitude() != model.AttitudeFollow {
		t.Errorf("attitude = %v, want follow", f.npc.Attitude())
	}
	if miss.Target() != bank {
		t.Errorf("target = %+v, want the bank", miss.Target())
	}

	found := false
	for _, it := range f.window(t, bank).Items() {
		if it.Item.ID == model.ItemSafeDepositBox {
			found = true
			if it.X != 10 || it.Y != 10 {
				t.Errorf("box at (%d,%d), want the tile beside the vault wall", it.X, it.Y)
			}
		}
	}
	if !found {
		t.Error("deposit box not placed")
	}
}

func TestStartFindSafety(t *testing.T) {
	f := newFixture()

	miss := f.reserve(TypeFindSafety)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	// Nothing is dangerous, so the current cell qualifies.
	if got := miss.Target(); got != f.world.Player().OmtLocation() {
		t.Errorf("target = %+v, want the player position", got)
	}
}

func TestStartFindSafetyAvoidsDanger(t *testing.T) {
	f := newFixture()
	origin := f.world.Player().OmtLocation()
	f.omb.SetDanger(origin, true)

	miss := f.reserve(TypeFindSafety)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	target := miss.Target()
	if target == origin {
		t.Fatal("target is the dangerous cell")
	}
	if target.SquareDist(origin) != 1 {
		t.Errorf("target %+v at distance %d, want an adjacent cell", target, target.SquareDist(origin))
	}
}

func TestStartRecruitTracker(t *testing.T) {
	f := newFixture()
	cabin := model.NewTripoint(9, 0, 0)
	f.omb.SetTile(cabin, overmap.TerCabin)

	miss := f.reserve(TypeRecruitTracker)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	if miss.Target() != cabin {
		t.Errorf("target = %+v, want the cabin", miss.Target())
	}
	if miss.RecruitClass() != model.ClassCowboy {
		t.Errorf("recruit class = %v, want cowboy", miss.RecruitClass())
	}

	var recruit *model.Npc
	f.world.EachNpc(func(n *model.Npc) bool {
		if n.Class() == model.ClassCowboy {
			recruit = n
			return false
		}
		return true
	})
	if recruit == nil {
		t.Fatal("no cowboy spawned")
	}
	if recruit.OmtLocation() != cabin {
		t.Errorf("recruit at %+v, want the cabin", recruit.OmtLocation())
	}
	if recruit.Role() != model.RoleShopkeep {
		t.Errorf("recruit role = %v, want shopkeep", recruit.Role())
	}
	missions := recruit.Missions()
	if len(missions) != 1 || missions[0].TypeID() != TypeJoinTracker {
		t.Errorf("recruit missions = %v, want one join mission", missions)
	}
}

func TestStartRevealRefugeeCenter(t *testing.T) {
	f := newFixture()
	for x := int32(-3); x <= 3; x++ {
		for y := int32(-3); y <= 3; y++ {
			f.omb.SetTile(model.NewTripoint(x, y, 0), overmap.TerField)
		}
	}

	miss := f.reserve(TypeRevealRefugeeCtr)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	target := miss.Target()
	if !target.IsValid() {
		t.Fatal("no target assigned")
	}
	if f.omb.Ter(target) != overmap.TerEvacCenter {
		t.Errorf("target terrain = %v, want the evac center", f.omb.Ter(target))
	}
	if !f.omb.Seen(target) {
		t.Error("target not revealed")
	}
	if len(f.world.Player().Messages()) == 0 {
		t.Error("no message recorded")
	}
}
