package npcact

import (
	"testing"

	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/world"
)

func TestInfect(t *testing.T) {
	npc := model.NewNpc(100000, "Sarah", model.ClassDoctor)
	npc.SpawnAt(model.Tripoint{X: 3, Y: 4}, 11, 11)
	npc.AddItem(model.NewItem(model.ItemAntibiotics))
	npc.AddItem(model.NewItem(model.ItemAntibiotics))
	npc.AddItem(model.NewItem(model.ItemBandages))

	Infect(npc)

	if !npc.HasEffect(model.EffectInfection) {
		t.Error("NPC should be infected")
	}
	for _, it := range npc.Inventory() {
		if it.ID == model.ItemAntibiotics {
			t.Error("antibiotics should have been removed")
		}
	}
	if len(npc.Inventory()) != 1 {
		t.Errorf("inventory should keep unrelated items, got %d", len(npc.Inventory()))
	}
	if !npc.IsGuarding() {
		t.Error("infected NPC should guard their position")
	}
}

func TestStripItem(t *testing.T) {
	npc := model.NewNpc(100001, "Marcus", model.ClassHacker)
	npc.AddItem(model.NewItem(model.ItemAspirin))
	npc.AddItem(model.NewItem(model.ItemAspirin))
	npc.AddItem(model.NewItem(model.ItemBandages))

	StripItem(npc, model.ItemAspirin)

	for _, it := range npc.Inventory() {
		if it.ID == model.ItemAspirin {
			t.Error("stripped item should be gone")
		}
	}
	if !npc.IsGuarding() {
		t.Error("stripped NPC should guard their position")
	}
}

func TestSpawnRecruit(t *testing.T) {
	w := world.New(model.NewPlayer(model.Tripoint{}))
	site := model.Tripoint{X: 7, Y: -2}

	recruit := SpawnRecruit(w, model.ClassCowboy, site, 11, 11)

	if recruit.Name() == "" {
		t.Error("recruit should get a name")
	}
	if recruit.Class() != model.ClassCowboy {
		t.Errorf("class = %q, want %q", recruit.Class(), model.ClassCowboy)
	}
	if recruit.OmtLocation() != site {
		t.Errorf("location = %v, want %v", recruit.OmtLocation(), site)
	}
	if w.FindNpc(recruit.ObjectID()) != recruit {
		t.Error("recruit should be registered in the world")
	}
	if recruit.Attitude() != model.AttitudeTalk {
		t.Errorf("attitude = %v, want talk", recruit.Attitude())
	}
	if recruit.Role() != model.RoleShopkeep {
		t.Errorf("role = %v, want shopkeep", recruit.Role())
	}
	if recruit.Personality().Aggression != -1 {
		t.Errorf("aggression = %d, want -1", recruit.Personality().Aggression)
	}
	if recruit.Opinion().Owed != 10 {
		t.Errorf("owed = %d, want 10", recruit.Opinion().Owed)
	}
}

func TestSpawnRecruitUniqueIDs(t *testing.T) {
	w := world.New(model.NewPlayer(model.Tripoint{}))
	a := SpawnRecruit(w, model.ClassCowboy, model.Tripoint{}, 5, 5)
	b := SpawnRecruit(w, model.ClassCowboy, model.Tripoint{}, 5, 5)
	if a.ObjectID() == b.ObjectID() {
		t.Error("recruits should get distinct object IDs")
	}
}
