// Package npcact applies mission-driven mutations to NPCs: infection,
// inventory stripping, and recruit spawning. Start handlers call these
// so the NPC-side effects stay in one place.
package npcact

import (
	"github.com/wastefall/wastefall/internal/data"
	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/world"
)

// Infect gives the NPC a permanent infection, strips their antibiotics,
// and pins them in place so the player can find them again.
func Infect(npc *model.Npc) {
	npc.AddEffect(model.Effect{ID: model.EffectInfection, Intensity: 1, Permanent: true})
	npc.RemoveItemsWith(func(it model.Item) bool {
		return it.ID == model.ItemAntibiotics
	})
	npc.GuardCurrentPos()
}

// StripItem removes every item of the given type from the NPC and pins
// them in place.
func StripItem(npc *model.Npc, id model.ItemID) {
	npc.RemoveItemsWith(func(it model.Item) bool {
		return it.ID == id
	})
	npc.GuardCurrentPos()
}

// SpawnRecruit creates a randomly named NPC of the class at the site
// and registers them in the world: approachable, running a shop, a
// little less aggressive than average, and feeling slightly indebted.
func SpawnRecruit(w *world.World, class model.NpcClassID, site model.Tripoint, posX, posY int32) *model.Npc {
	recruit := model.NewNpc(w.NextObjectID(), data.RandomNpcName(), class)
	recruit.SpawnAt(site, posX, posY)
	w.InsertNpc(recruit)

	recruit.SetAttitude(model.AttitudeTalk)
	recruit.SetRole(model.RoleShopkeep)

	personality := recruit.Personality()
	personality.Aggression--
	recruit.SetPersonality(personality)

	opinion := recruit.Opinion()
	opinion.Owed = 10
	recruit.SetOpinion(opinion)

	return recruit
}
