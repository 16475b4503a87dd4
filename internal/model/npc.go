package model

import "sync"

// NpcClassID identifies an NPC archetype.
type NpcClassID string

const (
	ClassNone      NpcClassID = ""
	ClassHacker    NpcClassID = "NC_HACKER"
	ClassDoctor    NpcClassID = "NC_DOCTOR"
	ClassScientist NpcClassID = "NC_SCIENTIST"
	ClassCowboy    NpcClassID = "NC_COWBOY"
)

// NpcAttitude is the NPC's stance toward the player.
type NpcAttitude int32

const (
	AttitudeNull NpcAttitude = iota
	AttitudeTalk
	AttitudeFollow
)

// NpcRole is the NPC's long-term occupation.
type NpcRole int32

const (
	RoleNull NpcRole = iota
	RoleShopkeep
	RoleGuard
)

// EffectID identifies a status effect on a creature.
type EffectID string

const (
	EffectInfection EffectID = "infection"
)

// Effect is an active status effect instance.
type Effect struct {
	ID        EffectID
	Intensity int32
	Permanent bool
}

// Personality holds the behavioral knobs of an NPC.
type Personality struct {
	Aggression int8
	Bravery    int8
	Collector  int8
	Altruism   int8
}

// Opinion is what the NPC thinks of the player.
type Opinion struct {
	Trust int32
	Fear  int32
	Value int32
	Anger int32
	Owed  int32
}

// Npc is a non-player character. Mission start handlers mutate NPCs:
// change attitude, add effects, strip items, pin them in place, and
// hand out reserved missions.
// Thread-safe for the mutations the mission layer performs.
type Npc struct {
	mu sync.RWMutex

	objectID uint32
	name     string
	class    NpcClassID

	attitude    NpcAttitude
	role        NpcRole
	personality Personality
	opinion     Opinion

	omtLocation Tripoint // overmap terrain cell the NPC occupies
	posX        int32    // precise tile within the chunk window
	posY        int32

	guardPos  bool // stay at current position
	effects   map[EffectID]Effect
	inventory []Item
	missions  []*Mission // missions this NPC offers
}

// NewNpc creates an NPC with the given identity.
func NewNpc(objectID uint32, name string, class NpcClassID) *Npc {
	return &Npc{
		objectID: objectID,
		name:     name,
		class:    class,
		effects:  make(map[EffectID]Effect, 2),
	}
}

// ObjectID returns the NPC's world object ID.
func (n *Npc) ObjectID() uint32 { return n.objectID }

// Name returns the NPC's display name.
func (n *Npc) Name() string { return n.name }

// Class returns the NPC's archetype.
func (n *Npc) Class() NpcClassID { return n.class }

// Attitude returns the NPC's stance toward the player.
func (n *Npc) Attitude() NpcAttitude {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.attitude
}

// SetAttitude updates the NPC's stance toward the player.
func (n *Npc) SetAttitude(a NpcAttitude) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.attitude = a
}

// Role returns the NPC's occupation.
func (n *Npc) Role() NpcRole {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.role
}

// SetRole updates the NPC's occupation.
func (n *Npc) SetRole(r NpcRole) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.role = r
}

// Personality returns the NPC's behavioral knobs.
func (n *Npc) Personality() Personality {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.personality
}

// SetPersonality replaces the NPC's behavioral knobs.
func (n *Npc) SetPersonality(p Personality) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.personality = p
}

// Opinion returns what the NPC thinks of the player.
func (n *Npc) Opinion() Opinion {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.opinion
}

// SetOpinion replaces the NPC's opinion of the player.
func (n *Npc) SetOpinion(o Opinion) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.opinion = o
}

// OmtLocation returns the overmap terrain cell the NPC occupies.
func (n *Npc) OmtLocation() Tripoint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.omtLocation
}

// SpawnAt places the NPC at a precise tile within an overmap terrain cell.
func (n *Npc) SpawnAt(omt Tripoint, posX, posY int32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.omtLocation = omt
	n.posX = posX
	n.posY = posY
}

// Pos returns the NPC's tile position within its chunk window.
func (n *Npc) Pos() (int32, int32) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.posX, n.posY
}

// GuardCurrentPos pins the NPC at its current position.
func (n *Npc) GuardCurrentPos() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.guardPos = true
}

// IsGuarding reports whether the NPC is pinned in place.
func (n *Npc) IsGuarding() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.guardPos
}

// AddEffect applies a status effect, replacing an existing one of the same type.
func (n *Npc) AddEffect(e Effect) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.effects[e.ID] = e
}

// HasEffect reports whether the effect is active.
func (n *Npc) HasEffect(id EffectID) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.effects[id]
	return ok
}

// Effects returns a copy of the NPC's active status effects.
func (n *Npc) Effects() []Effect {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Effect, 0, len(n.effects))
	for _, e := range n.effects {
		out = append(out, e)
	}
	return out
}

// AddItem puts an item into the NPC's inventory.
func (n *Npc) AddItem(it Item) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inventory = append(n.inventory, it)
}

// RemoveItemsWith removes every inventory item matching the predicate
// and returns how many were removed.
func (n *Npc) RemoveItemsWith(match func(Item) bool) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	kept := n.inventory[:0]
	removed := 0
	for _, it := range n.inventory {
		if match(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	n.inventory = kept
	return removed
}

// Inventory returns a copy of the NPC's items.
func (n *Npc) Inventory() []Item {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Item, len(n.inventory))
	copy(out, n.inventory)
	return out
}

// AddMission attaches a mission this NPC offers.
func (n *Npc) AddMission(m *Mission) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.missions = append(n.missions, m)
}

// Missions returns the missions this NPC offers.
func (n *Npc) Missions() []*Mission {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Mission, len(n.missions))
	copy(out, n.missions)
	return out
}
