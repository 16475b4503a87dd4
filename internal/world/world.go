// Package world tracks the live actors the mission layer interacts
// with: the player and the NPC registry.
package world

import (
	"sync"
	"sync/atomic"

	"github.com/wastefall/wastefall/internal/model"
)

// World holds the player and every active NPC, keyed by object ID.
// Thread-safe.
type World struct {
	player atomic.Pointer[model.Player]
	npcs   sync.Map // map[uint32]*model.Npc

	objectIDCounter atomic.Uint32
}

// New creates a world with the given player.
func New(player *model.Player) *World {
	w := &World{}
	w.player.Store(player)
	// NPCs allocate IDs above the player/reserved range.
	w.objectIDCounter.Store(100000)
	return w
}

// Player returns the player.
func (w *World) Player() *model.Player {
	return w.player.Load()
}

// FindNpc returns the NPC with the given object ID, or nil.
func (w *World) FindNpc(objectID uint32) *model.Npc {
	value, ok := w.npcs.Load(objectID)
	if !ok {
		return nil
	}
	return value.(*model.Npc)
}

// InsertNpc registers an NPC in the world.
func (w *World) InsertNpc(n *model.Npc) {
	w.npcs.Store(n.ObjectID(), n)
}

// RemoveNpc unregisters an NPC.
func (w *World) RemoveNpc(objectID uint32) {
	w.npcs.Delete(objectID)
}

// NextObjectID allocates a fresh NPC object ID.
func (w *World) NextObjectID() uint32 {
	return w.objectIDCounter.Add(1)
}

// RestoreNpcs registers previously persisted NPCs and advances the
// object ID counter past them so new NPCs never collide.
func (w *World) RestoreNpcs(npcs []*model.Npc) {
	for _, n := range npcs {
		w.npcs.Store(n.ObjectID(), n)
		for {
			cur := w.objectIDCounter.Load()
			if cur >= n.ObjectID() || w.objectIDCounter.CompareAndSwap(cur, n.ObjectID()) {
				break
			}
		}
	}
}

// EachNpc calls fn for every registered NPC until fn returns false.
func (w *World) EachNpc(fn func(*model.Npc) bool) {
	w.npcs.Range(func(_, value any) bool {
		return fn(value.(*model.Npc))
	})
}
