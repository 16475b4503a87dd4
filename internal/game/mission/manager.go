package mission

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
	"github.com/wastefall/wastefall/internal/tinymap"
	"github.com/wastefall/wastefall/internal/world"
)

// Repository persists mission instances. Implemented in the db package.
// A nil repository keeps missions in memory only.
type Repository interface {
	Save(ctx context.Context, m *model.Mission) error
}

// StartFunc runs when a mission of its type is accepted.
type StartFunc func(ctx context.Context, miss *model.Mission) error

// Manager creates missions and dispatches their start handlers.
// Thread-safe.
type Manager struct {
	omb   *overmap.Buffer
	maps  tinymap.Repository
	world *world.World
	repo  Repository

	uidCounter  atomic.Int64
	searchRange atomic.Int32 // default target search range, 0 = overmap default

	mu       sync.RWMutex
	starts   map[model.MissionTypeID]StartFunc
	missions map[int64]*model.Mission
}

// NewManager creates a mission manager with all built-in start handlers
// registered. repo may be nil.
func NewManager(omb *overmap.Buffer, maps tinymap.Repository, w *world.World, repo Repository) *Manager {
	m := &Manager{
		omb:      omb,
		maps:     maps,
		world:    w,
		repo:     repo,
		starts:   make(map[model.MissionTypeID]StartFunc, 48),
		missions: make(map[int64]*model.Mission, 64),
	}
	m.registerBuiltins()
	return m
}

// SetSearchRange overrides the default target search range used by
// handlers that don't pick their own.
func (mgr *Manager) SetSearchRange(r int32) {
	mgr.searchRange.Store(r)
}

// Register binds a start handler to a mission type.
func (mgr *Manager) Register(typeID model.MissionTypeID, fn StartFunc) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.starts[typeID] = fn
}

// Reserve creates a mission of the given type without starting it.
// Used for follow-ups and missions attached to freshly spawned NPCs.
func (mgr *Manager) Reserve(typeID model.MissionTypeID, npcID uint32) *model.Mission {
	miss := model.NewMission(mgr.uidCounter.Add(1), typeID, npcID)
	mgr.mu.Lock()
	mgr.missions[miss.UID()] = miss
	mgr.mu.Unlock()
	return miss
}

// Restore re-registers persisted missions after a server restart and
// moves the UID counter past the highest restored UID.
func (mgr *Manager) Restore(missions []*model.Mission) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for _, miss := range missions {
		mgr.missions[miss.UID()] = miss
		for {
			cur := mgr.uidCounter.Load()
			if cur >= miss.UID() || mgr.uidCounter.CompareAndSwap(cur, miss.UID()) {
				break
			}
		}
	}
}

// Get returns a mission by UID, or nil.
func (mgr *Manager) Get(uid int64) *model.Mission {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	return mgr.missions[uid]
}

// Start runs the start handler for an accepted mission: it assigns the
// target, applies all world mutations, and marks the mission in
// progress.
func (mgr *Manager) Start(ctx context.Context, miss *model.Mission) error {
	mgr.mu.RLock()
	fn := mgr.starts[miss.TypeID()]
	mgr.mu.RUnlock()
	if fn == nil {
		return fmt.Errorf("mission type %q has no start handler", miss.TypeID())
	}

	if err := fn(ctx, miss); err != nil {
		return fmt.Errorf("starting mission %s (uid %d): %w", miss.TypeID(), miss.UID(), err)
	}
	miss.SetStatus(model.MissionInProgress)

	if mgr.repo != nil {
		if err := mgr.repo.Save(ctx, miss); err != nil {
			return fmt.Errorf("persisting mission %d: %w", miss.UID(), err)
		}
	}

	slog.Info("mission started",
		"uid", miss.UID(),
		"type", miss.TypeID(),
		"target", miss.Target())
	return nil
}

// Accept reserves and immediately starts a mission of the given type.
func (mgr *Manager) Accept(ctx context.Context, typeID model.MissionTypeID, npcID uint32) (*model.Mission, error) {
	miss := mgr.Reserve(typeID, npcID)
	if err := mgr.Start(ctx, miss); err != nil {
		return nil, err
	}
	return miss, nil
}

// loadMap opens a chunk editing window over the given overmap cell.
func (mgr *Manager) loadMap(ctx context.Context, omt model.Tripoint) (*tinymap.Map, error) {
	tm := tinymap.New(mgr.maps)
	if err := tm.Load(ctx, omt); err != nil {
		return nil, err
	}
	return tm, nil
}

// findNpc returns the mission giver, or an error matching the abort
// behavior handlers rely on.
func (mgr *Manager) findNpc(objectID uint32) (*model.Npc, error) {
	npc := mgr.world.FindNpc(objectID)
	if npc == nil {
		return nil, fmt.Errorf("mission NPC %d not found", objectID)
	}
	return npc, nil
}

func (mgr *Manager) registerBuiltins() {
	builtins := map[model.MissionTypeID]StartFunc{
		TypeStandard:         mgr.startStandard,
		TypeJoin:             mgr.startJoin,
		TypeInfectNpc:        mgr.startInfectNpc,
		TypeNeedDrugs:        mgr.startNeedDrugs,
		TypePlaceDog:         mgr.startPlaceDog,
		TypePlaceZombieMom:   mgr.startPlaceZombieMom,
		TypePlaceJabberwock:  mgr.startPlaceJabberwock,
		TypeKillNightmares:   mgr.startKillNightmares,
		TypeKillHordeMaster:  mgr.startKillHordeMaster,
		TypePlaceNpcSoftware: mgr.startPlaceNpcSoftware,
		TypePlacePriestDiary: mgr.startPlacePriestDiary,
		TypePlaceDepositBox:  mgr.startPlaceDepositBox,
		TypeFindSafety:       mgr.startFindSafety,
		TypeRecruitTracker:   mgr.startRecruitTracker,
		TypePlaceBook:        mgr.startStandard,
		TypeRevealRefugeeCtr: mgr.startRevealRefugeeCenter,
		TypeCreateLabConsole: mgr.startCreateLabConsole,
		TypeCreateHiddenLab:  mgr.startCreateHiddenLabConsole,
		TypeCreateIceLab:     mgr.startCreateIceLabConsole,
		TypeRevealLabTrain:   mgr.startRevealLabTrainDepot,

		TypeRanchNurse1: mgr.startRanchNurse1,
		TypeRanchNurse2: mgr.startRanchNurse2,
		TypeRanchNurse3: mgr.startRanchNurse3,
		TypeRanchNurse4: mgr.startRanchNurse4,
		TypeRanchNurse5: mgr.startRanchNurse5,
		TypeRanchNurse6: mgr.startRanchNurse6,
		TypeRanchNurse7: mgr.startRanchNurse7,
		TypeRanchNurse8: mgr.startRanchNurse8,
		TypeRanchNurse9: mgr.startRanchNurse9,

		TypeRanchScavenger1: mgr.startRanchScavenger1,
		TypeRanchScavenger2: mgr.startRanchScavenger2,
		TypeRanchScavenger3: mgr.startRanchScavenger3,

		// Follow-ups have no world mutations at start.
		TypeGetZombieBlood: mgr.startStandard,
		TypeJoinTracker:    mgr.startJoin,
	}
	for typeID, fn := range builtins {
		mgr.starts[typeID] = fn
	}
}
