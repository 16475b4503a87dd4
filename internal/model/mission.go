package model

import "sync"

// MissionTypeID identifies a mission type registered in the mission package.
type MissionTypeID string

// MissionStatus tracks the lifecycle of a mission instance.
type MissionStatus int32

const (
	MissionYetToStart MissionStatus = iota
	MissionInProgress
	MissionSuccess
	MissionFailure
)

// Mission is one accepted mission instance. Start handlers mutate it:
// they attach the target coordinates and may set the reward item,
// the follow-up mission type, or the recruit class.
// Thread-safe: field access goes through the mutex because start
// handlers and the game loop may touch a mission concurrently.
type Mission struct {
	mu sync.RWMutex

	uid    int64
	typeID MissionTypeID
	npcID  uint32 // object ID of the NPC that gave the mission (0 if none)

	itemID       ItemID        // item the player must fetch (if any)
	followUp     MissionTypeID // next mission offered after completion
	recruitClass NpcClassID    // class of the NPC to recruit (if any)

	target Tripoint
	status MissionStatus
}

// NewMission creates a mission of the given type with no target assigned.
func NewMission(uid int64, typeID MissionTypeID, npcID uint32) *Mission {
	return &Mission{
		uid:    uid,
		typeID: typeID,
		npcID:  npcID,
		target: InvalidTripoint,
	}
}

// UID returns the unique mission instance ID.
func (m *Mission) UID() int64 { return m.uid }

// TypeID returns the mission type.
func (m *Mission) TypeID() MissionTypeID { return m.typeID }

// NpcID returns the object ID of the mission giver NPC.
func (m *Mission) NpcID() uint32 { return m.npcID }

// Target returns the assigned target position (InvalidTripoint if unset).
func (m *Mission) Target() Tripoint {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.target
}

// SetTarget attaches the target coordinates to the mission.
func (m *Mission) SetTarget(t Tripoint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.target = t
}

// HasTarget reports whether a valid target has been assigned.
func (m *Mission) HasTarget() bool {
	return m.Target().IsValid()
}

// ItemID returns the mission item (empty if none).
func (m *Mission) ItemID() ItemID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.itemID
}

// SetItemID sets the item the player must retrieve.
func (m *Mission) SetItemID(id ItemID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.itemID = id
}

// FollowUp returns the follow-up mission type (empty if none).
func (m *Mission) FollowUp() MissionTypeID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.followUp
}

// SetFollowUp sets the mission type offered after this one completes.
func (m *Mission) SetFollowUp(id MissionTypeID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.followUp = id
}

// RecruitClass returns the NPC class to recruit (empty if none).
func (m *Mission) RecruitClass() NpcClassID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.recruitClass
}

// SetRecruitClass sets the NPC class the mission recruits.
func (m *Mission) SetRecruitClass(c NpcClassID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recruitClass = c
}

// Status returns the mission status.
func (m *Mission) Status() MissionStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// SetStatus updates the mission status.
func (m *Mission) SetStatus(s MissionStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = s
}
