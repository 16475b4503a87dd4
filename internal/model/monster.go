package model

// MonsterID identifies a monster type from the content catalog.
type MonsterID string

// Monsters referenced by mission start handlers.
const (
	MonDog              MonsterID = "mon_dog"
	MonZombie           MonsterID = "mon_zombie"
	MonZombieBrute      MonsterID = "mon_zombie_brute"
	MonZombieDog        MonsterID = "mon_zombie_dog"
	MonZombieElectric   MonsterID = "mon_zombie_electric"
	MonZombieHulk       MonsterID = "mon_zombie_hulk"
	MonZombieMaster     MonsterID = "mon_zombie_master"
	MonZombieNecro      MonsterID = "mon_zombie_necro"
	MonJabberwock       MonsterID = "mon_jabberwock"
	MonCharredNightmare MonsterID = "mon_charred_nightmare"
)

// MonsterSpawn is one spawn record stored in a submap.
// A count above 1 spawns a pack at the same tile.
type MonsterSpawn struct {
	Type       MonsterID
	Count      int32
	PosX       int32  // tile position within the loaded chunk window
	PosY       int32
	Friendly   bool
	FactionID  int32  // -1 = default faction for the type
	MissionUID int64  // 0 = not bound to a mission
	Name       string // unique display name, empty for generic
}
