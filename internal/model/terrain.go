package model

// TerrainID identifies a map tile terrain type.
type TerrainID string

// Terrain referenced by mission start handlers.
const (
	TerNull          TerrainID = ""
	TerFloor         TerrainID = "t_floor"
	TerDirt          TerrainID = "t_dirt"
	TerDirtFloor     TerrainID = "t_dirtfloor"
	TerConsole       TerrainID = "t_console"
	TerConsoleBroken TerrainID = "t_console_broken"
	TerWallMetal     TerrainID = "t_wall_metal"
	TerWallHalf      TerrainID = "t_wall_half"
	TerWallWood      TerrainID = "t_wall_wood"
	TerWindowFrame   TerrainID = "t_window_frame"
	TerWindowBoarded TerrainID = "t_window_boarded_noglass"
	TerDoorFrame     TerrainID = "t_door_frame"
	TerDoorClosed    TerrainID = "t_door_c"
	TerDoorLocked    TerrainID = "t_door_locked"
	TerChainFence    TerrainID = "t_chainfence"
	TerChainGate     TerrainID = "t_chaingate_l"
	TerMachineLight  TerrainID = "t_machinery_light"
)

// HasWallFlag reports whether the terrain blocks movement as a wall.
func (t TerrainID) HasWallFlag() bool {
	switch t {
	case TerWallMetal, TerWallHalf, TerWallWood:
		return true
	}
	return false
}

// FurnitureID identifies a furniture type placed on top of terrain.
type FurnitureID string

const (
	FurnNull          FurnitureID = ""
	FurnBed           FurnitureID = "f_bed"
	FurnMakeshiftBed  FurnitureID = "f_makeshift_bed"
	FurnDresser       FurnitureID = "f_dresser"
	FurnIndoorPlant   FurnitureID = "f_indoor_plant"
	FurnCupboard      FurnitureID = "f_cupboard"
	FurnRack          FurnitureID = "f_rack"
	FurnCounter       FurnitureID = "f_counter"
	FurnFridge        FurnitureID = "f_fridge"
	FurnWasher        FurnitureID = "f_washer"
	FurnWoodStove     FurnitureID = "f_woodstove"
	FurnArcadeMachine FurnitureID = "f_arcade_machine"
)
