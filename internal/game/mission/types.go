// Package mission implements mission initialization: when a mission is
// accepted, the registered start handler picks concrete world locations,
// mutates saved map chunks, and attaches the target coordinates to the
// mission. Handlers consume the overmap buffer, the tinymap chunk
// editor, and the world actor registry.
package mission

import "github.com/wastefall/wastefall/internal/model"

// Mission types with registered start handlers.
const (
	TypeStandard         model.MissionTypeID = "STANDARD"
	TypeJoin             model.MissionTypeID = "JOIN"
	TypeInfectNpc        model.MissionTypeID = "INFECT_NPC"
	TypeNeedDrugs        model.MissionTypeID = "NEED_DRUGS"
	TypePlaceDog         model.MissionTypeID = "PLACE_DOG"
	TypePlaceZombieMom   model.MissionTypeID = "PLACE_ZOMBIE_MOM"
	TypePlaceJabberwock  model.MissionTypeID = "PLACE_JABBERWOCK"
	TypeKillNightmares   model.MissionTypeID = "KILL_20_NIGHTMARES"
	TypeKillHordeMaster  model.MissionTypeID = "KILL_HORDE_MASTER"
	TypePlaceNpcSoftware model.MissionTypeID = "PLACE_NPC_SOFTWARE"
	TypePlacePriestDiary model.MissionTypeID = "PLACE_PRIEST_DIARY"
	TypePlaceDepositBox  model.MissionTypeID = "PLACE_DEPOSIT_BOX"
	TypeFindSafety       model.MissionTypeID = "FIND_SAFETY"
	TypeRecruitTracker   model.MissionTypeID = "RECRUIT_TRACKER"
	TypePlaceBook        model.MissionTypeID = "PLACE_BOOK"
	TypeRevealRefugeeCtr model.MissionTypeID = "REVEAL_REFUGEE_CENTER"
	TypeCreateLabConsole model.MissionTypeID = "CREATE_LAB_CONSOLE"
	TypeCreateHiddenLab  model.MissionTypeID = "CREATE_HIDDEN_LAB_CONSOLE"
	TypeCreateIceLab     model.MissionTypeID = "CREATE_ICE_LAB_CONSOLE"
	TypeRevealLabTrain   model.MissionTypeID = "REVEAL_LAB_TRAIN_DEPOT"

	TypeRanchNurse1 model.MissionTypeID = "RANCH_NURSE_1"
	TypeRanchNurse2 model.MissionTypeID = "RANCH_NURSE_2"
	TypeRanchNurse3 model.MissionTypeID = "RANCH_NURSE_3"
	TypeRanchNurse4 model.MissionTypeID = "RANCH_NURSE_4"
	TypeRanchNurse5 model.MissionTypeID = "RANCH_NURSE_5"
	TypeRanchNurse6 model.MissionTypeID = "RANCH_NURSE_6"
	TypeRanchNurse7 model.MissionTypeID = "RANCH_NURSE_7"
	TypeRanchNurse8 model.MissionTypeID = "RANCH_NURSE_8"
	TypeRanchNurse9 model.MissionTypeID = "RANCH_NURSE_9"

	TypeRanchScavenger1 model.MissionTypeID = "RANCH_SCAVENGER_1"
	TypeRanchScavenger2 model.MissionTypeID = "RANCH_SCAVENGER_2"
	TypeRanchScavenger3 model.MissionTypeID = "RANCH_SCAVENGER_3"

	// Follow-up types handed out by other handlers.
	TypeGetZombieBlood model.MissionTypeID = "GET_ZOMBIE_BLOOD_ANAL"
	TypeJoinTracker    model.MissionTypeID = "JOIN_TRACKER"
)
