package model

// ItemID identifies an item type from the content catalog.
type ItemID string

// Items referenced by mission start handlers.
const (
	ItemDogWhistle      ItemID = "dog_whistle"
	ItemUSBDrive        ItemID = "usb_drive"
	ItemAntibiotics     ItemID = "antibiotics"
	ItemPriestDiary     ItemID = "priest_diary"
	ItemSafeDepositBox  ItemID = "safe_box"
	ItemBandages        ItemID = "bandages"
	ItemAspirin         ItemID = "aspirin"
	ItemFirstAidManual  ItemID = "manual_first_aid"
	ItemStorageDrum     ItemID = "30gal_drum"
	ItemWideWheel       ItemID = "wheel_wide"
	ItemV8Engine        ItemID = "v8_combustion"
	ItemHeavyDutyFrame  ItemID = "hdframe"
	ItemSoftwareHacking ItemID = "software_hacking"
	ItemSoftwareMedical ItemID = "software_medical"
	ItemSoftwareMath    ItemID = "software_math"
	ItemSoftwareUseless ItemID = "software_useless"
)

// ItemGroupID identifies a weighted item table used for bulk placement.
type ItemGroupID string

const (
	GroupCleaning  ItemGroupID = "cleaning"
	GroupSurgery   ItemGroupID = "surgery"
	GroupMechanics ItemGroupID = "mechanics"
	GroupHardware  ItemGroupID = "mischw"
)

// VehicleProtoID identifies a vehicle prototype.
type VehicleProtoID string

const (
	VehicleCarChassis VehicleProtoID = "car_chassis"
)

// Item is a single item instance with an optional count.
type Item struct {
	ID    ItemID
	Count int32
}

// NewItem creates an item with count 1.
func NewItem(id ItemID) Item {
	return Item{ID: id, Count: 1}
}
