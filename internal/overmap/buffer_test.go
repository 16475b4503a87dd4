package overmap

import (
	"testing"

	"github.com/wastefall/wastefall/internal/model"
)

func newTestBuffer() *Buffer {
	return NewBuffer(nil)
}

func TestTerrainID_IsType(t *testing.T) {
	tests := []struct {
		ter  TerrainID
		typ  TerrainID
		want bool
	}{
		{"house", "house", true},
		{"house_north", "house", true},
		{"house_base_north", "house", true},
		{"houseboat", "house", false},
		{"s_pharm", "house", false},
		{"road_ns", "road", true},
		{"", "house", false},
	}
	for _, tt := range tests {
		if got := tt.ter.IsType(tt.typ); got != tt.want {
			t.Errorf("%q.IsType(%q) = %v, want %v", tt.ter, tt.typ, got, tt.want)
		}
	}
}

func TestBuffer_FindClosest(t *testing.T) {
	b := newTestBuffer()
	origin := model.NewTripoint(0, 0, 0)

	b.SetTile(model.NewTripoint(5, 0, 0), "house_north")
	b.SetTile(model.NewTripoint(2, 2, 0), "house_south")
	b.SetTile(model.NewTripoint(1, 0, 0), "road_ns")
	b.SetTile(model.NewTripoint(3, 0, -1), "house_east") // wrong z

	got := b.FindClosest(origin, TerHouse, 10, false)
	if got != model.NewTripoint(2, 2, 0) {
		t.Errorf("FindClosest(house) = %+v, want (2,2,0)", got)
	}

	if got := b.FindClosest(origin, "bank", 10, false); got.IsValid() {
		t.Errorf("FindClosest(bank) = %+v, want invalid", got)
	}

	// Out of range.
	if got := b.FindClosest(origin, TerHouse, 1, false); got.IsValid() {
		t.Errorf("FindClosest(house, range 1) = %+v, want invalid", got)
	}
}

func TestBuffer_FindClosest_MustSee(t *testing.T) {
	b := newTestBuffer()
	origin := model.NewTripoint(0, 0, 0)
	near := model.NewTripoint(1, 1, 0)
	far := model.NewTripoint(4, 0, 0)
	b.SetTile(near, "house")
	b.SetTile(far, "house")

	if got := b.FindClosest(origin, TerHouse, 10, true); got.IsValid() {
		t.Errorf("unseen FindClosest = %+v, want invalid", got)
	}

	b.Reveal(far, 0)
	if got := b.FindClosest(origin, TerHouse, 10, true); got != far {
		t.Errorf("FindClosest after reveal = %+v, want %+v", got, far)
	}
}

func TestBuffer_FindRandom(t *testing.T) {
	b := newTestBuffer()
	origin := model.NewTripoint(0, 0, 0)
	members := map[model.Tripoint]bool{
		model.NewTripoint(2, 0, 0):  true,
		model.NewTripoint(-3, 1, 0): true,
		model.NewTripoint(0, 4, 0):  true,
	}
	for pos := range members {
		b.SetTile(pos, "forest_thick")
	}
	b.SetTile(model.NewTripoint(50, 50, 0), "forest_thick") // out of range

	for range 50 {
		got := b.FindRandom(origin, TerForestThick, 10, false)
		if !members[got] {
			t.Fatalf("FindRandom returned %+v, not an in-range member", got)
		}
	}
}

func TestBuffer_Reveal(t *testing.T) {
	b := newTestBuffer()
	center := model.NewTripoint(10, 10, 0)

	b.Reveal(center, 2)

	if !b.Seen(center) {
		t.Error("center not seen after Reveal")
	}
	if !b.Seen(model.NewTripoint(8, 12, 0)) {
		t.Error("corner of radius-2 square not seen")
	}
	if b.Seen(model.NewTripoint(7, 10, 0)) {
		t.Error("cell outside radius marked seen")
	}
}

func TestBuffer_ClosestCity(t *testing.T) {
	b := newTestBuffer()

	if b.ClosestCity(model.NewTripoint(0, 0, 0)).Valid() {
		t.Error("ClosestCity with no cities Valid() = true")
	}

	b.AddCity(City{ID: 1, Name: "Ashton", Pos: model.NewTripoint(10, 0, 0), Size: 4})
	b.AddCity(City{ID: 2, Name: "Millbrook", Pos: model.NewTripoint(40, 40, 0), Size: 8})

	ref := b.ClosestCity(model.NewTripoint(0, 0, 0)) // omt (0,0)
	if !ref.Valid() || ref.City.Name != "Ashton" {
		t.Errorf("ClosestCity = %+v, want Ashton", ref)
	}
}

func TestBuffer_SetTerAndCheck(t *testing.T) {
	b := newTestBuffer()
	pos := model.NewTripoint(3, 3, 0)
	b.SetTile(pos, "field")

	if b.CheckTerType(TerHouse, pos) {
		t.Error("CheckTerType(house) on field = true")
	}
	b.SetTer(pos, "house_north")
	if !b.CheckTerType(TerHouse, pos) {
		t.Error("CheckTerType(house) after SetTer = false")
	}
}

func TestBuffer_PlaceSpecial(t *testing.T) {
	b := newTestBuffer()
	origin := model.NewTripoint(0, 0, 0)

	// Replaceable ground everywhere near origin.
	for x := int32(-6); x <= 6; x++ {
		for y := int32(-6); y <= 6; y++ {
			b.SetTile(model.NewTripoint(x, y, 0), "field")
		}
	}

	if !b.PlaceSpecial(SpecialEvacCenter, origin, 10) {
		t.Fatal("PlaceSpecial on open field = false, want true")
	}
	if got := b.FindClosest(origin, TerEvacCenter, 10, false); !got.IsValid() {
		t.Error("evac center terrain not found after PlaceSpecial")
	}
}

func TestBuffer_PlaceSpecial_NoRoom(t *testing.T) {
	b := newTestBuffer()
	origin := model.NewTripoint(0, 0, 0)
	for x := int32(-3); x <= 3; x++ {
		for y := int32(-3); y <= 3; y++ {
			b.SetTile(model.NewTripoint(x, y, 0), "house")
		}
	}

	if b.PlaceSpecial(SpecialEvacCenter, origin, 2) {
		t.Error("PlaceSpecial over city = true, want false")
	}
}

func TestBuffer_IsSafe(t *testing.T) {
	b := newTestBuffer()
	pos := model.NewTripoint(5, 5, 0)

	if !b.IsSafe(pos) {
		t.Error("IsSafe = false with no danger recorded")
	}
	b.SetDanger(pos, true)
	if b.IsSafe(pos) {
		t.Error("IsSafe = true after SetDanger")
	}
	b.SetDanger(pos, false)
	if !b.IsSafe(pos) {
		t.Error("IsSafe = false after clearing danger")
	}
}
