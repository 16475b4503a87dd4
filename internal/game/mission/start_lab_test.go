package mission

import (
	"context"
	"testing"

	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
	"github.com/wastefall/wastefall/internal/tinymap"
)

func TestStartCreateLabConsole(t *testing.T) {
	f := newFixture()
	lab := model.NewTripoint(2, 0, -1)
	f.omb.SetTile(lab, overmap.TerLab)
	stairs := model.NewTripoint(2, 0, 0)
	f.omb.SetTile(stairs, overmap.TerLabStairs)

	miss := f.reserve(TypeCreateLabConsole)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	// All four terminals land in the only lab cell.
	tm := f.window(t, lab)
	if got := countComputers(tm); got != 4 {
		t.Errorf("terminals = %d, want 4", got)
	}
	found := false
	for x := int32(0); x < tinymap.Size && !found; x++ {
		for y := int32(0); y < tinymap.Size && !found; y++ {
			comp := tm.ComputerAt(x, y)
			if comp == nil {
				continue
			}
			found = true
			if comp.Name != "Workstation" {
				t.Errorf("terminal name = %q, want Workstation", comp.Name)
			}
			if comp.MissionUID != miss.UID() {
				t.Errorf("terminal mission uid = %d, want %d", comp.MissionUID, miss.UID())
			}
			if len(comp.Options) != 1 || comp.Options[0].Action != model.ActionDownloadSoftware {
				t.Errorf("terminal options = %v, want one download option", comp.Options)
			}
			if len(comp.Failures) != 3 {
				t.Errorf("terminal failures = %v, want alarm, damage, manhacks", comp.Failures)
			}
		}
	}

	if miss.Target() != stairs {
		t.Errorf("target = %+v, want the lab stairs", miss.Target())
	}
}

func TestStartCreateLabConsoleNoLab(t *testing.T) {
	f := newFixture()

	miss := f.reserve(TypeCreateLabConsole)
	if err := f.mgr.Start(context.Background(), miss); err == nil {
		t.Fatal("Start() without a lab, want error")
	}
}

func TestStartCreateHiddenLabConsole(t *testing.T) {
	f := newFixture()
	f.omb.SetTile(model.NewTripoint(1, 1, -1), overmap.TerBasementHiddenLabStairs)
	f.omb.SetTile(model.NewTripoint(1, 1, -2), overmap.TerLab)
	hidden := model.NewTripoint(2, 2, -1)
	f.omb.SetTile(hidden, overmap.TerHiddenLabStairs)
	f.omb.SetTile(model.NewTripoint(9, 9, 0), overmap.TerLabStairs)

	miss := f.reserve(TypeCreateHiddenLab)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if got := countComputers(f.window(t, model.NewTripoint(1, 1, -2))); got != 4 {
		t.Errorf("terminals on the lower level = %d, want 4", got)
	}
	// The hidden stairs are closer than the surface entrance, so the
	// target is the ground above them.
	if want := hidden.WithZ(0); miss.Target() != want {
		t.Errorf("target = %+v, want %+v", miss.Target(), want)
	}
}

func TestStartCreateIceLabConsole(t *testing.T) {
	f := newFixture()
	lab := model.NewTripoint(0, 3, -4)
	f.omb.SetTile(lab, overmap.TerIceLab)
	stairs := model.NewTripoint(0, 3, 0)
	f.omb.SetTile(stairs, overmap.TerLabStairs)

	miss := f.reserve(TypeCreateIceLab)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	if got := countComputers(f.window(t, lab)); got != 4 {
		t.Errorf("terminals = %d, want 4", got)
	}
}

func TestStartRevealLabTrainDepot(t *testing.T) {
	f := newFixture()
	depot := model.NewTripoint(3, 3, -4)
	f.omb.SetTile(depot, overmap.TerLabTrainDepot)
	f.omb.SetTile(model.NewTripoint(3, 3, 0), overmap.TerLabStairs)

	// The depot chunk ships with a working console.
	tm := f.window(t, depot)
	tm.SetTer(5, 7, model.TerConsole)
	if err := tm.Save(context.Background()); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	miss := f.reserve(TypeRevealLabTrain)
	if err := f.mgr.Start(context.Background(), miss); err != nil {
		t.Fatalf("Start() = %v", err)
	}

	comp := f.window(t, depot).ComputerAt(5, 7)
	if comp == nil {
		t.Fatal("no terminal on the depot console")
	}
	if comp.MissionUID != miss.UID() {
		t.Errorf("terminal mission uid = %d, want %d", comp.MissionUID, miss.UID())
	}
	if len(comp.Options) != 1 || comp.Options[0].Name != "Download Routing Software" {
		t.Errorf("terminal options = %v, want the routing download", comp.Options)
	}
}

func TestStartRevealLabTrainDepotNoConsole(t *testing.T) {
	f := newFixture()
	f.omb.SetTile(model.NewTripoint(3, 3, -4), overmap.TerLabTrainDepot)

	miss := f.reserve(TypeRevealLabTrain)
	if err := f.mgr.Start(context.Background(), miss); err == nil {
		t.Fatal("Start() with no console in the depot, want error")
	}
}
