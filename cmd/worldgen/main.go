// Command worldgen seeds a demo overmap into the database: a field
// plain crossed by a road, one city with houses and shops, a ranch,
// and the lab network the deeper missions need.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/wastefall/wastefall/internal/config"
	"github.com/wastefall/wastefall/internal/db"
	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
)

const GameConfigPath = "config/gameserver.yaml"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	if err := run(context.Background()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := GameConfigPath
	if p := os.Getenv("WASTEFALL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	repo := db.NewOvermapRepository(database.Pool())
	omb := overmap.NewBuffer(repo)

	seedPlain(omb)
	seedCity(ctx, omb, repo)
	seedWilds(omb)
	seedLabs(omb)

	// SetTer marks tiles dirty, so a flush persists the whole map.
	if err := omb.Flush(ctx); err != nil {
		return fmt.Errorf("flushing overmap: %w", err)
	}
	slog.Info("world seeded")
	return nil
}

// seedPlain covers the starting area with fields and lays the main road.
func seedPlain(omb *overmap.Buffer) {
	for x := int32(-40); x <= 40; x++ {
		for y := int32(-40); y <= 40; y++ {
			omb.SetTer(model.NewTripoint(x, y, 0), overmap.TerField)
		}
	}
	for x := int32(-40); x <= 40; x++ {
		omb.SetTer(model.NewTripoint(x, 0, 0), overmap.TerRoad)
	}
	for y := int32(-40); y <= 40; y++ {
		omb.SetTer(model.NewTripoint(20, y, 0), overmap.TerRoad)
	}
}

// seedCity builds a small settlement east of the spawn.
func seedCity(ctx context.Context, omb *overmap.Buffer, repo *db.OvermapRepository) {
	center := model.NewTripoint(20, 8, 0)
	size := int32(4)

	for x := center.X - size; x <= center.X+size; x++ {
		for y := center.Y - size; y <= center.Y+size; y++ {
			pos := model.NewTripoint(x, y, 0)
			if omb.Ter(pos).IsRoad() {
				continue
			}
			omb.SetTer(pos, overmap.TerHouse)
		}
	}
	omb.SetTer(model.NewTripoint(18, 6, 0), overmap.TerPharmacy)
	omb.SetTer(model.NewTripoint(22, 6, 0), overmap.TerBank)
	omb.SetTer(model.NewTripoint(18, 10, 0), overmap.TerOfficeTower)
	omb.SetTer(model.NewTripoint(22, 10, 0), overmap.TerSchool)

	city := overmap.City{Name: "Concord", Pos: center, Size: size}
	id, err := repo.SaveCity(ctx, city)
	if err != nil {
		slog.Error("saving city", "err", err)
		return
	}
	city.ID = id
	omb.AddCity(city)
}

// seedWilds drops the forest, the cabin, and the ranch chunks.
func seedWilds(omb *overmap.Buffer) {
	for x := int32(-40); x <= -30; x++ {
		for y := int32(-40); y <= -20; y++ {
			omb.SetTer(model.NewTripoint(x, y, 0), overmap.TerForestThick)
		}
	}
	omb.SetTer(model.NewTripoint(-28, -15, 0), overmap.TerCabin)

	// Ranch chunks laid out the way the construction missions expect.
	omb.SetTer(model.NewTripoint(-10, 15, 0), "ranch_camp_48")
	omb.SetTer(model.NewTripoint(-9, 15, 0), "ranch_camp_49")
	omb.SetTer(model.NewTripoint(-8, 15, 0), "ranch_camp_50")
	omb.SetTer(model.NewTripoint(-9, 16, 0), "ranch_camp_59")
}

// seedLabs places the underground network.
func seedLabs(omb *overmap.Buffer) {
	stairs := model.NewTripoint(30, -20, 0)
	omb.SetTer(stairs, overmap.TerLabStairs)
	for x := int32(29); x <= 31; x++ {
		for y := int32(-21); y <= -19; y++ {
			omb.SetTer(model.NewTripoint(x, y, -1), overmap.TerLab)
		}
	}

	omb.SetTer(model.NewTripoint(-20, 25, -1), overmap.TerBasementHiddenLabStairs)
	omb.SetTer(model.NewTripoint(-20, 25, -2), overmap.TerLab)
	omb.SetTer(model.NewTripoint(-19, 25, -1), overmap.TerHiddenLabStairs)

	for x := int32(34); x <= 36; x++ {
		omb.SetTer(model.NewTripoint(x, -20, -4), overmap.TerIceLab)
	}
	omb.SetTer(model.NewTripoint(32, -20, -4), overmap.TerLabTrainDepot)

	omb.SetTer(model.NewTripoint(28, -24, -2), overmap.TerNecropolis)
}
