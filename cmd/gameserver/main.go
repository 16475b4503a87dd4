package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wastefall/wastefall/internal/config"
	"github.com/wastefall/wastefall/internal/db"
	"github.com/wastefall/wastefall/internal/game/mission"
	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/overmap"
	"github.com/wastefall/wastefall/internal/world"
)

const GameConfigPath = "config/gameserver.yaml"

// flushInterval is how often dirty overmap tiles are written back.
const flushInterval = 30 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := GameConfigPath
	if p := os.Getenv("WASTEFALL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("wastefall server starting",
		"log_level", cfg.LogLevel,
		"bind", cfg.BindAddress,
		"port", cfg.Port)

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// Create repositories
	overmapRepo := db.NewOvermapRepository(database.Pool())
	submapRepo := db.NewSubmapRepository(database.Pool())
	missionRepo := db.NewMissionRepository(database.Pool())
	npcRepo := db.NewNpcRepository(database.Pool())

	// Load the overmap
	omb := overmap.NewBuffer(overmapRepo)
	if err := omb.Load(ctx); err != nil {
		return fmt.Errorf("loading overmap: %w", err)
	}

	// World state: player at the configured spawn submap
	spawn := model.NewTripoint(cfg.World.SpawnX, cfg.World.SpawnY, 0)
	w := world.New(model.NewPlayer(spawn))
	npcs, err := npcRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("restoring npcs: %w", err)
	}
	w.RestoreNpcs(npcs)
	slog.Info("world initialized", "spawn", spawn, "npcs", len(npcs))

	// Mission manager with all built-in start handlers
	missions := mission.NewManager(omb, submapRepo, w, missionRepo)
	if cfg.World.TargetSearchRange > 0 {
		missions.SetSearchRange(cfg.World.TargetSearchRange)
	}
	restored, err := missionRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("restoring missions: %w", err)
	}
	missions.Restore(restored)
	slog.Info("missions restored", "count", len(restored))

	g, gctx := errgroup.WithContext(ctx)

	// Periodic overmap and NPC flush
	g.Go(func() error {
		ticker := time.NewTicker(flushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				// Final flush on shutdown runs off the canceled context.
				flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := omb.Flush(flushCtx); err != nil {
					slog.Error("final overmap flush failed", "err", err)
				}
				flushNpcs(flushCtx, w, npcRepo)
				return gctx.Err()
			case <-ticker.C:
				if err := omb.Flush(gctx); err != nil {
					slog.Error("overmap flush failed", "err", err)
				}
				flushNpcs(gctx, w, npcRepo)
			}
		}
	})

	err = g.Wait()
	if err != nil && err != context.Canceled {
		return err
	}
	slog.Info("server stopped")
	return nil
}

// flushNpcs writes every registered NPC back to the database. A failed
// save is logged and the rest still go through.
func flushNpcs(ctx context.Context, w *world.World, repo *db.NpcRepository) {
	w.EachNpc(func(n *model.Npc) bool {
		if err := repo.Save(ctx, n); err != nil {
			slog.Error("npc flush failed", "object_id", n.ObjectID(), "err", err)
		}
		return true
	})
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
