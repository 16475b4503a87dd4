package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wastefall/wastefall/internal/overmap"
)

// OvermapRepository persists overmap tiles and the city index.
type OvermapRepository struct {
	db *pgxpool.Pool
}

// NewOvermapRepository creates a new OvermapRepository.
func NewOvermapRepository(db *pgxpool.Pool) *OvermapRepository {
	return &OvermapRepository{db: db}
}

// LoadTiles loads every persisted overmap cell.
func (r *OvermapRepository) LoadTiles(ctx context.Context) ([]overmap.TileRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT x, y, z, ter, seen, danger FROM overmap_tiles`)
	if err != nil {
		return nil, fmt.Errorf("querying overmap tiles: %w", err)
	}
	defer rows.Close()

	tiles := make([]overmap.TileRecord, 0, 4096)
	for rows.Next() {
		var t overmap.TileRecord
		if err := rows.Scan(&t.Pos.X, &t.Pos.Y, &t.Pos.Z, &t.Ter, &t.Seen, &t.Danger); err != nil {
			return nil, fmt.Errorf("scanning overmap tile row: %w", err)
		}
		tiles = append(tiles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overmap tile rows: %w", err)
	}
	return tiles, nil
}

// LoadCities loads the city index.
func (r *OvermapRepository) LoadCities(ctx context.Context) ([]overmap.City, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, x, y, z, size FROM cities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying cities: %w", err)
	}
	defer rows.Close()

	var cities []overmap.City
	for rows.Next() {
		var c overmap.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Pos.X, &c.Pos.Y, &c.Pos.Z, &c.Size); err != nil {
			return nil, fmt.Errorf("scanning city row: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating city rows: %w", err)
	}
	return cities, nil
}

// SaveTiles upserts the given tiles in one batch.
func (r *OvermapRepository) SaveTiles(ctx context.Context, tiles []overmap.TileRecord) error {
	if len(tiles) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, t := range tiles {
		batch.Queue(
			`INSERT INTO overmap_tiles (x, y, z, ter, seen, danger)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (x, y, z) DO UPDATE
			 SET ter = EXCLUDED.ter, seen = EXCLUDED.seen, danger = EXCLUDED.danger`,
			t.Pos.X, t.Pos.Y, t.Pos.Z, t.Ter, t.Seen, t.Danger,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range tiles {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upserting overmap tiles: %w", err)
		}
	}
	return nil
}

// SaveCity inserts a city and returns its assigned ID.
func (r *OvermapRepository) SaveCity(ctx context.Context, c overmap.City) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO cities (name, x, y, z, size) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		c.Name, c.Pos.X, c.Pos.Y, c.Pos.Z, c.Size,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting city %q: %w", c.Name, err)
	}
	return id, nil
}

var _ overmap.Repository = (*OvermapRepository)(nil)
