package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wastefall/wastefall/internal/model"
	"github.com/wastefall/wastefall/internal/tinymap"
)

// SubmapRepository persists map chunks as compressed blobs, keyed by
// absolute submap position.
type SubmapRepository struct {
	db *pgxpool.Pool
}

// NewSubmapRepository creates a new SubmapRepository.
func NewSubmapRepository(db *pgxpool.Pool) *SubmapRepository {
	return &SubmapRepository{db: db}
}

// LoadSubmap returns the stored submap or nil when absent.
func (r *SubmapRepository) LoadSubmap(ctx context.Context, pos model.Tripoint) (*tinymap.Submap, error) {
	var blob []byte
	err := r.db.QueryRow(ctx,
		`SELECT blob FROM submaps WHERE x = $1 AND y = $2 AND z = $3`,
		pos.X, pos.Y, pos.Z,
	).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying submap %+v: %w", pos, err)
	}

	sm, err := tinymap.DecodeSubmap(blob)
	if err != nil {
		return nil, fmt.Errorf("decoding submap %+v: %w", pos, err)
	}
	return sm, nil
}

// SaveSubmap stores the submap, replacing any previous version.
func (r *SubmapRepository) SaveSubmap(ctx context.Context, pos model.Tripoint, sm *tinymap.Submap) error {
	blob, err := tinymap.EncodeSubmap(sm)
	if err != nil {
		return fmt.Errorf("encoding submap %+v: %w", pos, err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO submaps (x, y, z, blob) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (x, y, z) DO UPDATE SET blob = EXCLUDED.blob`,
		pos.X, pos.Y, pos.Z, blob,
	)
	if err != nil {
		return fmt.Errorf("upserting submap %+v: %w", pos, err)
	}
	return nil
}

var _ tinymap.Repository = (*SubmapRepository)(nil)
