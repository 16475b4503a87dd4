package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wastefall/wastefall/internal/model"
)

// MissionRepository persists accepted mission instances.
type MissionRepository struct {
	db *pgxpool.Pool
}

// NewMissionRepository creates a new MissionRepository.
func NewMissionRepository(db *pgxpool.Pool) *MissionRepository {
	return &MissionRepository{db: db}
}

// Save upserts the mission's current state.
func (r *MissionRepository) Save(ctx context.Context, m *model.Mission) error {
	target := m.Target()
	_, err := r.db.Exec(ctx,
		`INSERT INTO missions
		 (uid, type_id, npc_id, target_x, target_y, target_z, item_id, follow_up, recruit_class, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (uid) DO UPDATE SET
		 target_x = EXCLUDED.target_x, target_y = EXCLUDED.target_y, target_z = EXCLUDED.target_z,
		 item_id = EXCLUDED.item_id, follow_up = EXCLUDED.follow_up,
		 recruit_class = EXCLUDED.recruit_class, status = EXCLUDED.status`,
		m.UID(), m.TypeID(), int64(m.NpcID()),
		target.X, target.Y, target.Z,
		m.ItemID(), m.FollowUp(), m.RecruitClass(), int32(m.Status()),
	)
	if err != nil {
		return fmt.Errorf("upserting mission %d: %w", m.UID(), err)
	}
	return nil
}

// LoadAll restores every persisted mission.
func (r *MissionRepository) LoadAll(ctx context.Context) ([]*model.Mission, error) {
	rows, err := r.db.Query(ctx,
		`SELECT uid, type_id, npc_id, target_x, target_y, target_z,
		        item_id, follow_up, recruit_class, status
		 FROM missions ORDER BY uid`)
	if err != nil {
		return nil, fmt.Errorf("querying missions: %w", err)
	}
	defer rows.Close()

	var missions []*model.Mission
	for rows.Next() {
		var (
			uid                            int64
			typeID, itemID, followUp, recr string
			npcID                          int64
			target                         model.Tripoint
			status                         int32
		)
		if err := rows.Scan(&uid, &typeID, &npcID,
			&target.X, &target.Y, &target.Z,
			&itemID, &followUp, &recr, &status); err != nil {
			return nil, fmt.Errorf("scanning mission row: %w", err)
		}

		m := model.NewMission(uid, model.MissionTypeID(typeID), uint32(npcID))
		m.SetTarget(target)
		m.SetItemID(model.ItemID(itemID))
		m.SetFollowUp(model.MissionTypeID(followUp))
		m.SetRecruitClass(model.NpcClassID(recr))
		m.SetStatus(model.MissionStatus(status))
		missions = append(missions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mission rows: %w", err)
	}
	return missions, nil
}

// Delete removes a mission.
func (r *MissionRepository) Delete(ctx context.Context, uid int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM missions WHERE uid = $1`, uid); err != nil {
		return fmt.Errorf("deleting mission %d: %w", uid, err)
	}
	return nil
}
