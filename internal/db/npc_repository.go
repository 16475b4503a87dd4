package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wastefall/wastefall/internal/model"
)

// NpcRepository persists the NPC registry. Scalar state lives in
// columns; effects and inventory are stored as JSON documents since
// the mission layer only ever reads them back whole.
type NpcRepository struct {
	db *pgxpool.Pool
}

// NewNpcRepository creates a new NpcRepository.
func NewNpcRepository(db *pgxpool.Pool) *NpcRepository {
	return &NpcRepository{db: db}
}

// Save upserts the NPC's current state.
func (r *NpcRepository) Save(ctx context.Context, n *model.Npc) error {
	effects, err := json.Marshal(n.Effects())
	if err != nil {
		return fmt.Errorf("encoding effects for npc %d: %w", n.ObjectID(), err)
	}
	inventory, err := json.Marshal(n.Inventory())
	if err != nil {
		return fmt.Errorf("encoding inventory for npc %d: %w", n.ObjectID(), err)
	}

	omt := n.OmtLocation()
	posX, posY := n.Pos()
	personality := n.Personality()
	opinion := n.Opinion()

	_, err = r.db.Exec(ctx,
		`INSERT INTO npcs
		 (object_id, name, class, attitude, role,
		  omt_x, omt_y, omt_z, pos_x, pos_y, guarding,
		  aggression, bravery, collector, altruism,
		  trust, fear, value, anger, owed,
		  effects, inventory)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		         $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		 ON CONFLICT (object_id) DO UPDATE SET
		 attitude = EXCLUDED.attitude, role = EXCLUDED.role,
		 omt_x = EXCLUDED.omt_x, omt_y = EXCLUDED.omt_y, omt_z = EXCLUDED.omt_z,
		 pos_x = EXCLUDED.pos_x, pos_y = EXCLUDED.pos_y, guarding = EXCLUDED.guarding,
		 aggression = EXCLUDED.aggression, bravery = EXCLUDED.bravery,
		 collector = EXCLUDED.collector, altruism = EXCLUDED.altruism,
		 trust = EXCLUDED.trust, fear = EXCLUDED.fear, value = EXCLUDED.value,
		 anger = EXCLUDED.anger, owed = EXCLUDED.owed,
		 effects = EXCLUDED.effects, inventory = EXCLUDED.inventory`,
		int64(n.ObjectID()), n.Name(), n.Class(), int32(n.Attitude()), int32(n.Role()),
		omt.X, omt.Y, omt.Z, posX, posY, n.IsGuarding(),
		int32(personality.Aggression), int32(personality.Bravery),
		int32(personality.Collector), int32(personality.Altruism),
		opinion.Trust, opinion.Fear, opinion.Value, opinion.Anger, opinion.Owed,
		effects, inventory,
	)
	if err != nil {
		return fmt.Errorf("upserting npc %d: %w", n.ObjectID(), err)
	}
	return nil
}

// LoadAll restores every persisted NPC.
func (r *NpcRepository) LoadAll(ctx context.Context) ([]*model.Npc, error) {
	rows, err := r.db.Query(ctx,
		`SELECT object_id, name, class, attitude, role,
		        omt_x, omt_y, omt_z, pos_x, pos_y, guarding,
		        aggression, bravery, collector, altruism,
		        trust, fear, value, anger, owed,
		        effects, inventory
		 FROM npcs ORDER BY object_id`)
	if err != nil {
		return nil, fmt.Errorf("querying npcs: %w", err)
	}
	defer rows.Close()

	var npcs []*model.Npc
	for rows.Next() {
		var (
			objectID                              int64
			name, class                           string
			attitude, role                        int32
			omt                                   model.Tripoint
			posX, posY                            int32
			guarding                              bool
			aggression, bravery, collector, altru int32
			personality                           model.Personality
			opinion                               model.Opinion
			effectsRaw, inventoryRaw              []byte
		)
		if err := rows.Scan(&objectID, &name, &class, &attitude, &role,
			&omt.X, &omt.Y, &omt.Z, &posX, &posY, &guarding,
			&aggression, &bravery, &collector, &altru,
			&opinion.Trust, &opinion.Fear, &opinion.Value, &opinion.Anger, &opinion.Owed,
			&effectsRaw, &inventoryRaw); err != nil {
			return nil, fmt.Errorf("scanning npc row: %w", err)
		}

		n := model.NewNpc(uint32(objectID), name, model.NpcClassID(class))
		n.SpawnAt(omt, posX, posY)
		n.SetAttitude(model.NpcAttitude(attitude))
		n.SetRole(model.NpcRole(role))
		personality.Aggression = int8(aggression)
		personality.Bravery = int8(bravery)
		personality.Collector = int8(collector)
		personality.Altruism = int8(altru)
		n.SetPersonality(personality)
		n.SetOpinion(opinion)
		if guarding {
			n.GuardCurrentPos()
		}

		var effects []model.Effect
		if err := json.Unmarshal(effectsRaw, &effects); err != nil {
			return nil, fmt.Errorf("decoding effects for npc %d: %w", objectID, err)
		}
		for _, e := range effects {
			n.AddEffect(e)
		}
		var inventory []model.Item
		if err := json.Unmarshal(inventoryRaw, &inventory); err != nil {
			return nil, fmt.Errorf("decoding inventory for npc %d: %w", objectID, err)
		}
		for _, it := range inventory {
			n.AddItem(it)
		}

		npcs = append(npcs, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating npc rows: %w", err)
	}
	return npcs, nil
}

// Delete removes an NPC.
func (r *NpcRepository) Delete(ctx context.Context, objectID uint32) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM npcs WHERE object_id = $1`, objectID); err != nil {
		return fmt.Errorf("deleting npc %d: %w", objectID, err)
	}
	return nil
}
