package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nearby-fitness-service/internal/domain"
	"nearby-fitness-service/internal/platform/obs"
	"nearby-fitness-service/internal/ports"
)

var _ ports.SnapshotSource = (*PostgresSnapshotSource)(nil)

// PostgresSnapshotSource loads a previously seeded snapshot from Postgres.
// It only reads; the API never writes back.
type PostgresSnapshotSource struct {
	DB *sql.DB
}

func NewPostgresSnapshotSource(db *sql.DB) *PostgresSnapshotSource {
	return &PostgresSnapshotSource{DB: db}
}

func (s *PostgresSnapshotSource) Load(ctx context.Context) (_ *domain.Snapshot, err error) {
	defer obs.Time(ctx, "snapshot.postgres.Load")(&err)

	if s.DB == nil {
		return nil, errors.New("load snapshot: db is nil")
	}

	q := `
	SELECT kind, doc
	FROM geo_entities
	ORDER BY kind, position;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: query geo_entities table: %w", err)
	}
	defer rows.Close()

	snap := &domain.Snapshot{
		Marathons:  []domain.Marathon{},
		Gyms:       []domain.Gym{},
		GymBuddies: []domain.GymBuddy{},
	}
	for rows.Next() {
		var kind string
		var doc []byte
		if err := rows.Scan(&kind, &doc); err != nil {
			return nil, fmt.Errorf("load snapshot: scan rows: %w", err)
		}
		if err := appendDocument(snap, kind, doc); err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load snapshot: row iteration: %w", err)
	}

	snap.GeneratedAt = time.Now().UTC()
	return snap, nil
}

// Decode one stored document into the collection matching its kind.
func appendDocument(snap *domain.Snapshot, kind string, doc []byte) error {
	switch kind {
	case KindMarathon:
		var m domain.Marathon
		if err := json.Unmarshal(doc, &m); err != nil {
			return fmt.Errorf("decode %s: %w", kind, err)
		}
		snap.Marathons = append(snap.Marathons, m)
	case KindGym:
		var g domain.Gym
		if err := json.Unmarshal(doc, &g); err != nil {
			return fmt.Errorf("decode %s: %w", kind, err)
		}
		snap.Gyms = append(snap.Gyms, g)
	case KindGymBuddy:
		var b domain.GymBuddy
		if err := json.Unmarshal(doc, &b); err != nil {
			return fmt.Errorf("decode %s: %w", kind, err)
		}
		snap.GymBuddies = append(snap.GymBuddies, b)
	default:
		return fmt.Errorf("unknown entity kind %q", kind)
	}

	return nil
}
