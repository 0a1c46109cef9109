package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"nearby-fitness-service/internal/domain"
)

// Entity kinds stored in geo_entities.kind.
const (
	KindMarathon = "marathon"
	KindGym      = "gym"
	KindGymBuddy = "gymbro"
)

// Initialize the Postgres schema used by the snapshot source.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createEntitiesQuery := `
	CREATE TABLE IF NOT EXISTS geo_entities (
		kind TEXT NOT NULL,
		entity_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		doc JSONB NOT NULL,
		PRIMARY KEY (kind, entity_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_geo_entities_kind_position
	ON geo_entities(kind, position);
	`

	statements := []string{
		createEntitiesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type entityRow struct {
	kind     string
	entityID int
	doc      []byte
}

// Flatten a snapshot into rows; position is the index inside each collection.
func snapshotRows(snap *domain.Snapshot) ([]entityRow, error) {
	rows := make([]entityRow, 0, len(snap.Marathons)+len(snap.Gyms)+len(snap.GymBuddies))

	add := func(kind string, id int, v any) error {
		doc, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s id=%d: %w", kind, id, err)
		}
		rows = append(rows, entityRow{kind: kind, entityID: id, doc: doc})
		return nil
	}

	for _, m := range snap.Marathons {
		if err := add(KindMarathon, m.ID, m); err != nil {
			return nil, err
		}
	}
	for _, g := range snap.Gyms {
		if err := add(KindGym, g.ID, g); err != nil {
			return nil, err
		}
	}
	for _, b := range snap.GymBuddies {
		if err := add(KindGymBuddy, b.ID, b); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// Replace the stored entities with the given snapshot.
func SeedSnapshot(ctx context.Context, db *sql.DB, snap *domain.Snapshot) error {
	if db == nil {
		return errors.New("seed snapshot: DB is nil")
	}
	if snap == nil {
		return errors.New("seed snapshot: snapshot is nil")
	}

	rows, err := snapshotRows(snap)
	if err != nil {
		return fmt.Errorf("seed snapshot: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed snapshot: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM geo_entities;`); err != nil {
		return fmt.Errorf("seed snapshot: clear table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO geo_entities (kind, entity_id, position, doc)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (kind, entity_id) DO UPDATE
	SET position = EXCLUDED.position,
		doc = EXCLUDED.doc;
	`)
	if err != nil {
		return fmt.Errorf("seed snapshot: prepare insert: %w", err)
	}
	defer stmt.Close()

	positions := map[string]int{}
	for _, r := range rows {
		pos := positions[r.kind]
		positions[r.kind]++

		if _, err := stmt.ExecContext(ctx, r.kind, r.entityID, pos, string(r.doc)); err != nil {
			return fmt.Errorf("seed snapshot: insert %s id=%d: %w", r.kind, r.entityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed snapshot: commit tx: %w", err)
	}

	return nil
}
