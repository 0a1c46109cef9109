package ports

import (
	"context"
	"nearby-fitness-service/internal/domain"
)

// Port: a boundary for producing the entity snapshot served by the API.
// Implementations are called once at startup.
type SnapshotSource interface {
	// Build or load every entity collection.
	Load(ctx context.Context) (*domain.Snapshot, error)
}
