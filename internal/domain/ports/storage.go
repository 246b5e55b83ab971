// Package ports defines the interfaces the domain expects from
// infrastructure.
package ports

import (
	"context"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

// Storage is the snapshot persistence contract. Implementations must
// round-trip snapshots with person, event, and per-event link order
// preserved. Load on an empty backing store returns an empty snapshot, not an
// error.
type Storage interface {
	// Load reads the persisted snapshot.
	Load(ctx context.Context) (*entities.Snapshot, error)

	// Save replaces the persisted snapshot atomically.
	Save(ctx context.Context, snap *entities.Snapshot) error

	// Close releases the underlying resources.
	Close() error
}
