// Package mocks provides hand-rolled test doubles for the domain ports.
package mocks

import (
	"context"

	"github.com/ersonp/eventbook-core/internal/domain/entities"
)

// Storage is an in-memory ports.Storage. Error fields let tests inject
// failures on specific operations.
type Storage struct {
	Snapshot  *entities.Snapshot
	SaveCalls int
	LoadErr   error
	SaveErr   error
}

// NewStorage creates an empty mock storage.
func NewStorage() *Storage {
	return &Storage{Snapshot: &entities.Snapshot{}}
}

// Load returns the held snapshot or the injected error.
func (s *Storage) Load(_ context.Context) (*entities.Snapshot, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Snapshot, nil
}

// Save records the snapshot or returns the injected error.
func (s *Storage) Save(_ context.Context, snap *entities.Snapshot) error {
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Snapshot = snap
	return nil
}

// Close is a no-op.
func (s *Storage) Close() error { return nil }
