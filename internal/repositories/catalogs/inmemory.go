package catalogs

import (
	"context"
	"sync"

	"github.com/dronewars/loot-engine/internal/domain/loot"
)

// InMemoryRepository is an in-memory implementation of the catalog repository
// Useful for testing and for running against the builtin catalogs
type InMemoryRepository struct {
	mu     sync.RWMutex
	cards  []loot.Card
	drones []loot.Drone
}

// NewInMemoryRepository creates a new empty in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// NewInMemorySeeded creates an in-memory repository pre-seeded with catalogs
func NewInMemorySeeded(cards []loot.Card, drones []loot.Drone) *InMemoryRepository {
	repo := NewInMemoryRepository()
	repo.cards = copyCards(cards)
	repo.drones = copyDrones(drones)
	return repo
}

// ListCards returns a copy of the card catalog
func (r *InMemoryRepository) ListCards(ctx context.Context) ([]loot.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyCards(r.cards), nil
}

// ListDrones returns a copy of the drone catalog
func (r *InMemoryRepository) ListDrones(ctx context.Context) ([]loot.Drone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyDrones(r.drones), nil
}

// SeedCards replaces the stored card catalog
func (r *InMemoryRepository) SeedCards(ctx context.Context, cards []loot.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards = copyCards(cards)
	return nil
}

// SeedDrones replaces the stored drone catalog
func (r *InMemoryRepository) SeedDrones(ctx context.Context, drones []loot.Drone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drones = copyDrones(drones)
	return nil
}

// copies guard against external modification of the stored slices

func copyCards(cards []loot.Card) []loot.Card {
	out := make([]loot.Card, len(cards))
	copy(out, cards)
	return out
}

func copyDrones(drones []loot.Drone) []loot.Drone {
	out := make([]loot.Drone, len(drones))
	copy(out, drones)
	return out
}
