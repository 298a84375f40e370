package catalogs

//go:generate mockgen -destination=mock/mock.go -package=mockcatalogs -source=interface.go

import (
	"context"

	"github.com/dronewars/loot-engine/internal/domain/loot"
)

// Repository defines the interface for catalog storage. Catalogs are
// load-once reference data; Seed replaces the stored catalog wholesale.
type Repository interface {
	// ListCards returns the full card catalog
	ListCards(ctx context.Context) ([]loot.Card, error)

	// ListDrones returns the full drone blueprint catalog
	ListDrones(ctx context.Context) ([]loot.Drone, error)

	// SeedCards replaces the stored card catalog
	SeedCards(ctx context.Context, cards []loot.Card) error

	// SeedDrones replaces the stored drone catalog
	SeedDrones(ctx context.Context, drones []loot.Drone) error
}
