//go:build integration
// +build integration

package catalogs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dronewars/loot-engine/internal/data"
	"github.com/dronewars/loot-engine/internal/repositories/catalogs"
	"github.com/dronewars/loot-engine/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	// This test requires Redis to be running
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := catalogs.NewRedisRepository(&catalogs.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("seed and list cards round-trip", func(t *testing.T) {
		seed := data.Cards()
		require.NoError(t, repo.SeedCards(ctx, seed))

		cards, err := repo.ListCards(ctx)
		require.NoError(t, err)
		require.Len(t, cards, len(seed))

		// Seeded order must survive storage: uniform picks are
		// position-sensitive.
		for i := range seed {
			assert.Equal(t, seed[i], cards[i])
		}
	})

	t.Run("seed and list drones round-trip", func(t *testing.T) {
		seed := data.Drones()
		require.NoError(t, repo.SeedDrones(ctx, seed))

		drones, err := repo.ListDrones(ctx)
		require.NoError(t, err)
		require.Len(t, drones, len(seed))
		for i := range seed {
			assert.Equal(t, seed[i], drones[i])
		}
	})

	t.Run("reseeding replaces the catalog", func(t *testing.T) {
		seed := data.Cards()[:3]
		require.NoError(t, repo.SeedCards(ctx, seed))

		cards, err := repo.ListCards(ctx)
		require.NoError(t, err)
		assert.Len(t, cards, 3)
	})
}
