package loot_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dronewars/loot-engine/internal/domain/loot"
)

// The weighted roll degrades to first-key behavior on an all-zero
// table; the shipped data must never rely on that.
func TestRarityWeightsByTier_ShippedTablesArePositive(t *testing.T) {
	for _, tier := range loot.Tiers {
		table, ok := loot.RarityWeightsByTier[tier]
		require.True(t, ok, "tier %d has no rarity table", tier)
		assert.Greater(t, table.Total(), 0.0, "tier %d rarity table is all-zero", tier)

		require.Len(t, table, len(loot.Rarities))
		for i, rarity := range loot.Rarities {
			assert.Equal(t, string(rarity), table[i].Key, "tier %d rarity order drifted", tier)
		}
	}
}

func TestClassBandWeights_EveryPOIHasWeight(t *testing.T) {
	for _, poi := range loot.POITypes {
		bands, ok := loot.ClassBandWeights[poi]
		require.True(t, ok, "POI %s has no class band weights", poi)

		total := 0.0
		for _, w := range bands {
			assert.GreaterOrEqual(t, w, 0.0)
			total += w
		}
		assert.Greater(t, total, 0.0, "POI %s class bands are all-zero", poi)
	}
}

func TestClassBandTable(t *testing.T) {
	table := loot.ClassBandTable(loot.POIWreckage)

	require.Len(t, table, loot.ClassBandCount)
	for class := 0; class < loot.ClassBandCount; class++ {
		assert.Equal(t, strconv.Itoa(class), table[class].Key)
		assert.Equal(t, loot.ClassBandWeights[loot.POIWreckage][class], table[class].Weight)
	}

	assert.Nil(t, loot.ClassBandTable(loot.POIType("nebula")))
}

func TestAdditionalCardTypeWeights_CoversAllTypes(t *testing.T) {
	assert.Greater(t, loot.AdditionalCardTypeWeights.Total(), 0.0)

	for _, cardType := range []loot.CardType{loot.CardTypeOrdnance, loot.CardTypeSupport, loot.CardTypeTactical} {
		assert.Greater(t, loot.AdditionalCardTypeWeights.Weight(string(cardType)), 0.0,
			"card type %s has no additional-slot weight", cardType)
	}
}
