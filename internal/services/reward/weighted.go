package reward

import (
	"strconv"

	"github.com/dronewars/loot-engine/internal/domain/loot"
	"github.com/dronewars/loot-engine/internal/rng"
)

// WeightedRoll returns one key from the table, chosen with probability
// proportional to its weight relative to the table total. An empty
// table returns "". Never panics: if rounding leaves the roll
// unconsumed after the last entry, the first key is returned.
func WeightedRoll(table loot.WeightTable, src rng.Source) string {
	if len(table) == 0 {
		return ""
	}

	roll := src.Float64() * table.Total()
	for _, entry := range table {
		roll -= entry.Weight
		if roll <= 0 {
			return entry.Key
		}
	}

	// Floating-point safety net. With an all-zero table the loop
	// already returned the first key (0 - 0 <= 0).
	return table[0].Key
}

// RollRarity rolls a rarity for the given POI tier. Unknown tiers use
// the tier 1 table.
func RollRarity(tier int, src rng.Source) loot.Rarity {
	table, ok := loot.RarityWeightsByTier[tier]
	if !ok {
		table = loot.RarityWeightsByTier[1]
	}
	return loot.Rarity(WeightedRoll(table, src))
}

// RollCardType rolls the card type for a bundle slot. Slot 0 is the
// guaranteed slot: when a guaranteed-types list is present its first
// entry is returned without consuming randomness.
func RollCardType(slot int, guaranteed []loot.CardType, src rng.Source) loot.CardType {
	if slot == 0 && len(guaranteed) > 0 {
		return guaranteed[0]
	}
	return loot.CardType(WeightedRoll(loot.AdditionalCardTypeWeights, src))
}

// RollCardCount returns an integer in [minCount, maxCount]. With no
// weights the pick is uniform; otherwise weights index by
// (count - minCount), missing entries defaulting to 1.
func RollCardCount(minCount, maxCount int, weights []float64, src rng.Source) int {
	if maxCount <= minCount {
		return minCount
	}

	if len(weights) == 0 {
		return minCount + int(src.Float64()*float64(maxCount-minCount+1))
	}

	table := make(loot.WeightTable, 0, maxCount-minCount+1)
	for count := minCount; count <= maxCount; count++ {
		weight := 1.0
		if i := count - minCount; i < len(weights) {
			weight = weights[i]
		}
		table = append(table, loot.WeightEntry{Key: strconv.Itoa(count), Weight: weight})
	}

	count, err := strconv.Atoi(WeightedRoll(table, src))
	if err != nil {
		return minCount
	}
	return count
}
