package loot

import "strconv"

// WeightEntry pairs a selection key with its relative weight
type WeightEntry struct {
	Key    string
	Weight float64
}

// WeightTable is an ordered list of weighted keys. Order matters:
// weighted rolls walk the table front to back and fall back to the
// first key, so a table is not interchangeable with a map.
type WeightTable []WeightEntry

// Total returns the sum of all weights in the table
func (t WeightTable) Total() float64 {
	total := 0.0
	for _, e := range t {
		total += e.Weight
	}
	return total
}

// First returns the first key in the table, or "" if empty
func (t WeightTable) First() string {
	if len(t) == 0 {
		return ""
	}
	return t[0].Key
}

// Weight returns the weight for a key, or 0 if the key is absent
func (t WeightTable) Weight(key string) float64 {
	for _, e := range t {
		if e.Key == key {
			return e.Weight
		}
	}
	return 0
}

// ClassBandCount is the number of drone class bands (classes 0-4)
const ClassBandCount = 5

// RarityWeightsByTier holds the rarity roll table for each POI tier
var RarityWeightsByTier = map[int]WeightTable{
	1: {
		{Key: string(RarityCommon), Weight: 60},
		{Key: string(RarityUncommon), Weight: 30},
		{Key: string(RarityRare), Weight: 9},
		{Key: string(RarityMythic), Weight: 1},
	},
	2: {
		{Key: string(RarityCommon), Weight: 40},
		{Key: string(RarityUncommon), Weight: 35},
		{Key: string(RarityRare), Weight: 20},
		{Key: string(RarityMythic), Weight: 5},
	},
	3: {
		{Key: string(RarityCommon), Weight: 20},
		{Key: string(RarityUncommon), Weight: 35},
		{Key: string(RarityRare), Weight: 33},
		{Key: string(RarityMythic), Weight: 12},
	},
}

// ClassBandWeights holds, per POI type, the roll weight of each drone
// class band. Index is the class band (0-4). A zero weight means the
// band never drops at that POI.
var ClassBandWeights = map[POIType][ClassBandCount]float64{
	POIWreckage:        {50, 30, 15, 5, 0},
	POIDerelictStation: {20, 35, 25, 15, 5},
	POIAsteroidCache:   {35, 30, 20, 10, 5},
	POIPirateConvoy:    {10, 25, 30, 20, 15},
}

// AdditionalCardTypeWeights is the type roll table for non-guaranteed
// bundle slots
var AdditionalCardTypeWeights = WeightTable{
	{Key: string(CardTypeOrdnance), Weight: 45},
	{Key: string(CardTypeSupport), Weight: 35},
	{Key: string(CardTypeTactical), Weight: 20},
}

// DefaultCardCountWeights skews bundle sizes toward the low end.
// Indexed by (count - min) when rolling a weighted card count.
var DefaultCardCountWeights = []float64{4, 3, 2, 1}

// ClassBandTable converts a POI's class band weights into a weight
// table keyed by the stringified class band, preserving band order.
// Returns nil for an unknown POI type.
func ClassBandTable(poi POIType) WeightTable {
	bands, ok := ClassBandWeights[poi]
	if !ok {
		return nil
	}

	table := make(WeightTable, 0, len(bands))
	for class, w := range bands {
		table = append(table, WeightEntry{Key: strconv.Itoa(class), Weight: w})
	}
	return table
}
