package reward

import (
	"github.com/dronewars/loot-engine/internal/domain/loot"
)

// DropSource is one (POI type, tier) pair at which a drone can drop,
// with the exact chance of that specific drone being the one selected
type DropSource struct {
	POI         loot.POIType `json:"poi"`
	Tier        int          `json:"tier"`
	Probability float64      `json:"probability"`
}

// DropInfo is the informational drop table for one drone. Read-only
// analytics: computed on demand, never used for sampling.
type DropInfo struct {
	DroneID  string       `json:"droneId"`
	Sources  []DropSource `json:"sources"`
	PoolSize int          `json:"poolSize"`
}

// CalculateDropProbability computes the chance that this specific
// drone is produced by one blueprint drop at the given POI and tier:
// class band roll, then rarity roll, then a uniform pick within the
// pool of drones sharing its exact class and rarity. Returns 0 when
// the class or rarity has zero weight there, or the pool is empty.
func CalculateDropProbability(drone loot.Drone, poi loot.POIType, tier int, drones []loot.Drone) float64 {
	bands, ok := loot.ClassBandWeights[poi]
	if !ok {
		return 0
	}
	if drone.Class < 0 || drone.Class >= len(bands) {
		return 0
	}

	classWeight := bands[drone.Class]
	if classWeight == 0 {
		return 0
	}

	totalClassWeight := 0.0
	for _, w := range bands {
		totalClassWeight += w
	}
	if totalClassWeight == 0 {
		return 0
	}

	rarityTable, ok := loot.RarityWeightsByTier[tier]
	if !ok {
		return 0
	}

	rarityWeight := rarityTable.Weight(string(drone.Rarity))
	if rarityWeight == 0 {
		return 0
	}

	totalRarityWeight := rarityTable.Total()
	if totalRarityWeight == 0 {
		return 0
	}

	pool := dropPool(drone, drones)
	if len(pool) == 0 {
		return 0
	}

	return (classWeight / totalClassWeight) * (rarityWeight / totalRarityWeight) / float64(len(pool))
}

// DroneDropInfo enumerates every (POI, tier) pair where the drone can
// actually drop, in canonical POI and tier order, plus the shared
// pool size.
func DroneDropInfo(drone loot.Drone, drones []loot.Drone) DropInfo {
	info := DropInfo{
		DroneID:  drone.ID,
		PoolSize: len(dropPool(drone, drones)),
	}

	for _, poi := range loot.POITypes {
		for _, tier := range loot.Tiers {
			p := CalculateDropProbability(drone, poi, tier, drones)
			if p > 0 {
				info.Sources = append(info.Sources, DropSource{
					POI:         poi,
					Tier:        tier,
					Probability: p,
				})
			}
		}
	}

	return info
}

// dropPool returns the eligible drones sharing the drone's exact
// class and rarity
func dropPool(drone loot.Drone, drones []loot.Drone) []loot.Drone {
	var pool []loot.Drone
	for _, d := range drones {
		if !droneEligible(d) {
			continue
		}
		if d.Class == drone.Class && d.Rarity == drone.Rarity {
			pool = append(pool, d)
		}
	}
	return pool
}
