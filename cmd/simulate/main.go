// simulate samples the full blueprint drop pipeline and compares the
// observed frequencies against the analytic drop probabilities.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dronewars/loot-engine/internal/data"
	"github.com/dronewars/loot-engine/internal/domain/loot"
	"github.com/dronewars/loot-engine/internal/rng"
	"github.com/dronewars/loot-engine/internal/services/reward"
)

type pairResult struct {
	poi      loot.POIType
	tier     int
	observed map[string]float64 // drone ID -> frequency
}

func main() {
	trials := flag.Int("trials", 100000, "Samples per (POI, tier) pair")
	seed := flag.Int64("seed", 1, "Base RNG seed")
	flag.Parse()

	drones := data.Drones()

	var (
		mu      sync.Mutex
		results []pairResult
	)

	// Each pair gets its own seeded source, so runs are reproducible
	// and the workers share nothing.
	var g errgroup.Group
	pairIndex := 0
	for _, poi := range loot.POITypes {
		for _, tier := range loot.Tiers {
			offset := int64(pairIndex)
			pairIndex++

			g.Go(func() error {
				result := samplePair(poi, tier, drones, *trials, *seed+offset)
				mu.Lock()
				results = append(results, result)
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	poiOrder := make(map[loot.POIType]int, len(loot.POITypes))
	for i, poi := range loot.POITypes {
		poiOrder[poi] = i
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].poi != results[j].poi {
			return poiOrder[results[i].poi] < poiOrder[results[j].poi]
		}
		return results[i].tier < results[j].tier
	})

	for _, result := range results {
		report(result, drones)
	}
}

// samplePair runs the class roll, rarity roll, and blueprint selection
// for one (POI, tier) pair
func samplePair(poi loot.POIType, tier int, drones []loot.Drone, trials int, seed int64) pairResult {
	src := rng.NewSeeded(seed)
	counts := make(map[string]int)

	classTable := loot.ClassBandTable(poi)
	for i := 0; i < trials; i++ {
		class, err := strconv.Atoi(reward.WeightedRoll(classTable, src))
		if err != nil {
			continue
		}

		rarity := reward.RollRarity(tier, src)
		record := reward.SelectDroneBlueprint(drones, class, rarity, nil, src)
		if record == nil {
			continue
		}
		counts[record.DroneID]++
	}

	observed := make(map[string]float64, len(counts))
	for id, n := range counts {
		observed[id] = float64(n) / float64(trials)
	}

	return pairResult{poi: poi, tier: tier, observed: observed}
}

func report(result pairResult, drones []loot.Drone) {
	fmt.Printf("=== %s tier %d ===\n", result.poi, result.tier)

	for _, drone := range drones {
		expected := reward.CalculateDropProbability(drone, result.poi, result.tier, drones)
		observed := result.observed[drone.ID]
		if expected == 0 && observed == 0 {
			continue
		}

		// Fallback selection inflates drones whose exact pool was
		// missed, so observed can sit above the analytic value.
		fmt.Printf("  %-16s expected %7.4f%%  observed %7.4f%%  delta %+.4f%%\n",
			drone.ID, expected*100, observed*100, (observed-expected)*100)
	}
	fmt.Println()
}
