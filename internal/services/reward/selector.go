package reward

import (
	"github.com/dronewars/loot-engine/internal/domain/loot"
	"github.com/dronewars/loot-engine/internal/rng"
)

// SelectCard picks one card from the catalog for the requested type
// and rarity, walking an ordered fallback chain until a pool is
// non-empty:
//
//  1. exact type and exact rarity
//  2. same type, rarity in the allowed set
//  3. same type, any rarity
//  4. any type, exact rarity
//  5. anything eligible
//
// Each stage filters the full catalog, never a previous stage's
// result. Starter-deck and AI-only cards are excluded at every stage.
// The pick within the chosen pool is uniform. Returns nil when the
// catalog minus exclusions is empty.
func SelectCard(cards []loot.Card, cardType loot.CardType, rarity loot.Rarity, allowed []loot.Rarity, src rng.Source) *loot.CardRecord {
	allowedSet := make(map[loot.Rarity]bool, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = true
	}

	stages := []func(loot.Card) bool{
		func(c loot.Card) bool { return c.Type == cardType && c.Rarity == rarity },
		func(c loot.Card) bool { return c.Type == cardType && allowedSet[c.Rarity] },
		func(c loot.Card) bool { return c.Type == cardType },
		func(c loot.Card) bool { return c.Rarity == rarity },
		func(c loot.Card) bool { return true },
	}

	for _, matches := range stages {
		var pool []loot.Card
		for _, card := range cards {
			if !cardEligible(card) {
				continue
			}
			if matches(card) {
				pool = append(pool, card)
			}
		}

		if len(pool) == 0 {
			continue
		}

		pick := pool[int(src.Float64()*float64(len(pool)))]
		record := pick.LootRecord()
		return &record
	}

	return nil
}

// SelectDroneBlueprint picks one drone blueprint from the catalog for
// the requested class band and rarity, with the same fallback chain
// and exclusion rules as SelectCard.
func SelectDroneBlueprint(drones []loot.Drone, class int, rarity loot.Rarity, allowed []loot.Rarity, src rng.Source) *loot.BlueprintRecord {
	allowedSet := make(map[loot.Rarity]bool, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = true
	}

	stages := []func(loot.Drone) bool{
		func(d loot.Drone) bool { return d.Class == class && d.Rarity == rarity },
		func(d loot.Drone) bool { return d.Class == class && allowedSet[d.Rarity] },
		func(d loot.Drone) bool { return d.Class == class },
		func(d loot.Drone) bool { return d.Rarity == rarity },
		func(d loot.Drone) bool { return true },
	}

	for _, matches := range stages {
		var pool []loot.Drone
		for _, drone := range drones {
			if !droneEligible(drone) {
				continue
			}
			if matches(drone) {
				pool = append(pool, drone)
			}
		}

		if len(pool) == 0 {
			continue
		}

		pick := pool[int(src.Float64()*float64(len(pool)))]
		record := pick.LootRecord()
		return &record
	}

	return nil
}

// cardEligible reports whether a card may appear in any loot pool
func cardEligible(c loot.Card) bool {
	return !c.AIOnly && !loot.IsStarterCard(c.ID)
}

// droneEligible reports whether a drone may appear in any blueprint pool
func droneEligible(d loot.Drone) bool {
	return d.Selectable && !loot.IsStarterDrone(d.ID)
}
