package testutils

import (
	"github.com/dronewars/loot-engine/internal/domain/loot"
)

// CreateTestCard creates a test card catalog entry
func CreateTestCard(id, name string, cardType loot.CardType, rarity loot.Rarity) loot.Card {
	return loot.Card{
		ID:          id,
		Name:        name,
		Type:        cardType,
		Rarity:      rarity,
		Cost:        2,
		Description: "test card",
	}
}

// CreateTestDrone creates a test drone catalog entry
func CreateTestDrone(id, name string, class int, rarity loot.Rarity) loot.Drone {
	return loot.Drone{
		ID:         id,
		Name:       name,
		Class:      class,
		Rarity:     rarity,
		Hull:       3,
		Attack:     2,
		Selectable: true,
	}
}
