package data

import (
	"github.com/dronewars/loot-engine/internal/domain/loot"
)

var drones = []loot.Drone{
	// Starter hangar
	{ID: "DRONE_WASP", Name: "Wasp", Class: 0, Rarity: loot.RarityCommon, Hull: 2, Attack: 1, Selectable: true},

	// Class 0 - scouts
	{ID: "DRONE_GNAT", Name: "Gnat", Class: 0, Rarity: loot.RarityCommon, Hull: 1, Attack: 2, Selectable: true},
	{ID: "DRONE_FIREFLY", Name: "Firefly", Class: 0, Rarity: loot.RarityUncommon, Hull: 2, Attack: 2, Selectable: true},

	// Class 1 - light attack
	{ID: "DRONE_HORNET", Name: "Hornet", Class: 1, Rarity: loot.RarityCommon, Hull: 3, Attack: 2, Selectable: true},
	{ID: "DRONE_DART", Name: "Dart", Class: 1, Rarity: loot.RarityCommon, Hull: 2, Attack: 3, Selectable: true},
	{ID: "DRONE_KESTREL", Name: "Kestrel", Class: 1, Rarity: loot.RarityUncommon, Hull: 3, Attack: 3, Selectable: true},
	{ID: "DRONE_VESPID", Name: "Vespid", Class: 1, Rarity: loot.RarityRare, Hull: 4, Attack: 3, Selectable: true},

	// Class 2 - line fighters
	{ID: "DRONE_LANCER", Name: "Lancer", Class: 2, Rarity: loot.RarityCommon, Hull: 4, Attack: 3, Selectable: true},
	{ID: "DRONE_MANTIS", Name: "Mantis", Class: 2, Rarity: loot.RarityUncommon, Hull: 4, Attack: 4, Selectable: true},
	{ID: "DRONE_HARRIER", Name: "Harrier", Class: 2, Rarity: loot.RarityRare, Hull: 5, Attack: 4, Selectable: true},

	// Class 3 - heavies
	{ID: "DRONE_BULWARK", Name: "Bulwark", Class: 3, Rarity: loot.RarityUncommon, Hull: 7, Attack: 3, Selectable: true},
	{ID: "DRONE_RHINO", Name: "Rhino", Class: 3, Rarity: loot.RarityRare, Hull: 8, Attack: 4, Selectable: true},
	{ID: "DRONE_GOLIATH", Name: "Goliath", Class: 3, Rarity: loot.RarityMythic, Hull: 10, Attack: 5, Selectable: true},

	// Class 4 - capitals
	{ID: "DRONE_PALADIN", Name: "Paladin", Class: 4, Rarity: loot.RarityRare, Hull: 9, Attack: 6, Selectable: true},
	{ID: "DRONE_LEVIATHAN", Name: "Leviathan", Class: 4, Rarity: loot.RarityMythic, Hull: 12, Attack: 7, Selectable: true},

	// Encounter-only hulls, never offered as blueprints
	{ID: "DRONE_HIVE_QUEEN", Name: "Hive Queen", Class: 4, Rarity: loot.RarityMythic, Hull: 15, Attack: 6, Selectable: false},
	{ID: "DRONE_LOCUST", Name: "Locust", Class: 0, Rarity: loot.RarityCommon, Hull: 1, Attack: 1, Selectable: false},
}

// Drones returns a fresh copy of the builtin drone catalog
func Drones() []loot.Drone {
	out := make([]loot.Drone, len(drones))
	copy(out, drones)
	return out
}
