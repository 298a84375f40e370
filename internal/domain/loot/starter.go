package loot

// StarterCardIDs are the cards every player owns infinitely from the
// starter deck. They are never valid loot, at any fallback stage.
var StarterCardIDs = map[string]bool{
	"CARD_PULSE_LASER":   true,
	"CARD_REPAIR_NANITE": true,
	"CARD_EVADE":         true,
}

// StarterDroneIDs are the drone blueprints in the starter hangar
var StarterDroneIDs = map[string]bool{
	"DRONE_WASP": true,
}

// IsStarterCard reports whether a card ID belongs to the starter deck
func IsStarterCard(id string) bool {
	return StarterCardIDs[id]
}

// IsStarterDrone reports whether a drone ID belongs to the starter hangar
func IsStarterDrone(id string) bool {
	return StarterDroneIDs[id]
}
