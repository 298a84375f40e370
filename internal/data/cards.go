// Package data holds the builtin card and drone catalogs. Catalogs
// are static reference data: loaded once, never mutated.
package data

import (
	"github.com/dronewars/loot-engine/internal/domain/loot"
)

var cards = []loot.Card{
	// Starter deck - owned infinitely, never valid loot
	{ID: "CARD_PULSE_LASER", Name: "Pulse Laser", Type: loot.CardTypeOrdnance, Rarity: loot.RarityCommon, Cost: 1, Description: "Deal 2 damage to a drone."},
	{ID: "CARD_REPAIR_NANITE", Name: "Repair Nanites", Type: loot.CardTypeSupport, Rarity: loot.RarityCommon, Cost: 1, Description: "Restore 2 hull to a ship section."},
	{ID: "CARD_EVADE", Name: "Evasive Burn", Type: loot.CardTypeTactical, Rarity: loot.RarityCommon, Cost: 0, Description: "A drone dodges the next attack."},

	// Ordnance
	{ID: "CARD_RAIL_SLUG", Name: "Rail Slug", Type: loot.CardTypeOrdnance, Rarity: loot.RarityCommon, Cost: 2, Description: "Deal 3 damage to a drone."},
	{ID: "CARD_FLAK_BURST", Name: "Flak Burst", Type: loot.CardTypeOrdnance, Rarity: loot.RarityCommon, Cost: 2, Description: "Deal 1 damage to every drone in a lane."},
	{ID: "CARD_SEEKER_SWARM", Name: "Seeker Swarm", Type: loot.CardTypeOrdnance, Rarity: loot.RarityUncommon, Cost: 3, Description: "Deal 2 damage to three random drones."},
	{ID: "CARD_BREACH_TORPEDO", Name: "Breach Torpedo", Type: loot.CardTypeOrdnance, Rarity: loot.RarityUncommon, Cost: 3, Description: "Deal 4 damage to a ship section."},
	{ID: "CARD_LANCE_ARRAY", Name: "Lance Array", Type: loot.CardTypeOrdnance, Rarity: loot.RarityRare, Cost: 4, Description: "Deal 3 damage to each drone in two lanes."},
	{ID: "CARD_MASS_DRIVER", Name: "Mass Driver", Type: loot.CardTypeOrdnance, Rarity: loot.RarityRare, Cost: 5, Description: "Deal 7 damage to a drone or section."},
	{ID: "CARD_NOVA_CASCADE", Name: "Nova Cascade", Type: loot.CardTypeOrdnance, Rarity: loot.RarityMythic, Cost: 7, Description: "Deal 4 damage to everything in play."},

	// Support
	{ID: "CARD_HULL_PATCH", Name: "Hull Patch", Type: loot.CardTypeSupport, Rarity: loot.RarityCommon, Cost: 1, Description: "Restore 3 hull to a drone."},
	{ID: "CARD_SHIELD_LATTICE", Name: "Shield Lattice", Type: loot.CardTypeSupport, Rarity: loot.RarityCommon, Cost: 2, Description: "A section ignores the next 2 damage."},
	{ID: "CARD_DRONE_FOUNDRY", Name: "Drone Foundry", Type: loot.CardTypeSupport, Rarity: loot.RarityUncommon, Cost: 3, Description: "Deploy a copy of a friendly class 0 drone."},
	{ID: "CARD_POWER_REROUTE", Name: "Power Reroute", Type: loot.CardTypeSupport, Rarity: loot.RarityUncommon, Cost: 2, Description: "Gain 2 energy this turn."},
	{ID: "CARD_AEGIS_PROTOCOL", Name: "Aegis Protocol", Type: loot.CardTypeSupport, Rarity: loot.RarityRare, Cost: 4, Description: "All friendly drones gain 2 hull."},
	{ID: "CARD_LAZARUS_CORE", Name: "Lazarus Core", Type: loot.CardTypeSupport, Rarity: loot.RarityMythic, Cost: 6, Description: "Return a destroyed drone to play at full hull."},

	// Tactical
	{ID: "CARD_SENSOR_PING", Name: "Sensor Ping", Type: loot.CardTypeTactical, Rarity: loot.RarityCommon, Cost: 0, Description: "Reveal the opponent's hand for one turn."},
	{ID: "CARD_LANE_SHIFT", Name: "Lane Shift", Type: loot.CardTypeTactical, Rarity: loot.RarityCommon, Cost: 1, Description: "Move a friendly drone to an adjacent lane."},
	{ID: "CARD_JAMMING_FIELD", Name: "Jamming Field", Type: loot.CardTypeTactical, Rarity: loot.RarityUncommon, Cost: 2, Description: "Enemy drones in a lane skip their next attack."},
	{ID: "CARD_DECOY_BEACON", Name: "Decoy Beacon", Type: loot.CardTypeTactical, Rarity: loot.RarityRare, Cost: 3, Description: "Enemy attacks target the beacon this turn."},
	{ID: "CARD_NULL_WAKE", Name: "Null Wake", Type: loot.CardTypeTactical, Rarity: loot.RarityMythic, Cost: 5, Description: "Cancel every card the opponent plays next turn."},

	// AI encounter cards - excluded from every player pool
	{ID: "CARD_HIVE_OVERRIDE", Name: "Hive Override", Type: loot.CardTypeTactical, Rarity: loot.RarityRare, Cost: 0, Description: "AI control card.", AIOnly: true},
	{ID: "CARD_SWARM_FRENZY", Name: "Swarm Frenzy", Type: loot.CardTypeOrdnance, Rarity: loot.RarityUncommon, Cost: 0, Description: "AI swarm attack.", AIOnly: true},
}

// Cards returns a fresh copy of the builtin card catalog
func Cards() []loot.Card {
	out := make([]loot.Card, len(cards))
	copy(out, cards)
	return out
}
