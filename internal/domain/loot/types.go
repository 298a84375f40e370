package loot

// Rarity is the drop tier of a card or drone blueprint
type Rarity string

const (
	RarityCommon   Rarity = "Common"
	RarityUncommon Rarity = "Uncommon"
	RarityRare     Rarity = "Rare"
	RarityMythic   Rarity = "Mythic"
)

// Rarities lists all rarities from most to least common
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityMythic}

// CardType is the functional category of a card
type CardType string

const (
	CardTypeOrdnance CardType = "Ordnance"
	CardTypeSupport  CardType = "Support"
	CardTypeTactical CardType = "Tactical"
)

// POIType identifies a point-of-interest category on the sector map
type POIType string

const (
	POIWreckage        POIType = "wreckage"
	POIDerelictStation POIType = "derelict-station"
	POIAsteroidCache   POIType = "asteroid-cache"
	POIPirateConvoy    POIType = "pirate-convoy"
)

// POITypes lists POI types in their canonical display order.
// Drop-info enumeration depends on this order being stable.
var POITypes = []POIType{POIWreckage, POIDerelictStation, POIAsteroidCache, POIPirateConvoy}

// Tiers lists the valid POI tiers in ascending order
var Tiers = []int{1, 2, 3}

// Card is a static catalog entry for a playable card
type Card struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        CardType `json:"type"`
	Rarity      Rarity   `json:"rarity"`
	Cost        int      `json:"cost"`
	Description string   `json:"description"`
	AIOnly      bool     `json:"ai_only"`
}

// Drone is a static catalog entry for a drone blueprint
type Drone struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Class      int    `json:"class"` // class band 0-4
	Rarity     Rarity `json:"rarity"`
	Hull       int    `json:"hull"`
	Attack     int    `json:"attack"`
	Selectable bool   `json:"selectable"`
}

// CardRecord is the inventory-facing shape of a selected card.
// The catalog's ID and Name fields are renamed; everything else
// passes through unchanged.
type CardRecord struct {
	CardID      string   `json:"cardId"`
	CardName    string   `json:"cardName"`
	Type        CardType `json:"type"`
	Rarity      Rarity   `json:"rarity"`
	Cost        int      `json:"cost"`
	Description string   `json:"description"`
}

// BlueprintRecord is the inventory-facing shape of a selected drone blueprint
type BlueprintRecord struct {
	DroneID   string `json:"droneId"`
	DroneName string `json:"droneName"`
	Class     int    `json:"class"`
	Rarity    Rarity `json:"rarity"`
	Hull      int    `json:"hull"`
	Attack    int    `json:"attack"`
}

// LootRecord converts a catalog card into its loot-record shape
func (c Card) LootRecord() CardRecord {
	return CardRecord{
		CardID:      c.ID,
		CardName:    c.Name,
		Type:        c.Type,
		Rarity:      c.Rarity,
		Cost:        c.Cost,
		Description: c.Description,
	}
}

// LootRecord converts a catalog drone into its blueprint-record shape
func (d Drone) LootRecord() BlueprintRecord {
	return BlueprintRecord{
		DroneID:   d.ID,
		DroneName: d.Name,
		Class:     d.Class,
		Rarity:    d.Rarity,
		Hull:      d.Hull,
		Attack:    d.Attack,
	}
}
