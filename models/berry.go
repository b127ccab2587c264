package models

// Berry is a small fruit that can be held by a Pokémon.
type Berry struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	GrowthTime       int              `json:"growth_time"`
	MaxHarvest       int              `json:"max_harvest"`
	NaturalGiftPower int              `json:"natural_gift_power"`
	Size             int              `json:"size"`
	Smoothness       int              `json:"smoothness"`
	SoilDryness      int              `json:"soil_dryness"`
	Firmness         NamedAPIResource `json:"firmness"`
	Flavors          []BerryFlavorMap `json:"flavors"`
	Item             NamedAPIResource `json:"item"`
	NaturalGiftType  NamedAPIResource `json:"natural_gift_type"`
}

// BerryFlavorMap ties a berry to one of its flavors with a potency.
type BerryFlavorMap struct {
	Potency int              `json:"potency"`
	Flavor  NamedAPIResource `json:"flavor"`
}

// BerryFirmness is a firmness category berries fall into.
type BerryFirmness struct {
	ID      int                `json:"id"`
	Name    string             `json:"name"`
	Berries []NamedAPIResource `json:"berries"`
	Names   []Name             `json:"names"`
}

// BerryFlavor is a flavor that determines a berry's taste and its effect
// on contest performance.
type BerryFlavor struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Berries     []FlavorBerryMap `json:"berries"`
	ContestType NamedAPIResource `json:"contest_type"`
	Names       []Name           `json:"names"`
}

// FlavorBerryMap ties a flavor back to a berry with a potency.
type FlavorBerryMap struct {
	Potency int              `json:"potency"`
	Berry   NamedAPIResource `json:"berry"`
}
