package models

// Item is an object usable in the games, from poké balls to berries.
type Item struct {
	ID                int                      `json:"id"`
	Name              string                   `json:"name"`
	Cost              int                      `json:"cost"`
	FlingPower        *int                     `json:"fling_power"`
	FlingEffect       NamedAPIResource         `json:"fling_effect"`
	Attributes        []NamedAPIResource       `json:"attributes"`
	Category          NamedAPIResource         `json:"category"`
	EffectEntries     []VerboseEffect          `json:"effect_entries"`
	FlavorTextEntries []VersionGroupFlavorText `json:"flavor_text_entries"`
	GameIndices       []GenerationGameIndex    `json:"game_indices"`
	Names             []Name                   `json:"names"`
	Sprites           ItemSprites              `json:"sprites"`
	HeldByPokemon     []ItemHolderPokemon      `json:"held_by_pokemon"`
	BabyTriggerFor    APIResource              `json:"baby_trigger_for"`
	Machines          []MachineVersionDetail   `json:"machines"`
}

// ItemSprites holds the item's sprite URLs.
type ItemSprites struct {
	Default string `json:"default"`
}

// ItemHolderPokemon lists a Pokémon that may hold an item in the wild.
type ItemHolderPokemon struct {
	Pokemon        NamedAPIResource                 `json:"pokemon"`
	VersionDetails []ItemHolderPokemonVersionDetail `json:"version_details"`
}

// ItemHolderPokemonVersionDetail is the hold rarity in one version.
type ItemHolderPokemonVersionDetail struct {
	Rarity  int              `json:"rarity"`
	Version NamedAPIResource `json:"version"`
}

// ItemAttribute is a quality items can share, such as "consumable".
type ItemAttribute struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Items        []NamedAPIResource `json:"items"`
	Names        []Name             `json:"names"`
	Descriptions []Description      `json:"descriptions"`
}

// ItemCategory groups items by purpose.
type ItemCategory struct {
	ID     int                `json:"id"`
	Name   string             `json:"name"`
	Items  []NamedAPIResource `json:"items"`
	Names  []Name             `json:"names"`
	Pocket NamedAPIResource   `json:"pocket"`
}

// ItemFlingEffect is the effect of flinging an item at a target.
type ItemFlingEffect struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	EffectEntries []Effect           `json:"effect_entries"`
	Items         []NamedAPIResource `json:"items"`
}

// ItemPocket is a bag pocket items are sorted into.
type ItemPocket struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Categories []NamedAPIResource `json:"categories"`
	Names      []Name             `json:"names"`
}
