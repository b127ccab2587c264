package models

// Generation is one grouping of games that introduced new Pokémon.
type Generation struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	Abilities      []NamedAPIResource `json:"abilities"`
	Names          []Name             `json:"names"`
	MainRegion     NamedAPIResource   `json:"main_region"`
	Moves          []NamedAPIResource `json:"moves"`
	PokemonSpecies []NamedAPIResource `json:"pokemon_species"`
	Types          []NamedAPIResource `json:"types"`
	VersionGroups  []NamedAPIResource `json:"version_groups"`
}

// Pokedex is a catalog of species relevant to one region or game set.
type Pokedex struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	IsMainSeries   bool               `json:"is_main_series"`
	Descriptions   []Description      `json:"descriptions"`
	Names          []Name             `json:"names"`
	PokemonEntries []PokemonEntry     `json:"pokemon_entries"`
	Region         NamedAPIResource   `json:"region"`
	VersionGroups  []NamedAPIResource `json:"version_groups"`
}

// PokemonEntry is one numbered species entry in a pokedex.
type PokemonEntry struct {
	EntryNumber    int              `json:"entry_number"`
	PokemonSpecies NamedAPIResource `json:"pokemon_species"`
}

// Version is a released game version.
type Version struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Names        []Name           `json:"names"`
	VersionGroup NamedAPIResource `json:"version_group"`
}

// VersionGroup bundles versions that share most of their catalog data.
type VersionGroup struct {
	ID               int                `json:"id"`
	Name             string             `json:"name"`
	Order            int                `json:"order"`
	Generation       NamedAPIResource   `json:"generation"`
	MoveLearnMethods []NamedAPIResource `json:"move_learn_methods"`
	Pokedexes        []NamedAPIResource `json:"pokedexes"`
	Regions          []NamedAPIResource `json:"regions"`
	Versions         []NamedAPIResource `json:"versions"`
}
