package models

// Location is a place in the game world.
type Location struct {
	ID          int                   `json:"id"`
	Name        string                `json:"name"`
	Region      NamedAPIResource      `json:"region"`
	Names       []Name                `json:"names"`
	GameIndices []GenerationGameIndex `json:"game_indices"`
	Areas       []NamedAPIResource    `json:"areas"`
}

// LocationArea is a section of a location with its own encounters.
type LocationArea struct {
	ID                   int                   `json:"id"`
	Name                 string                `json:"name"`
	GameIndex            int                   `json:"game_index"`
	EncounterMethodRates []EncounterMethodRate `json:"encounter_method_rates"`
	Location             NamedAPIResource      `json:"location"`
	Names                []Name                `json:"names"`
	PokemonEncounters    []PokemonEncounter    `json:"pokemon_encounters"`
}

// EncounterMethodRate is the chance of an encounter method by version.
type EncounterMethodRate struct {
	EncounterMethod NamedAPIResource          `json:"encounter_method"`
	VersionDetails  []EncounterVersionDetails `json:"version_details"`
}

// EncounterVersionDetails is an encounter rate in one version.
type EncounterVersionDetails struct {
	Rate    int              `json:"rate"`
	Version NamedAPIResource `json:"version"`
}

// PokemonEncounter lists a Pokémon encounterable in an area.
type PokemonEncounter struct {
	Pokemon        NamedAPIResource         `json:"pokemon"`
	VersionDetails []VersionEncounterDetail `json:"version_details"`
}

// PalParkArea is an area of Pal Park in generation IV.
type PalParkArea struct {
	ID                int                       `json:"id"`
	Name              string                    `json:"name"`
	Names             []Name                    `json:"names"`
	PokemonEncounters []PalParkEncounterSpecies `json:"pokemon_encounters"`
}

// PalParkEncounterSpecies is a species catchable in a Pal Park area.
type PalParkEncounterSpecies struct {
	BaseScore      int              `json:"base_score"`
	Rate           int              `json:"rate"`
	PokemonSpecies NamedAPIResource `json:"pokemon_species"`
}

// Region is an organized area of the Pokémon world.
type Region struct {
	ID             int                `json:"id"`
	Locations      []NamedAPIResource `json:"locations"`
	Name           string             `json:"name"`
	MainGeneration NamedAPIResource   `json:"main_generation"`
	Names          []Name             `json:"names"`
	Pokedexes      []NamedAPIResource `json:"pokedexes"`
	VersionGroups  []NamedAPIResource `json:"version_groups"`
}
