package models

// Ability is a passive effect a Pokémon can have in battle.
type Ability struct {
	ID                int                   `json:"id"`
	Name              string                `json:"name"`
	IsMainSeries      bool                  `json:"is_main_series"`
	Generation        NamedAPIResource      `json:"generation"`
	Names             []Name                `json:"names"`
	EffectEntries     []VerboseEffect       `json:"effect_entries"`
	EffectChanges     []AbilityEffectChange `json:"effect_changes"`
	FlavorTextEntries []AbilityFlavorText   `json:"flavor_text_entries"`
	Pokemon           []AbilityPokemon      `json:"pokemon"`
}

// AbilityFlavorText is a localized ability flavor text per version group.
type AbilityFlavorText struct {
	FlavorText   string           `json:"flavor_text"`
	Language     NamedAPIResource `json:"language"`
	VersionGroup NamedAPIResource `json:"version_group"`
}

// AbilityPokemon lists a Pokémon that can have an ability.
type AbilityPokemon struct {
	IsHidden bool             `json:"is_hidden"`
	Slot     int              `json:"slot"`
	Pokemon  NamedAPIResource `json:"pokemon"`
}

// Characteristic hints at a Pokémon's highest IV. Characteristics carry
// no name and are keyed by id.
type Characteristic struct {
	ID             int              `json:"id"`
	GeneModulo     int              `json:"gene_modulo"`
	PossibleValues []int            `json:"possible_values"`
	HighestStat    NamedAPIResource `json:"highest_stat"`
	Descriptions   []Description    `json:"descriptions"`
}

// EggGroup is a breeding compatibility group.
type EggGroup struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	Names          []Name             `json:"names"`
	PokemonSpecies []NamedAPIResource `json:"pokemon_species"`
}

// Gender is a Pokémon gender.
type Gender struct {
	ID                    int                    `json:"id"`
	Name                  string                 `json:"name"`
	PokemonSpeciesDetails []PokemonSpeciesGender `json:"pokemon_species_details"`
	RequiredForEvolution  []NamedAPIResource     `json:"required_for_evolution"`
}

// PokemonSpeciesGender is a species' chance of being a given gender.
type PokemonSpeciesGender struct {
	Rate           int              `json:"rate"`
	PokemonSpecies NamedAPIResource `json:"pokemon_species"`
}

// GrowthRate is the speed at which a species gains levels.
type GrowthRate struct {
	ID             int                         `json:"id"`
	Name           string                      `json:"name"`
	Formula        string                      `json:"formula"`
	Descriptions   []Description               `json:"descriptions"`
	Levels         []GrowthRateExperienceLevel `json:"levels"`
	PokemonSpecies []NamedAPIResource          `json:"pokemon_species"`
}

// GrowthRateExperienceLevel is the experience needed for one level.
type GrowthRateExperienceLevel struct {
	Level      int `json:"level"`
	Experience int `json:"experience"`
}

// Nature influences stat growth and flavor preferences.
type Nature struct {
	ID                         int                         `json:"id"`
	Name                       string                      `json:"name"`
	DecreasedStat              NamedAPIResource            `json:"decreased_stat"`
	IncreasedStat              NamedAPIResource            `json:"increased_stat"`
	HatesFlavor                NamedAPIResource            `json:"hates_flavor"`
	LikesFlavor                NamedAPIResource            `json:"likes_flavor"`
	PokeathlonStatChanges      []NatureStatChange          `json:"pokeathlon_stat_changes"`
	MoveBattleStylePreferences []MoveBattleStylePreference `json:"move_battle_style_preferences"`
	Names                      []Name                      `json:"names"`
}

// NatureStatChange is a nature's effect on a pokeathlon stat.
type NatureStatChange struct {
	MaxChange      int              `json:"max_change"`
	PokeathlonStat NamedAPIResource `json:"pokeathlon_stat"`
}

// MoveBattleStylePreference is a nature's battle style bias by HP.
type MoveBattleStylePreference struct {
	LowHPPreference  int              `json:"low_hp_preference"`
	HighHPPreference int              `json:"high_hp_preference"`
	MoveBattleStyle  NamedAPIResource `json:"move_battle_style"`
}

// PokeathlonStat is a pokeathlon performance stat.
type PokeathlonStat struct {
	ID               int                            `json:"id"`
	Name             string                         `json:"name"`
	Names            []Name                         `json:"names"`
	AffectingNatures NaturePokeathlonStatAffectSets `json:"affecting_natures"`
}

// NaturePokeathlonStatAffectSets splits affecting natures by direction.
type NaturePokeathlonStatAffectSets struct {
	Increase []NaturePokeathlonStatAffect `json:"increase"`
	Decrease []NaturePokeathlonStatAffect `json:"decrease"`
}

// NaturePokeathlonStatAffect is one nature's maximum effect on a stat.
type NaturePokeathlonStatAffect struct {
	MaxChange int              `json:"max_change"`
	Nature    NamedAPIResource `json:"nature"`
}

// Pokemon is a single catchable creature with its battle data.
type Pokemon struct {
	ID                     int                `json:"id"`
	Name                   string             `json:"name"`
	BaseExperience         int                `json:"base_experience"`
	Height                 int                `json:"height"`
	IsDefault              bool               `json:"is_default"`
	Order                  int                `json:"order"`
	Weight                 int                `json:"weight"`
	Abilities              []PokemonAbility   `json:"abilities"`
	Forms                  []NamedAPIResource `json:"forms"`
	GameIndices            []VersionGameIndex `json:"game_indices"`
	HeldItems              []PokemonHeldItem  `json:"held_items"`
	LocationAreaEncounters string             `json:"location_area_encounters"`
	Moves                  []PokemonMove      `json:"moves"`
	PastTypes              []PokemonTypePast  `json:"past_types"`
	Sprites                PokemonSprites     `json:"sprites"`
	Cries                  PokemonCries       `json:"cries"`
	Species                NamedAPIResource   `json:"species"`
	Stats                  []PokemonStat      `json:"stats"`
	Types                  []PokemonType      `json:"types"`
}

// PokemonAbility is an ability slot on a Pokémon.
type PokemonAbility struct {
	IsHidden bool             `json:"is_hidden"`
	Slot     int              `json:"slot"`
	Ability  NamedAPIResource `json:"ability"`
}

// PokemonHeldItem is an item a Pokémon may hold in the wild.
type PokemonHeldItem struct {
	Item           NamedAPIResource         `json:"item"`
	VersionDetails []PokemonHeldItemVersion `json:"version_details"`
}

// PokemonHeldItemVersion is a hold rarity in one version.
type PokemonHeldItemVersion struct {
	Version NamedAPIResource `json:"version"`
	Rarity  int              `json:"rarity"`
}

// PokemonMove is a move a Pokémon can learn.
type PokemonMove struct {
	Move                NamedAPIResource     `json:"move"`
	VersionGroupDetails []PokemonMoveVersion `json:"version_group_details"`
}

// PokemonMoveVersion is how a move is learned in one version group.
type PokemonMoveVersion struct {
	MoveLearnMethod NamedAPIResource `json:"move_learn_method"`
	VersionGroup    NamedAPIResource `json:"version_group"`
	LevelLearnedAt  int              `json:"level_learned_at"`
}

// PokemonTypePast records a Pokémon's types in a past generation.
type PokemonTypePast struct {
	Generation NamedAPIResource `json:"generation"`
	Types      []PokemonType    `json:"types"`
}

// PokemonSprites holds a Pokémon's sprite URLs. Entries are null for
// sprites that do not exist.
type PokemonSprites struct {
	BackDefault      *string      `json:"back_default"`
	BackFemale       *string      `json:"back_female"`
	BackShiny        *string      `json:"back_shiny"`
	BackShinyFemale  *string      `json:"back_shiny_female"`
	FrontDefault     *string      `json:"front_default"`
	FrontFemale      *string      `json:"front_female"`
	FrontShiny       *string      `json:"front_shiny"`
	FrontShinyFemale *string      `json:"front_shiny_female"`
	Other            OtherSprites `json:"other"`
}

// OtherSprites holds alternative sprite sets.
type OtherSprites struct {
	DreamWorld      DreamWorldSprites `json:"dream_world"`
	Home            HomeSprites       `json:"home"`
	OfficialArtwork ArtworkSprites    `json:"official-artwork"`
	Showdown        ShowdownSprites   `json:"showdown"`
}

// DreamWorldSprites holds the dream world sprite set.
type DreamWorldSprites struct {
	FrontDefault *string `json:"front_default"`
	FrontFemale  *string `json:"front_female"`
}

// HomeSprites holds the Pokémon HOME sprite set.
type HomeSprites struct {
	FrontDefault     *string `json:"front_default"`
	FrontFemale      *string `json:"front_female"`
	FrontShiny       *string `json:"front_shiny"`
	FrontShinyFemale *string `json:"front_shiny_female"`
}

// ArtworkSprites holds the official artwork renders.
type ArtworkSprites struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

// ShowdownSprites holds the animated showdown sprite set.
type ShowdownSprites struct {
	BackDefault      *string `json:"back_default"`
	BackFemale       *string `json:"back_female"`
	BackShiny        *string `json:"back_shiny"`
	BackShinyFemale  *string `json:"back_shiny_female"`
	FrontDefault     *string `json:"front_default"`
	FrontFemale      *string `json:"front_female"`
	FrontShiny       *string `json:"front_shiny"`
	FrontShinyFemale *string `json:"front_shiny_female"`
}

// PokemonCries holds the cry audio URLs.
type PokemonCries struct {
	Latest string `json:"latest"`
	Legacy string `json:"legacy"`
}

// PokemonStat is one base stat value with its effort yield.
type PokemonStat struct {
	Stat     NamedAPIResource `json:"stat"`
	Effort   int              `json:"effort"`
	BaseStat int              `json:"base_stat"`
}

// PokemonType is a type slot on a Pokémon.
type PokemonType struct {
	Slot int              `json:"slot"`
	Type NamedAPIResource `json:"type"`
}

// PokemonColor is a species' pokedex color.
type PokemonColor struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	Names          []Name             `json:"names"`
	PokemonSpecies []NamedAPIResource `json:"pokemon_species"`
}

// PokemonForm is an alternative form of a Pokémon.
type PokemonForm struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Order        int                `json:"order"`
	FormOrder    int                `json:"form_order"`
	IsDefault    bool               `json:"is_default"`
	IsBattleOnly bool               `json:"is_battle_only"`
	IsMega       bool               `json:"is_mega"`
	FormName     string             `json:"form_name"`
	Pokemon      NamedAPIResource   `json:"pokemon"`
	Types        []PokemonFormType  `json:"types"`
	Sprites      PokemonFormSprites `json:"sprites"`
	VersionGroup NamedAPIResource   `json:"version_group"`
	Names        []Name             `json:"names"`
	FormNames    []Name             `json:"form_names"`
}

// PokemonFormType is a type slot on a Pokémon form.
type PokemonFormType struct {
	Slot int              `json:"slot"`
	Type NamedAPIResource `json:"type"`
}

// PokemonFormSprites holds a form's sprite URLs.
type PokemonFormSprites struct {
	BackDefault  *string `json:"back_default"`
	BackShiny    *string `json:"back_shiny"`
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

// PokemonHabitat is the habitat a species lives in.
type PokemonHabitat struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	Names          []Name             `json:"names"`
	PokemonSpecies []NamedAPIResource `json:"pokemon_species"`
}

// PokemonShape is a species' body shape.
type PokemonShape struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	AwesomeNames   []AwesomeName      `json:"awesome_names"`
	Names          []Name             `json:"names"`
	PokemonSpecies []NamedAPIResource `json:"pokemon_species"`
}

// AwesomeName is a localized "scientific" shape name.
type AwesomeName struct {
	AwesomeName string           `json:"awesome_name"`
	Language    NamedAPIResource `json:"language"`
}

// PokemonSpecies is the species-level data shared by all of a Pokémon's
// varieties.
type PokemonSpecies struct {
	ID                   int                      `json:"id"`
	Name                 string                   `json:"name"`
	Order                int                      `json:"order"`
	GenderRate           int                      `json:"gender_rate"`
	CaptureRate          int                      `json:"capture_rate"`
	BaseHappiness        int                      `json:"base_happiness"`
	IsBaby               bool                     `json:"is_baby"`
	IsLegendary          bool                     `json:"is_legendary"`
	IsMythical           bool                     `json:"is_mythical"`
	HatchCounter         int                      `json:"hatch_counter"`
	HasGenderDifferences bool                     `json:"has_gender_differences"`
	FormsSwitchable      bool                     `json:"forms_switchable"`
	GrowthRate           NamedAPIResource         `json:"growth_rate"`
	PokedexNumbers       []PokemonSpeciesDexEntry `json:"pokedex_numbers"`
	EggGroups            []NamedAPIResource       `json:"egg_groups"`
	Color                NamedAPIResource         `json:"color"`
	Shape                NamedAPIResource         `json:"shape"`
	EvolvesFromSpecies   NamedAPIResource         `json:"evolves_from_species"`
	EvolutionChain       APIResource              `json:"evolution_chain"`
	Habitat              NamedAPIResource         `json:"habitat"`
	Generation           NamedAPIResource         `json:"generation"`
	Names                []Name                   `json:"names"`
	PalParkEncounters    []PalParkEncounterArea   `json:"pal_park_encounters"`
	FlavorTextEntries    []FlavorText             `json:"flavor_text_entries"`
	FormDescriptions     []Description            `json:"form_descriptions"`
	Genera               []Genus                  `json:"genera"`
	Varieties            []PokemonSpeciesVariety  `json:"varieties"`
}

// Genus is a localized species genus, e.g. "Seed Pokémon".
type Genus struct {
	Genus    string           `json:"genus"`
	Language NamedAPIResource `json:"language"`
}

// PokemonSpeciesDexEntry is a species' number in one pokedex.
type PokemonSpeciesDexEntry struct {
	EntryNumber int              `json:"entry_number"`
	Pokedex     NamedAPIResource `json:"pokedex"`
}

// PalParkEncounterArea is where a species appears in Pal Park.
type PalParkEncounterArea struct {
	BaseScore int              `json:"base_score"`
	Rate      int              `json:"rate"`
	Area      NamedAPIResource `json:"area"`
}

// PokemonSpeciesVariety is one concrete Pokémon of a species.
type PokemonSpeciesVariety struct {
	IsDefault bool             `json:"is_default"`
	Pokemon   NamedAPIResource `json:"pokemon"`
}

// Stat is a battle stat such as attack or speed.
type Stat struct {
	ID               int                  `json:"id"`
	Name             string               `json:"name"`
	GameIndex        int                  `json:"game_index"`
	IsBattleOnly     bool                 `json:"is_battle_only"`
	AffectingMoves   MoveStatAffectSets   `json:"affecting_moves"`
	AffectingNatures NatureStatAffectSets `json:"affecting_natures"`
	Characteristics  []APIResource        `json:"characteristics"`
	MoveDamageClass  NamedAPIResource     `json:"move_damage_class"`
	Names            []Name               `json:"names"`
}

// MoveStatAffectSets splits affecting moves by direction.
type MoveStatAffectSets struct {
	Increase []MoveStatAffect `json:"increase"`
	Decrease []MoveStatAffect `json:"decrease"`
}

// MoveStatAffect is one move's maximum effect on a stat.
type MoveStatAffect struct {
	Change int              `json:"change"`
	Move   NamedAPIResource `json:"move"`
}

// NatureStatAffectSets splits affecting natures by direction.
type NatureStatAffectSets struct {
	Increase []NamedAPIResource `json:"increase"`
	Decrease []NamedAPIResource `json:"decrease"`
}

// Type is an elemental type with its damage relations.
type Type struct {
	ID                  int                   `json:"id"`
	Name                string                `json:"name"`
	DamageRelations     TypeRelations         `json:"damage_relations"`
	PastDamageRelations []TypeRelationsPast   `json:"past_damage_relations"`
	GameIndices         []GenerationGameIndex `json:"game_indices"`
	Generation          NamedAPIResource      `json:"generation"`
	MoveDamageClass     NamedAPIResource      `json:"move_damage_class"`
	Names               []Name                `json:"names"`
	Pokemon             []TypePokemon         `json:"pokemon"`
	Moves               []NamedAPIResource    `json:"moves"`
}

// TypePokemon lists a Pokémon of a given type.
type TypePokemon struct {
	Slot    int              `json:"slot"`
	Pokemon NamedAPIResource `json:"pokemon"`
}

// TypeRelations lists damage multipliers between types.
type TypeRelations struct {
	NoDamageTo       []NamedAPIResource `json:"no_damage_to"`
	HalfDamageTo     []NamedAPIResource `json:"half_damage_to"`
	DoubleDamageTo   []NamedAPIResource `json:"double_damage_to"`
	NoDamageFrom     []NamedAPIResource `json:"no_damage_from"`
	HalfDamageFrom   []NamedAPIResource `json:"half_damage_from"`
	DoubleDamageFrom []NamedAPIResource `json:"double_damage_from"`
}

// TypeRelationsPast records damage relations as of a past generation.
type TypeRelationsPast struct {
	Generation      NamedAPIResource `json:"generation"`
	DamageRelations TypeRelations    `json:"damage_relations"`
}
