package models

// Move is a technique Pokémon use in battle.
type Move struct {
	ID                 int                    `json:"id"`
	Name               string                 `json:"name"`
	Accuracy           *int                   `json:"accuracy"`
	EffectChance       *int                   `json:"effect_chance"`
	PP                 *int                   `json:"pp"`
	Priority           int                    `json:"priority"`
	Power              *int                   `json:"power"`
	ContestCombos      *ContestComboSets      `json:"contest_combos"`
	ContestType        NamedAPIResource       `json:"contest_type"`
	ContestEffect      APIResource            `json:"contest_effect"`
	DamageClass        NamedAPIResource       `json:"damage_class"`
	EffectEntries      []VerboseEffect        `json:"effect_entries"`
	EffectChanges      []AbilityEffectChange  `json:"effect_changes"`
	LearnedByPokemon   []NamedAPIResource     `json:"learned_by_pokemon"`
	FlavorTextEntries  []MoveFlavorText       `json:"flavor_text_entries"`
	Generation         NamedAPIResource       `json:"generation"`
	Machines           []MachineVersionDetail `json:"machines"`
	Meta               *MoveMetaData          `json:"meta"`
	Names              []Name                 `json:"names"`
	PastValues         []PastMoveStatValues   `json:"past_values"`
	StatChanges        []MoveStatChange       `json:"stat_changes"`
	SuperContestEffect APIResource            `json:"super_contest_effect"`
	Target             NamedAPIResource       `json:"target"`
	Type               NamedAPIResource       `json:"type"`
}

// ContestComboSets lists move combos in normal and super contests.
type ContestComboSets struct {
	Normal ContestComboDetail `json:"normal"`
	Super  ContestComboDetail `json:"super"`
}

// ContestComboDetail lists moves that combo before or after this one.
type ContestComboDetail struct {
	UseBefore []NamedAPIResource `json:"use_before"`
	UseAfter  []NamedAPIResource `json:"use_after"`
}

// MoveFlavorText is a localized move flavor text per version group.
type MoveFlavorText struct {
	FlavorText   string           `json:"flavor_text"`
	Language     NamedAPIResource `json:"language"`
	VersionGroup NamedAPIResource `json:"version_group"`
}

// MoveMetaData carries battle mechanics metadata for a move.
type MoveMetaData struct {
	Ailment       NamedAPIResource `json:"ailment"`
	Category      NamedAPIResource `json:"category"`
	MinHits       *int             `json:"min_hits"`
	MaxHits       *int             `json:"max_hits"`
	MinTurns      *int             `json:"min_turns"`
	MaxTurns      *int             `json:"max_turns"`
	Drain         int              `json:"drain"`
	Healing       int              `json:"healing"`
	CritRate      int              `json:"crit_rate"`
	AilmentChance int              `json:"ailment_chance"`
	FlinchChance  int              `json:"flinch_chance"`
	StatChance    int              `json:"stat_chance"`
}

// MoveStatChange is a stat change a move causes.
type MoveStatChange struct {
	Change int              `json:"change"`
	Stat   NamedAPIResource `json:"stat"`
}

// PastMoveStatValues records move stats as they were in a past
// version group.
type PastMoveStatValues struct {
	Accuracy      *int             `json:"accuracy"`
	EffectChance  *int             `json:"effect_chance"`
	Power         *int             `json:"power"`
	PP            *int             `json:"pp"`
	EffectEntries []VerboseEffect  `json:"effect_entries"`
	Type          NamedAPIResource `json:"type"`
	VersionGroup  NamedAPIResource `json:"version_group"`
}

// MoveAilment is a status condition a move can inflict.
type MoveAilment struct {
	ID    int                `json:"id"`
	Name  string             `json:"name"`
	Moves []NamedAPIResource `json:"moves"`
	Names []Name             `json:"names"`
}

// MoveBattleStyle is a battle style in the battle palace.
type MoveBattleStyle struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Names []Name `json:"names"`
}

// MoveCategory is a broad move category, such as "damage+ailment".
type MoveCategory struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Moves        []NamedAPIResource `json:"moves"`
	Descriptions []Description      `json:"descriptions"`
}

// MoveDamageClass is a damage class: physical, special or status.
type MoveDamageClass struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Descriptions []Description      `json:"descriptions"`
	Moves        []NamedAPIResource `json:"moves"`
	Names        []Name             `json:"names"`
}

// MoveLearnMethod is a way Pokémon learn moves.
type MoveLearnMethod struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	Descriptions  []Description      `json:"descriptions"`
	Names         []Name             `json:"names"`
	VersionGroups []NamedAPIResource `json:"version_groups"`
}

// MoveTarget is what a move can be aimed at.
type MoveTarget struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Descriptions []Description      `json:"descriptions"`
	Moves        []NamedAPIResource `json:"moves"`
	Names        []Name             `json:"names"`
}
