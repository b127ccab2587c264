package models

// ContestType is a category judges rate contest moves by.
type ContestType struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	BerryFlavor NamedAPIResource `json:"berry_flavor"`
	Names       []ContestName    `json:"names"`
}

// ContestName is a localized contest type name with its display color.
type ContestName struct {
	Name     string           `json:"name"`
	Color    string           `json:"color"`
	Language NamedAPIResource `json:"language"`
}

// ContestEffect is an effect a move can have when used in a contest.
// Contest effects carry no name and are keyed by id.
type ContestEffect struct {
	ID                int          `json:"id"`
	Appeal            int          `json:"appeal"`
	Jam               int          `json:"jam"`
	EffectEntries     []Effect     `json:"effect_entries"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

// SuperContestEffect is an effect a move can have in a super contest.
// Super contest effects carry no name and are keyed by id.
type SuperContestEffect struct {
	ID                int                `json:"id"`
	Appeal            int                `json:"appeal"`
	FlavorTextEntries []FlavorText       `json:"flavor_text_entries"`
	Moves             []NamedAPIResource `json:"moves"`
}
