package models

// EncounterMethod is a way wild Pokémon can be encountered.
type EncounterMethod struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
	Names []Name `json:"names"`
}

// EncounterCondition is a condition affecting which encounters occur.
type EncounterCondition struct {
	ID     int                `json:"id"`
	Name   string             `json:"name"`
	Names  []Name             `json:"names"`
	Values []NamedAPIResource `json:"values"`
}

// EncounterConditionValue is one state an encounter condition can be in.
type EncounterConditionValue struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Condition NamedAPIResource `json:"condition"`
	Names     []Name           `json:"names"`
}
