package models

// Machine is a TM or HM that teaches a move in one version group.
// Machines carry no name and are keyed by id.
type Machine struct {
	ID           int              `json:"id"`
	Item         NamedAPIResource `json:"item"`
	Move         NamedAPIResource `json:"move"`
	VersionGroup NamedAPIResource `json:"version_group"`
}
