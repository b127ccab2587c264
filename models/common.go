// Package models defines the typed records the PokéAPI catalog serves.
// The structs mirror the service's JSON wire format; unknown fields are
// ignored on decode so newer API revisions stay readable.
package models

import (
	"strconv"
	"strings"
)

// NamedAPIResource is a reference to another catalog resource that carries
// a human readable name alongside its canonical URL.
type NamedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID extracts the numeric id from the reference URL. Returns 0 when the
// URL does not end in a numeric path segment.
func (r NamedAPIResource) ID() int {
	return idFromURL(r.URL)
}

// APIResource is a reference to an unnamed catalog resource.
type APIResource struct {
	URL string `json:"url"`
}

// ID extracts the numeric id from the reference URL.
func (r APIResource) ID() int {
	return idFromURL(r.URL)
}

// NamedAPIResourceList is one page of a paginated list endpoint.
type NamedAPIResourceList struct {
	Count    int                `json:"count"`
	Next     *string            `json:"next"`
	Previous *string            `json:"previous"`
	Results  []NamedAPIResource `json:"results"`
}

// APIResourceList is one page of a paginated list endpoint for unnamed
// resources such as evolution chains and machines.
type APIResourceList struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []APIResource `json:"results"`
}

// Language is the catalog's language resource, referenced by every
// localized field.
type Language struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Official bool   `json:"official"`
	ISO639   string `json:"iso639"`
	ISO3166  string `json:"iso3166"`
	Names    []Name `json:"names"`
}

// Name is a localized name for a resource.
type Name struct {
	Name     string           `json:"name"`
	Language NamedAPIResource `json:"language"`
}

// Description is a localized description for a resource.
type Description struct {
	Description string           `json:"description"`
	Language    NamedAPIResource `json:"language"`
}

// Effect is a localized effect text.
type Effect struct {
	Effect   string           `json:"effect"`
	Language NamedAPIResource `json:"language"`
}

// VerboseEffect is a localized effect text with a short form.
type VerboseEffect struct {
	Effect      string           `json:"effect"`
	ShortEffect string           `json:"short_effect"`
	Language    NamedAPIResource `json:"language"`
}

// FlavorText is a localized flavor text entry tied to a game version.
type FlavorText struct {
	FlavorText string           `json:"flavor_text"`
	Language   NamedAPIResource `json:"language"`
	Version    NamedAPIResource `json:"version"`
}

// VersionGroupFlavorText is a localized flavor text entry tied to a
// version group rather than a single version.
type VersionGroupFlavorText struct {
	Text         string           `json:"text"`
	Language     NamedAPIResource `json:"language"`
	VersionGroup NamedAPIResource `json:"version_group"`
}

// GenerationGameIndex maps a resource to its internal id within one
// generation.
type GenerationGameIndex struct {
	GameIndex  int              `json:"game_index"`
	Generation NamedAPIResource `json:"generation"`
}

// VersionGameIndex maps a resource to its internal id within one version.
type VersionGameIndex struct {
	GameIndex int              `json:"game_index"`
	Version   NamedAPIResource `json:"version"`
}

// Encounter describes the conditions of a single wild encounter.
type Encounter struct {
	MinLevel        int                `json:"min_level"`
	MaxLevel        int                `json:"max_level"`
	ConditionValues []NamedAPIResource `json:"condition_values"`
	Chance          int                `json:"chance"`
	Method          NamedAPIResource   `json:"method"`
}

// VersionEncounterDetail groups encounters by game version.
type VersionEncounterDetail struct {
	Version          NamedAPIResource `json:"version"`
	MaxChance        int              `json:"max_chance"`
	EncounterDetails []Encounter      `json:"encounter_details"`
}

// MachineVersionDetail references the machine teaching a move in one
// version group.
type MachineVersionDetail struct {
	Machine      APIResource      `json:"machine"`
	VersionGroup NamedAPIResource `json:"version_group"`
}

// AbilityEffectChange records how an effect text changed in a past
// version group.
type AbilityEffectChange struct {
	EffectEntries []Effect         `json:"effect_entries"`
	VersionGroup  NamedAPIResource `json:"version_group"`
}

// idFromURL parses the trailing numeric path segment of a canonical
// resource URL, e.g. ".../api/v2/berry/1/" yields 1.
func idFromURL(url string) int {
	trimmed := strings.TrimSuffix(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || id < 0 {
		return 0
	}
	return id
}
