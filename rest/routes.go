// Package rest implements the HTTP transport for the PokéAPI catalog:
// a fixed route table and a rate limited client for resource, index and
// media fetches.
package rest

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/FallenDeity/PokeLance/ports"
)

// DefaultBaseURL is the public PokéAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Group pairs an endpoint group name with the resource categories it owns.
type Group struct {
	Name       string
	Categories []string
}

// Endpoints is the service's route table. The set is fixed and known at
// startup; group and category names are validated against it at call time.
var Endpoints = []Group{
	{Name: "berry", Categories: []string{"berry", "berry-firmness", "berry-flavor"}},
	{Name: "contest", Categories: []string{"contest-type", "contest-effect", "super-contest-effect"}},
	{Name: "encounter", Categories: []string{"encounter-method", "encounter-condition", "encounter-condition-value"}},
	{Name: "evolution", Categories: []string{"evolution-chain", "evolution-trigger"}},
	{Name: "game", Categories: []string{"generation", "pokedex", "version", "version-group"}},
	{Name: "item", Categories: []string{"item", "item-attribute", "item-category", "item-fling-effect", "item-pocket"}},
	{Name: "location", Categories: []string{"location", "location-area", "pal-park-area", "region"}},
	{Name: "machine", Categories: []string{"machine"}},
	{Name: "move", Categories: []string{"move", "move-ailment", "move-battle-style", "move-category", "move-damage-class", "move-learn-method", "move-target"}},
	{Name: "pokemon", Categories: []string{"ability", "characteristic", "egg-group", "gender", "growth-rate", "nature", "pokeathlon-stat", "pokemon", "pokemon-color", "pokemon-form", "pokemon-habitat", "pokemon-shape", "pokemon-species", "stat", "type"}},
}

// idOnly lists the categories whose resources carry no name and are
// addressed by numeric id alone.
var idOnly = map[string]struct{}{
	"machine":              {},
	"evolution-chain":      {},
	"characteristic":       {},
	"contest-effect":       {},
	"super-contest-effect": {},
}

var categoryGroup = func() map[string]string {
	m := make(map[string]string)
	for _, g := range Endpoints {
		for _, c := range g.Categories {
			m[c] = g.Name
		}
	}
	return m
}()

// GroupNames returns the endpoint group names in route table order.
func GroupNames() []string {
	names := make([]string, 0, len(Endpoints))
	for _, g := range Endpoints {
		names = append(names, g.Name)
	}
	return names
}

// Categories returns every resource category in route table order.
func Categories() []string {
	var all []string
	for _, g := range Endpoints {
		all = append(all, g.Categories...)
	}
	return all
}

// CategoriesOf returns the categories owned by the named group.
func CategoriesOf(group string) ([]string, bool) {
	for _, g := range Endpoints {
		if g.Name == group {
			return append([]string(nil), g.Categories...), true
		}
	}
	return nil, false
}

// KnownGroup reports whether name is an endpoint group.
func KnownGroup(name string) bool {
	_, ok := CategoriesOf(name)
	return ok
}

// KnownCategory reports whether name is a resource category.
func KnownCategory(name string) bool {
	_, ok := categoryGroup[name]
	return ok
}

// GroupOf returns the endpoint group owning the given category.
func GroupOf(category string) (string, bool) {
	g, ok := categoryGroup[category]
	return g, ok
}

// IDOnly reports whether the category's resources carry no name.
func IDOnly(category string) bool {
	_, ok := idOnly[category]
	return ok
}

// ParseResourceURL splits a canonical resource URL such as
// "https://pokeapi.co/api/v2/berry/1/" into its category and identifier.
// The category must appear in the route table.
func ParseResourceURL(raw string) (category, ident string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", errors.Wrapf(ports.ErrConfiguration, "invalid resource url %q: %v", raw, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return "", "", errors.Wrapf(ports.ErrConfiguration, "resource url %q has no category/identifier path", raw)
	}
	category, ident = parts[len(parts)-2], parts[len(parts)-1]
	if !KnownCategory(category) {
		return "", "", errors.Wrapf(ports.ErrConfiguration, "unknown resource category %q in url %q", category, raw)
	}
	return category, ident, nil
}
