package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// PokemonGroup serves the pokemon endpoint group, the largest one.
type PokemonGroup struct {
	ep              *cache.EndpointCache
	pokemon         *cache.ResourceCache[models.Pokemon]
	abilities       *cache.ResourceCache[models.Ability]
	characteristics *cache.ResourceCache[models.Characteristic]
	eggGroups       *cache.ResourceCache[models.EggGroup]
	genders         *cache.ResourceCache[models.Gender]
	growthRates     *cache.ResourceCache[models.GrowthRate]
	natures         *cache.ResourceCache[models.Nature]
	pokeathlonStats *cache.ResourceCache[models.PokeathlonStat]
	colors          *cache.ResourceCache[models.PokemonColor]
	forms           *cache.ResourceCache[models.PokemonForm]
	habitats        *cache.ResourceCache[models.PokemonHabitat]
	shapes          *cache.ResourceCache[models.PokemonShape]
	species         *cache.ResourceCache[models.PokemonSpecies]
	stats           *cache.ResourceCache[models.Stat]
	types           *cache.ResourceCache[models.Type]
}

func newPokemonGroup(c *Client) *PokemonGroup {
	g := &PokemonGroup{
		pokemon:         newResource[models.Pokemon](c, "pokemon"),
		abilities:       newResource[models.Ability](c, "ability"),
		characteristics: newResource[models.Characteristic](c, "characteristic"),
		eggGroups:       newResource[models.EggGroup](c, "egg-group"),
		genders:         newResource[models.Gender](c, "gender"),
		growthRates:     newResource[models.GrowthRate](c, "growth-rate"),
		natures:         newResource[models.Nature](c, "nature"),
		pokeathlonStats: newResource[models.PokeathlonStat](c, "pokeathlon-stat"),
		colors:          newResource[models.PokemonColor](c, "pokemon-color"),
		forms:           newResource[models.PokemonForm](c, "pokemon-form"),
		habitats:        newResource[models.PokemonHabitat](c, "pokemon-habitat"),
		shapes:          newResource[models.PokemonShape](c, "pokemon-shape"),
		species:         newResource[models.PokemonSpecies](c, "pokemon-species"),
		stats:           newResource[models.Stat](c, "stat"),
		types:           newResource[models.Type](c, "type"),
	}
	g.ep = cache.NewEndpointCache("pokemon", c.log,
		g.abilities, g.characteristics, g.eggGroups, g.genders, g.growthRates,
		g.natures, g.pokeathlonStats, g.pokemon, g.colors, g.forms,
		g.habitats, g.shapes, g.species, g.stats, g.types)
	return g
}

// Cache exposes the group's endpoint cache.
func (g *PokemonGroup) Cache() *cache.EndpointCache { return g.ep }

// Pokemon returns a pokemon by name or decimal id.
func (g *PokemonGroup) Pokemon(ctx context.Context, ident string) (*models.Pokemon, error) {
	return fetchOne(ctx, g.pokemon, ident)
}

// Ability returns an ability by name or decimal id.
func (g *PokemonGroup) Ability(ctx context.Context, ident string) (*models.Ability, error) {
	return fetchOne(ctx, g.abilities, ident)
}

// Characteristic returns a characteristic by decimal id; they have no
// names.
func (g *PokemonGroup) Characteristic(ctx context.Context, ident string) (*models.Characteristic, error) {
	return fetchOne(ctx, g.characteristics, ident)
}

// EggGroup returns an egg group by name or decimal id.
func (g *PokemonGroup) EggGroup(ctx context.Context, ident string) (*models.EggGroup, error) {
	return fetchOne(ctx, g.eggGroups, ident)
}

// Gender returns a gender by name or decimal id.
func (g *PokemonGroup) Gender(ctx context.Context, ident string) (*models.Gender, error) {
	return fetchOne(ctx, g.genders, ident)
}

// GrowthRate returns a growth rate by name or decimal id.
func (g *PokemonGroup) GrowthRate(ctx context.Context, ident string) (*models.GrowthRate, error) {
	return fetchOne(ctx, g.growthRates, ident)
}

// Nature returns a nature by name or decimal id.
func (g *PokemonGroup) Nature(ctx context.Context, ident string) (*models.Nature, error) {
	return fetchOne(ctx, g.natures, ident)
}

// PokeathlonStat returns a pokeathlon stat by name or decimal id.
func (g *PokemonGroup) PokeathlonStat(ctx context.Context, ident string) (*models.PokeathlonStat, error) {
	return fetchOne(ctx, g.pokeathlonStats, ident)
}

// Color returns a pokemon color by name or decimal id.
func (g *PokemonGroup) Color(ctx context.Context, ident string) (*models.PokemonColor, error) {
	return fetchOne(ctx, g.colors, ident)
}

// Form returns a pokemon form by name or decimal id.
func (g *PokemonGroup) Form(ctx context.Context, ident string) (*models.PokemonForm, error) {
	return fetchOne(ctx, g.forms, ident)
}

// Habitat returns a pokemon habitat by name or decimal id.
func (g *PokemonGroup) Habitat(ctx context.Context, ident string) (*models.PokemonHabitat, error) {
	return fetchOne(ctx, g.habitats, ident)
}

// Shape returns a pokemon shape by name or decimal id.
func (g *PokemonGroup) Shape(ctx context.Context, ident string) (*models.PokemonShape, error) {
	return fetchOne(ctx, g.shapes, ident)
}

// Species returns a pokemon species by name or decimal id.
func (g *PokemonGroup) Species(ctx context.Context, ident string) (*models.PokemonSpecies, error) {
	return fetchOne(ctx, g.species, ident)
}

// Stat returns a stat by name or decimal id.
func (g *PokemonGroup) Stat(ctx context.Context, ident string) (*models.Stat, error) {
	return fetchOne(ctx, g.stats, ident)
}

// Type returns a pokemon type by name or decimal id.
func (g *PokemonGroup) Type(ctx context.Context, ident string) (*models.Type, error) {
	return fetchOne(ctx, g.types, ident)
}
