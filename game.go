package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// GameGroup serves the game endpoint group.
type GameGroup struct {
	ep            *cache.EndpointCache
	generations   *cache.ResourceCache[models.Generation]
	pokedexes     *cache.ResourceCache[models.Pokedex]
	versions      *cache.ResourceCache[models.Version]
	versionGroups *cache.ResourceCache[models.VersionGroup]
}

func newGameGroup(c *Client) *GameGroup {
	g := &GameGroup{
		generations:   newResource[models.Generation](c, "generation"),
		pokedexes:     newResource[models.Pokedex](c, "pokedex"),
		versions:      newResource[models.Version](c, "version"),
		versionGroups: newResource[models.VersionGroup](c, "version-group"),
	}
	g.ep = cache.NewEndpointCache("game", c.log, g.generations, g.pokedexes, g.versions, g.versionGroups)
	return g
}

// Cache exposes the group's endpoint cache.
func (g *GameGroup) Cache() *cache.EndpointCache { return g.ep }

// Generation returns a generation by name or decimal id.
func (g *GameGroup) Generation(ctx context.Context, ident string) (*models.Generation, error) {
	return fetchOne(ctx, g.generations, ident)
}

// Pokedex returns a pokedex by name or decimal id.
func (g *GameGroup) Pokedex(ctx context.Context, ident string) (*models.Pokedex, error) {
	return fetchOne(ctx, g.pokedexes, ident)
}

// Version returns a game version by name or decimal id.
func (g *GameGroup) Version(ctx context.Context, ident string) (*models.Version, error) {
	return fetchOne(ctx, g.versions, ident)
}

// VersionGroup returns a version group by name or decimal id.
func (g *GameGroup) VersionGroup(ctx context.Context, ident string) (*models.VersionGroup, error) {
	return fetchOne(ctx, g.versionGroups, ident)
}
