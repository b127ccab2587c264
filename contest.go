package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// ContestGroup serves the contest endpoint group.
type ContestGroup struct {
	ep           *cache.EndpointCache
	types        *cache.ResourceCache[models.ContestType]
	effects      *cache.ResourceCache[models.ContestEffect]
	superEffects *cache.ResourceCache[models.SuperContestEffect]
}

func newContestGroup(c *Client) *ContestGroup {
	g := &ContestGroup{
		types:        newResource[models.ContestType](c, "contest-type"),
		effects:      newResource[models.ContestEffect](c, "contest-effect"),
		superEffects: newResource[models.SuperContestEffect](c, "super-contest-effect"),
	}
	g.ep = cache.NewEndpointCache("contest", c.log, g.types, g.effects, g.superEffects)
	return g
}

// Cache exposes the group's endpoint cache.
func (g *ContestGroup) Cache() *cache.EndpointCache { return g.ep }

// Type returns a contest type by name or decimal id.
func (g *ContestGroup) Type(ctx context.Context, ident string) (*models.ContestType, error) {
	return fetchOne(ctx, g.types, ident)
}

// Effect returns a contest effect by decimal id; effects have no names.
func (g *ContestGroup) Effect(ctx context.Context, ident string) (*models.ContestEffect, error) {
	return fetchOne(ctx, g.effects, ident)
}

// SuperEffect returns a super contest effect by decimal id.
func (g *ContestGroup) SuperEffect(ctx context.Context, ident string) (*models.SuperContestEffect, error) {
	return fetchOne(ctx, g.superEffects, ident)
}
