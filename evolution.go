package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// EvolutionGroup serves the evolution endpoint group.
type EvolutionGroup struct {
	ep       *cache.EndpointCache
	chains   *cache.ResourceCache[models.EvolutionChain]
	triggers *cache.ResourceCache[models.EvolutionTrigger]
}

func newEvolutionGroup(c *Client) *EvolutionGroup {
	g := &EvolutionGroup{
		chains:   newResource[models.EvolutionChain](c, "evolution-chain"),
		triggers: newResource[models.EvolutionTrigger](c, "evolution-trigger"),
	}
	g.ep = cache.NewEndpointCache("evolution", c.log, g.chains, g.triggers)
	return g
}

// Cache exposes the group's endpoint cache.
func (g *EvolutionGroup) Cache() *cache.EndpointCache { return g.ep }

// Chain returns an evolution chain by decimal id; chains have no names.
func (g *EvolutionGroup) Chain(ctx context.Context, ident string) (*models.EvolutionChain, error) {
	return fetchOne(ctx, g.chains, ident)
}

// Trigger returns an evolution trigger by name or decimal id.
func (g *EvolutionGroup) Trigger(ctx context.Context, ident string) (*models.EvolutionTrigger, error) {
	return fetchOne(ctx, g.triggers, ident)
}
