package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// BerryGroup serves the berry endpoint group.
type BerryGroup struct {
	ep       *cache.EndpointCache
	berries  *cache.ResourceCache[models.Berry]
	firmness *cache.ResourceCache[models.BerryFirmness]
	flavors  *cache.ResourceCache[models.BerryFlavor]
}

func newBerryGroup(c *Client) *BerryGroup {
	g := &BerryGroup{
		berries:  newResource[models.Berry](c, "berry"),
		firmness: newResource[models.BerryFirmness](c, "berry-firmness"),
		flavors:  newResource[models.BerryFlavor](c, "berry-flavor"),
	}
	g.ep = cache.NewEndpointCache("berry", c.log, g.berries, g.firmness, g.flavors)
	return g
}

// Cache exposes the group's endpoint cache for bulk loading, readiness
// and persistence.
func (g *BerryGroup) Cache() *cache.EndpointCache { return g.ep }

// Berry returns a berry by name or decimal id.
func (g *BerryGroup) Berry(ctx context.Context, ident string) (*models.Berry, error) {
	return fetchOne(ctx, g.berries, ident)
}

// Firmness returns a berry firmness by name or decimal id.
func (g *BerryGroup) Firmness(ctx context.Context, ident string) (*models.BerryFirmness, error) {
	return fetchOne(ctx, g.firmness, ident)
}

// Flavor returns a berry flavor by name or decimal id.
func (g *BerryGroup) Flavor(ctx context.Context, ident string) (*models.BerryFlavor, error) {
	return fetchOne(ctx, g.flavors, ident)
}
