package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// LocationGroup serves the location endpoint group.
type LocationGroup struct {
	ep           *cache.EndpointCache
	locations    *cache.ResourceCache[models.Location]
	areas        *cache.ResourceCache[models.LocationArea]
	palParkAreas *cache.ResourceCache[models.PalParkArea]
	regions      *cache.ResourceCache[models.Region]
}

func newLocationGroup(c *Client) *LocationGroup {
	g := &LocationGroup{
		locations:    newResource[models.Location](c, "location"),
		areas:        newResource[models.LocationArea](c, "location-area"),
		palParkAreas: newResource[models.PalParkArea](c, "pal-park-area"),
		regions:      newResource[models.Region](c, "region"),
	}
	g.ep = cache.NewEndpointCache("location", c.log, g.locations, g.areas, g.palParkAreas, g.regions)
	return g
}

// Cache exposes the group's endpoint cache.
func (g *LocationGroup) Cache() *cache.EndpointCache { return g.ep }

// Location returns a location by name or decimal id.
func (g *LocationGroup) Location(ctx context.Context, ident string) (*models.Location, error) {
	return fetchOne(ctx, g.locations, ident)
}

// Area returns a location area by name or decimal id.
func (g *LocationGroup) Area(ctx context.Context, ident string) (*models.LocationArea, error) {
	return fetchOne(ctx, g.areas, ident)
}

// PalParkArea returns a pal park area by name or decimal id.
func (g *LocationGroup) PalParkArea(ctx context.Context, ident string) (*models.PalParkArea, error) {
	return fetchOne(ctx, g.palParkAreas, ident)
}

// Region returns a region by name or decimal id.
func (g *LocationGroup) Region(ctx context.Context, ident string) (*models.Region, error) {
	return fetchOne(ctx, g.regions, ident)
}
