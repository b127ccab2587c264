package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// ItemGroup serves the item endpoint group.
type ItemGroup struct {
	ep           *cache.EndpointCache
	items        *cache.ResourceCache[models.Item]
	attributes   *cache.ResourceCache[models.ItemAttribute]
	categories   *cache.ResourceCache[models.ItemCategory]
	flingEffects *cache.ResourceCache[models.ItemFlingEffect]
	pockets      *cache.ResourceCache[models.ItemPocket]
}

func newItemGroup(c *Client) *ItemGroup {
	g := &ItemGroup{
		items:        newResource[models.Item](c, "item"),
		attributes:   newResource[models.ItemAttribute](c, "item-attribute"),
		categories:   newResource[models.ItemCategory](c, "item-category"),
		flingEffects: newResource[models.ItemFlingEffect](c, "item-fling-effect"),
		pockets:      newResource[models.ItemPocket](c, "item-pocket"),
	}
	g.ep = cache.NewEndpointCache("item", c.log, g.items, g.attributes, g.categories, g.flingEffects, g.pockets)
	return g
}

// Cache exposes the group's endpoint cache.
func (g *ItemGroup) Cache() *cache.EndpointCache { return g.ep }

// Item returns an item by name or decimal id.
func (g *ItemGroup) Item(ctx context.Context, ident string) (*models.Item, error) {
	return fetchOne(ctx, g.items, ident)
}

// Attribute returns an item attribute by name or decimal id.
func (g *ItemGroup) Attribute(ctx context.Context, ident string) (*models.ItemAttribute, error) {
	return fetchOne(ctx, g.attributes, ident)
}

// Category returns an item category by name or decimal id.
func (g *ItemGroup) Category(ctx context.Context, ident string) (*models.ItemCategory, error) {
	return fetchOne(ctx, g.categories, ident)
}

// FlingEffect returns an item fling effect by name or decimal id.
func (g *ItemGroup) FlingEffect(ctx context.Context, ident string) (*models.ItemFlingEffect, error) {
	return fetchOne(ctx, g.flingEffects, ident)
}

// Pocket returns an item pocket by name or decimal id.
func (g *ItemGroup) Pocket(ctx context.Context, ident string) (*models.ItemPocket, error) {
	return fetchOne(ctx, g.pockets, ident)
}
