package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// MoveGroup serves the move endpoint group.
type MoveGroup struct {
	ep           *cache.EndpointCache
	moves        *cache.ResourceCache[models.Move]
	ailments     *cache.ResourceCache[models.MoveAilment]
	battleStyles *cache.ResourceCache[models.MoveBattleStyle]
	categories   *cache.ResourceCache[models.MoveCategory]
	damageClass  *cache.ResourceCache[models.MoveDamageClass]
	learnMethods *cache.ResourceCache[models.MoveLearnMethod]
	targets      *cache.ResourceCache[models.MoveTarget]
}

func newMoveGroup(c *Client) *MoveGroup {
	g := &MoveGroup{
		moves:        newResource[models.Move](c, "move"),
		ailments:     newResource[models.MoveAilment](c, "move-ailment"),
		battleStyles: newResource[models.MoveBattleStyle](c, "move-battle-style"),
		categories:   newResource[models.MoveCategory](c, "move-category"),
		damageClass:  newResource[models.MoveDamageClass](c, "move-damage-class"),
		learnMethods: newResource[models.MoveLearnMethod](c, "move-learn-method"),
		targets:      newResource[models.MoveTarget](c, "move-target"),
	}
	g.ep = cache.NewEndpointCache("move", c.log,
		g.moves, g.ailments, g.battleStyles, g.categories, g.damageClass, g.learnMethods, g.targets)
	return g
}

// Cache exposes the group's endpoint cache.
func (g *MoveGroup) Cache() *cache.EndpointCache { return g.ep }

// Move returns a move by name or decimal id.
func (g *MoveGroup) Move(ctx context.Context, ident string) (*models.Move, error) {
	return fetchOne(ctx, g.moves, ident)
}

// Ailment returns a move ailment by name or decimal id.
func (g *MoveGroup) Ailment(ctx context.Context, ident string) (*models.MoveAilment, error) {
	return fetchOne(ctx, g.ailments, ident)
}

// BattleStyle returns a move battle style by name or decimal id.
func (g *MoveGroup) BattleStyle(ctx context.Context, ident string) (*models.MoveBattleStyle, error) {
	return fetchOne(ctx, g.battleStyles, ident)
}

// Category returns a move category by name or decimal id.
func (g *MoveGroup) Category(ctx context.Context, ident string) (*models.MoveCategory, error) {
	return fetchOne(ctx, g.categories, ident)
}

// DamageClass returns a move damage class by name or decimal id.
func (g *MoveGroup) DamageClass(ctx context.Context, ident string) (*models.MoveDamageClass, error) {
	return fetchOne(ctx, g.damageClass, ident)
}

// LearnMethod returns a move learn method by name or decimal id.
func (g *MoveGroup) LearnMethod(ctx context.Context, ident string) (*models.MoveLearnMethod, error) {
	return fetchOne(ctx, g.learnMethods, ident)
}

// Target returns a move target by name or decimal id.
func (g *MoveGroup) Target(ctx context.Context, ident string) (*models.MoveTarget, error) {
	return fetchOne(ctx, g.targets, ident)
}
