package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// EncounterGroup serves the encounter endpoint group.
type EncounterGroup struct {
	ep              *cache.EndpointCache
	methods         *cache.ResourceCache[models.EncounterMethod]
	conditions      *cache.ResourceCache[models.EncounterCondition]
	conditionValues *cache.ResourceCache[models.EncounterConditionValue]
}

func newEncounterGroup(c *Client) *EncounterGroup {
	g := &EncounterGroup{
		methods:         newResource[models.EncounterMethod](c, "encounter-method"),
		conditions:      newResource[models.EncounterCondition](c, "encounter-condition"),
		conditionValues: newResource[models.EncounterConditionValue](c, "encounter-condition-value"),
	}
	g.ep = cache.NewEndpointCache("encounter", c.log, g.methods, g.conditions, g.conditionValues)
	return g
}

// Cache exposes the group's endpoint cache.
func (g *EncounterGroup) Cache() *cache.EndpointCache { return g.ep }

// Method returns an encounter method by name or decimal id.
func (g *EncounterGroup) Method(ctx context.Context, ident string) (*models.EncounterMethod, error) {
	return fetchOne(ctx, g.methods, ident)
}

// Condition returns an encounter condition by name or decimal id.
func (g *EncounterGroup) Condition(ctx context.Context, ident string) (*models.EncounterCondition, error) {
	return fetchOne(ctx, g.conditions, ident)
}

// ConditionValue returns an encounter condition value by name or
// decimal id.
func (g *EncounterGroup) ConditionValue(ctx context.Context, ident string) (*models.EncounterConditionValue, error) {
	return fetchOne(ctx, g.conditionValues, ident)
}
