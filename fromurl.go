package pokelance

import (
	"context"

	"github.com/pkg/errors"

	"github.com/FallenDeity/PokeLance/ports"
	"github.com/FallenDeity/PokeLance/rest"
)

// Lookup resolves any known category by name or decimal id through its
// group's read-through cache. The result is the category's model
// pointer, e.g. *models.Pokemon for "pokemon"; callers type assert.
func (c *Client) Lookup(ctx context.Context, category, ident string) (any, error) {
	switch category {
	case "berry":
		return c.Berry.Berry(ctx, ident)
	case "berry-firmness":
		return c.Berry.Firmness(ctx, ident)
	case "berry-flavor":
		return c.Berry.Flavor(ctx, ident)
	case "contest-type":
		return c.Contest.Type(ctx, ident)
	case "contest-effect":
		return c.Contest.Effect(ctx, ident)
	case "super-contest-effect":
		return c.Contest.SuperEffect(ctx, ident)
	case "encounter-method":
		return c.Encounter.Method(ctx, ident)
	case "encounter-condition":
		return c.Encounter.Condition(ctx, ident)
	case "encounter-condition-value":
		return c.Encounter.ConditionValue(ctx, ident)
	case "evolution-chain":
		return c.Evolution.Chain(ctx, ident)
	case "evolution-trigger":
		return c.Evolution.Trigger(ctx, ident)
	case "generation":
		return c.Game.Generation(ctx, ident)
	case "pokedex":
		return c.Game.Pokedex(ctx, ident)
	case "version":
		return c.Game.Version(ctx, ident)
	case "version-group":
		return c.Game.VersionGroup(ctx, ident)
	case "item":
		return c.Item.Item(ctx, ident)
	case "item-attribute":
		return c.Item.Attribute(ctx, ident)
	case "item-category":
		return c.Item.Category(ctx, ident)
	case "item-fling-effect":
		return c.Item.FlingEffect(ctx, ident)
	case "item-pocket":
		return c.Item.Pocket(ctx, ident)
	case "location":
		return c.Location.Location(ctx, ident)
	case "location-area":
		return c.Location.Area(ctx, ident)
	case "pal-park-area":
		return c.Location.PalParkArea(ctx, ident)
	case "region":
		return c.Location.Region(ctx, ident)
	case "machine":
		return c.Machine.Machine(ctx, ident)
	case "move":
		return c.Move.Move(ctx, ident)
	case "move-ailment":
		return c.Move.Ailment(ctx, ident)
	case "move-battle-style":
		return c.Move.BattleStyle(ctx, ident)
	case "move-category":
		return c.Move.Category(ctx, ident)
	case "move-damage-class":
		return c.Move.DamageClass(ctx, ident)
	case "move-learn-method":
		return c.Move.LearnMethod(ctx, ident)
	case "move-target":
		return c.Move.Target(ctx, ident)
	case "ability":
		return c.Pokemon.Ability(ctx, ident)
	case "characteristic":
		return c.Pokemon.Characteristic(ctx, ident)
	case "egg-group":
		return c.Pokemon.EggGroup(ctx, ident)
	case "gender":
		return c.Pokemon.Gender(ctx, ident)
	case "growth-rate":
		return c.Pokemon.GrowthRate(ctx, ident)
	case "nature":
		return c.Pokemon.Nature(ctx, ident)
	case "pokeathlon-stat":
		return c.Pokemon.PokeathlonStat(ctx, ident)
	case "pokemon":
		return c.Pokemon.Pokemon(ctx, ident)
	case "pokemon-color":
		return c.Pokemon.Color(ctx, ident)
	case "pokemon-form":
		return c.Pokemon.Form(ctx, ident)
	case "pokemon-habitat":
		return c.Pokemon.Habitat(ctx, ident)
	case "pokemon-shape":
		return c.Pokemon.Shape(ctx, ident)
	case "pokemon-species":
		return c.Pokemon.Species(ctx, ident)
	case "stat":
		return c.Pokemon.Stat(ctx, ident)
	case "type":
		return c.Pokemon.Type(ctx, ident)
	}
	return nil, errors.Wrapf(ports.ErrConfiguration, "unknown resource category %q", category)
}

// FromURL resolves a cross reference URL embedded in another payload,
// e.g. a NamedAPIResource.URL, into its decoded object.
func (c *Client) FromURL(ctx context.Context, rawURL string) (any, error) {
	category, ident, err := rest.ParseResourceURL(rawURL)
	if err != nil {
		return nil, err
	}
	return c.Lookup(ctx, category, ident)
}
