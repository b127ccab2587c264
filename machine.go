package pokelance

import (
	"context"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/models"
)

// MachineGroup serves the machine endpoint group.
type MachineGroup struct {
	ep       *cache.EndpointCache
	machines *cache.ResourceCache[models.Machine]
}

func newMachineGroup(c *Client) *MachineGroup {
	g := &MachineGroup{
		machines: newResource[models.Machine](c, "machine"),
	}
	g.ep = cache.NewEndpointCache("machine", c.log, g.machines)
	return g
}

// Cache exposes the group's endpoint cache.
func (g *MachineGroup) Cache() *cache.EndpointCache { return g.ep }

// Machine returns a machine by decimal id; machines have no names.
func (g *MachineGroup) Machine(ctx context.Context, ident string) (*models.Machine, error) {
	return fetchOne(ctx, g.machines, ident)
}
