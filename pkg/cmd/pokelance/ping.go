package pokelancecmd

import (
	"github.com/spf13/cobra"
)

func newPingCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Measure the round trip time to the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			rtt, err := c.Ping(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("%s\n", rtt)
			return nil
		},
	}
}
