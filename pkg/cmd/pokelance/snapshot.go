package pokelancecmd

import (
	"github.com/spf13/cobra"
)

func newSaveCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "save [DIR]",
		Short: "Snapshot every enabled group to disk",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return c.SaveAll(dir)
		},
	}
}

func newLoadCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "load [DIR]",
		Short: "Restore every enabled group from disk snapshots",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			if err := c.LoadAll(dir); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c.Cache().Stats())
		},
	}
}
