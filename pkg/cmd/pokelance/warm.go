package pokelancecmd

import (
	"github.com/spf13/cobra"
)

func newWarmCommand(o *options) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "warm [GROUP...]",
		Short: "Bulk load endpoint groups into the cache",
		Long: `Bulk load the named endpoint groups, or every enabled group when none
are named, then print per category entry counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if err := c.Warm(cmd.Context(), args...); err != nil {
				return err
			}
			if save {
				if err := c.SaveAll(""); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), c.Cache().Stats())
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "snapshot the cache after warming")
	return cmd
}
