package pokelancecmd

import (
	"github.com/spf13/cobra"

	pokelance "github.com/FallenDeity/PokeLance"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pokelance %s\n", pokelance.Version)
		},
	}
}
