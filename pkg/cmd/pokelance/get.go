package pokelancecmd

import (
	"sort"

	"github.com/spf13/cobra"
)

func newGetCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get CATEGORY IDENT",
		Short: "Fetch one resource by name or id and print it as JSON",
		Example: `  pokelance get pokemon pikachu
  pokelance get berry 1
  pokelance get machine 42`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			v, err := c.Lookup(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}
}

func newListCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list CATEGORY",
		Short: "List every known identifier of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			idx, err := c.Index(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			names := make([]string, 0, len(idx))
			for name := range idx {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				if idx[names[i]] != idx[names[j]] {
					return idx[names[i]] < idx[names[j]]
				}
				return names[i] < names[j]
			})
			for _, name := range names {
				cmd.Printf("%d\t%s\n", idx[name], name)
			}
			return nil
		},
	}
}
