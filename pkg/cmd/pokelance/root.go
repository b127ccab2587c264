// Package pokelancecmd assembles the pokelance command line interface.
package pokelancecmd

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	pokelance "github.com/FallenDeity/PokeLance"
)

// options carries the persistent flags shared by every subcommand.
type options struct {
	configPath string
	cacheDir   string
	verbosity  int
}

// client builds a configured client for one command invocation.
func (o *options) client(cmd *cobra.Command) (*pokelance.Client, error) {
	cfg, err := pokelance.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.cacheDir != "" {
		cfg.Cache.Dir = o.cacheDir
	}
	v := o.verbosity
	if v == 0 {
		v = cfg.Log.Verbosity
	}
	stdr.SetVerbosity(v)
	logger := stdr.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
	return pokelance.New(cfg, pokelance.WithLogger(logger))
}

// NewCommand builds the root command with every subcommand attached.
func NewCommand(ctx context.Context, out, errOut io.Writer) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:          "pokelance",
		Short:        "Typed PokéAPI client with warmable, persistable caches",
		SilenceUsage: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetContext(ctx)

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&o.cacheDir, "dir", "", "override the snapshot directory")
	pf.IntVarP(&o.verbosity, "verbosity", "v", 0, "log verbosity, higher is chattier")

	cmd.AddCommand(
		newGetCommand(o),
		newListCommand(o),
		newWarmCommand(o),
		newSaveCommand(o),
		newLoadCommand(o),
		newPingCommand(o),
		newVersionCommand(),
	)
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
