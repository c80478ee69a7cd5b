package commands

import (
	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "proxnet",
		Short: "Build proximity edge lists from relocation data",
		Long: `proxnet - proximity-based social networks from animal relocations.

For every time group, proxnet pairs individuals whose fixes lie strictly
closer than a distance threshold and writes the resulting directed edge
list. Individuals without a partner can be kept as rows with ID2 NA.

Flag defaults are read, in increasing precedence, from built-in defaults,
a YAML file (--config or PROXNET_CONFIG) and PROXNET_* environment
variables. Flags given on the command line win.

Examples:
  # Edges between caribou within 50 m, per time group and herd
  proxnet edges -i relocs.csv --threshold 50 --id ID --coords X,Y \
    --timegroup timegroup --split-by herd --return-dist

  # Same, with column names taken from a config file
  PROXNET_CONFIG=caribou.yaml proxnet edges -i relocs.csv --format table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (default $PROXNET_CONFIG)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newEdgesCmd(opts), newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
