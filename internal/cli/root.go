// Package cli implements the godotlog command, a stand-in host that wires
// the logger to stdout and stderr and emits sample records.
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/philipp01105/godotlog/config"
	"github.com/philipp01105/godotlog/core"
)

// options holds the persistent flags shared by all subcommands
type options struct {
	configFile   string
	level        string
	filters      []string
	callerModule bool
}

// NewRootCommand builds the godotlog command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "godotlog",
		Short:         "Route leveled log records to a host console",
		Long:          `Initializes the godotlog sink against stdout (standard channel) and stderr (warning channel). Use 'emit --help' to generate sample records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML config file (default: environment only)")
	flags.StringVar(&opts.level, "level", "", "default threshold: off, error, warn, info, debug, trace")
	flags.StringArrayVar(&opts.filters, "filter", nil, "module override as module=level (repeatable)")
	flags.BoolVar(&opts.callerModule, "caller-module", false, "use the calling package as origin when a record has no module")

	root.AddCommand(newEmitCommand(opts), newLevelsCommand(), newConfigCommand(opts))
	return root
}

// Execute runs the root command with os.Args
func Execute() error {
	return NewRootCommand().Execute()
}

// resolve loads the configuration and applies flag overrides
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configFile != "" {
		cfg, err = config.Load(o.configFile)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("level") {
		level, err := core.ParseLevel(o.level)
		if err != nil {
			return nil, errors.Wrap(err, "--level")
		}
		cfg.Level = level
	}
	if cmd.Flags().Changed("caller-module") {
		cfg.CallerModule = o.callerModule
	}
	for _, raw := range o.filters {
		f, err := config.ParseFilter(raw)
		if err != nil {
			return nil, errors.Wrap(err, "--filter")
		}
		cfg.Filters = append(cfg.Filters, f)
	}
	return cfg, nil
}
