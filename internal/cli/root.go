// Package cli implements the sierpinski command-line interface.
//
// Commands:
//   - view: open an interactive window (Up/Down or +/- change the level)
//   - snapshot: render a frame of a level change to PNG without a window
//   - generate: print the leaf transforms of a level
//
// Every command reads an optional TOML file (--config) over the built-in
// defaults and logs through charmbracelet/log; --verbose enables debug.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/akmonengine/sierpinski"
	"github.com/akmonengine/sierpinski/config"
)

// options shared by every command
type options struct {
	configPath string
	verbose    bool
}

// Viewer runs an interactive window on a fractal until it is closed
type Viewer func(f *sierpinski.Fractal, cfg config.Config) error

// Execute runs the CLI with ctx, opening windows with view
func Execute(ctx context.Context, view Viewer) error {
	return NewRootCommand(view).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree
func NewRootCommand(view Viewer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "sierpinski",
		Short:         "Interactive Sierpinski tetrahedron",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newViewCmd(opts, view))
	root.AddCommand(newSnapshotCmd(opts))
	root.AddCommand(newGenerateCmd(opts))

	return root
}

// loadConfig reads --config when given, defaults otherwise
func (o *options) loadConfig() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}

	return config.Load(o.configPath)
}
