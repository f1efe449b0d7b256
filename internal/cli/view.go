package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/akmonengine/sierpinski"
	"github.com/akmonengine/sierpinski/config"
)

func newViewCmd(opts *options, view Viewer) *cobra.Command {
	var level int
	var axes bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open an interactive window",
		Long:  "Open an interactive window. Up or + raises the recursion level, Down or - lowers it, Escape quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("level") {
				cfg.InitialLevel = level
			}
			if cmd.Flags().Changed("axes") {
				cfg.Camera.Axes = axes
			}

			f, err := newFractal(cfg)
			if err != nil {
				return err
			}
			logEvents(f, logger)

			if view == nil {
				return errors.New("no viewer available")
			}

			logger.Info("opening window", "level", f.Level(), "max", cfg.MaxLevel,
				"width", cfg.Window.Width, "height", cfg.Window.Height)

			return view(f, cfg)
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 0, "initial recursion level")
	cmd.Flags().BoolVar(&axes, "axes", false, "draw the world axes")

	return cmd
}

// newFractal validates cfg and builds the fractal
func newFractal(cfg config.Config) (*sierpinski.Fractal, error) {
	return sierpinski.New(cfg)
}
