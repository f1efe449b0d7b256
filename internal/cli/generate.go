package cli

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/akmonengine/sierpinski"
	"github.com/akmonengine/sierpinski/generator"
	"github.com/akmonengine/sierpinski/geometry"
	"github.com/akmonengine/sierpinski/instance"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the leaf transforms of a level",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			f, err := newFractal(cfg)
			if err != nil {
				return err
			}
			if level < 0 || level > cfg.MaxLevel {
				return fmt.Errorf("%w: %d outside [0, %d]", sierpinski.ErrInvalidLevel, level, cfg.MaxLevel)
			}

			set := instance.Build(f.Base, level, f.Palette)
			logger.Debug("generated", "level", level, "leaves", set.Len())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# level %d, %d leaves\n", level, set.Len())
			if box, ok := geometry.Bounds(geometry.Template(), set.Transforms()); ok {
				fmt.Fprintf(out, "# bounds min %s max %s center %s radius %.6f\n",
					vecString(box.Min), vecString(box.Max), vecString(box.Center()), box.Radius())
			}
			for i := 0; i < set.Len(); i++ {
				inst := set.At(i)
				fmt.Fprintf(out, "%d\t%s\t%s\t%g\t%s\n",
					i, digitString(level, i), vecString(inst.Transform.Position), inst.Transform.Scale, inst.Color.Hex())
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 1, "recursion level")

	return cmd
}

// digitString renders the corner path of a leaf, "-" for the root
func digitString(level, index int) string {
	if level == 0 {
		return "-"
	}

	var b strings.Builder
	for _, d := range generator.Digits(level, index) {
		b.WriteByte(byte('0' + d))
	}

	return b.String()
}

func vecString(v mgl64.Vec3) string {
	return fmt.Sprintf("% .6f % .6f % .6f", v.X(), v.Y(), v.Z())
}
