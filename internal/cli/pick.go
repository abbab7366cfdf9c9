package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/internal/image"
)

func newPickCmd() *cobra.Command {
	var x, y, radius int

	cmd := &cobra.Command{
		Use:   "pick <image>",
		Short: "Sample a colour from an image",
		Long: `Read the colour at a pixel of an image file or HTTP(S) URL and print it like
convert. With --radius, average the square of pixels around the point,
clipped to the image edges.

Supported formats: PNG, JPEG, GIF and WebP.`,
		Example: `  chromatic pick wallpaper.png --x 120 --y 40
  chromatic pick photo.webp --x 10 --y 10 --radius 3 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			img, err := image.NewSmartLoader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded image", "path", args[0], "bounds", img.Bounds().String())

			rgb, err := image.Sample(img, x, y, radius)
			if err != nil {
				return err
			}
			logger.Debug("sampled", "x", x, "y", y, "radius", radius, "rgb", rgb.String())

			source := fmt.Sprintf("%s@%d,%d", args[0], x, y)
			return writeConversions(cmd.OutOrStdout(), rgb, source, "image", cfg, previewEnabled(cmd, cfg))
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().IntVar(&x, "x", 0, "pixel column from the left edge")
	cmd.Flags().IntVar(&y, "y", 0, "pixel row from the top edge")
	cmd.Flags().IntVar(&radius, "radius", 0, "average the square of this radius around the point")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
