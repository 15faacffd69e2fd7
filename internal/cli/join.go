package cli

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/haewon/fxkit/internal/imageio"
	"github.com/haewon/fxkit/sheet"
)

var joinCmd = &cobra.Command{
	Use:   "join <frame.png>...",
	Short: "Lay frames out on one preview sheet",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJoin,
}

var (
	joinOut    string
	joinCols   int
	joinLabels bool
	joinScale  int
	joinGap    int
)

func init() {
	joinCmd.Flags().StringVarP(&joinOut, "out", "o", "", "output PNG file (required)")
	joinCmd.Flags().IntVar(&joinCols, "cols", 0, "frames per row (default: all in one row)")
	joinCmd.Flags().BoolVar(&joinLabels, "labels", false, "draw frame indices")
	joinCmd.Flags().IntVar(&joinScale, "scale", 1, "integer upscale factor")
	joinCmd.Flags().IntVar(&joinGap, "gap", 0, "pixels between cells")
	_ = joinCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(joinCmd)
}

func runJoin(cmd *cobra.Command, args []string) error {
	frames := make([]image.Image, 0, len(args))
	for _, path := range args {
		img, _, err := imageio.Load(path)
		if err != nil {
			return err
		}
		frames = append(frames, img)
	}

	img, err := sheet.Join(frames, joinCols, sheet.JoinOptions{
		Labels: joinLabels,
		Scale:  joinScale,
		Gap:    joinGap,
	})
	if err != nil {
		return err
	}
	if err := imageio.SavePNG(joinOut, img); err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "joined %d frames -> %s (%dx%d)\n", len(frames), joinOut, b.Dx(), b.Dy())
	return nil
}
