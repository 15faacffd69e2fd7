package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haewon/fxkit"
	"github.com/haewon/fxkit/sheet"
)

var splitCmd = &cobra.Command{
	Use:   "split <sheet.png>...",
	Short: "Split sprite sheets into frames",
	Long: `Splits each sheet into a grid of equal frames written next to it as
<name>_<i>.png, in row-major order. Sheets whose first frame already
exists are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplit,
}

var splitCols, splitRows int

func init() {
	splitCmd.Flags().IntVar(&splitCols, "cols", 2, "grid columns")
	splitCmd.Flags().IntVar(&splitRows, "rows", 2, "grid rows")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var done, failed int

	for _, path := range args {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		frames, err := sheet.SplitFile(path, splitCols, splitRows)
		switch {
		case errors.Is(err, sheet.ErrAlreadySplit):
			fmt.Fprintf(out, "skip  %s (already split)\n", path)
			done++
		case err != nil:
			fxkit.Logger().Warn("split failed", "path", path, "error", err)
			fmt.Fprintf(out, "fail  %s\n", path)
			failed++
		default:
			fmt.Fprintf(out, "split %s -> %d frames\n", path, len(frames))
			done++
		}
	}

	fmt.Fprintf(out, "%d/%d sheets processed\n", done, len(args))
	if failed > 0 {
		return fmt.Errorf("%d of %d sheets failed", failed, len(args))
	}
	return nil
}
