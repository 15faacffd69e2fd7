package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haewon/fxkit"
	"github.com/haewon/fxkit/unfog"
)

var unfogCmd = &cobra.Command{
	Use:   "unfog <image>...",
	Short: "Remove hazy backgrounds from generated images",
	Long: `Clears near-transparent noise, pale semi-transparent fog and bright
matting along the border. Files are rewritten in place as PNG, and only
when the pass clears more than 1% of the pixels. Files that are already
more than 60% transparent are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUnfog,
}

func init() {
	rootCmd.AddCommand(unfogCmd)
}

func runUnfog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	counts := map[unfog.Action]int{}
	var failed int

	for _, path := range args {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		res, err := unfog.ProcessFile(path)
		if err != nil {
			fxkit.Logger().Warn("unfog failed", "path", path, "error", err)
			fmt.Fprintf(out, "fail      %s\n", path)
			failed++
			continue
		}
		counts[res.Action]++

		switch res.Action {
		case unfog.ActionSaved:
			fmt.Fprintf(out, "saved     %s (+%.1f%% transparent)\n", path, res.Improvement*100)
		case unfog.ActionSkipped:
			fmt.Fprintf(out, "skipped   %s (already %.0f%% transparent)\n", path, res.Before*100)
		default:
			fmt.Fprintf(out, "unchanged %s\n", path)
		}
	}

	fmt.Fprintf(out, "%d saved, %d skipped, %d unchanged, %d failed\n",
		counts[unfog.ActionSaved], counts[unfog.ActionSkipped], counts[unfog.ActionUnchanged], failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(args))
	}
	return nil
}
