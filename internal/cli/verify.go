package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/haewon/fxkit/inventory"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check image assets against the manifest",
	Long: `Compares the PNG files under --root with the assets listed in the
manifest and reports missing, unused and wrongly sized files. With --since,
also lists the files changed on or after that date.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

var (
	verifyRoot     string
	verifyManifest string
	verifySince    string
)

// errVerifyFailed is returned when the inventory has problems.
var errVerifyFailed = errors.New("asset verification failed")

func init() {
	verifyCmd.Flags().StringVar(&verifyRoot, "root", "assets/images", "asset root directory")
	verifyCmd.Flags().StringVarP(&verifyManifest, "manifest", "m", "", "manifest YAML file (required)")
	verifyCmd.Flags().StringVar(&verifySince, "since", "", "list files modified on or after this date (YYYY-MM-DD)")
	_ = verifyCmd.MarkFlagRequired("manifest")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	var cutoff time.Time
	if verifySince != "" {
		t, err := time.ParseInLocation(time.DateOnly, verifySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since: %w", err)
		}
		cutoff = t
	}

	m, err := inventory.LoadManifest(verifyManifest)
	if err != nil {
		return err
	}
	report, err := inventory.Verify(verifyRoot, m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printReport(out, report)

	if !cutoff.IsZero() {
		entries, err := inventory.Scan(verifyRoot)
		if err != nil {
			return err
		}
		_, newer := inventory.SplitByTime(entries, cutoff)
		fmt.Fprintf(out, "\nchanged since %s: %d\n", verifySince, len(newer))
		for _, e := range newer {
			fmt.Fprintf(out, "  %-50s %10d bytes  %s\n", e.Path, e.Size, e.ModTime.Format("01/02 15:04"))
		}
	}

	if !report.OK() {
		return errVerifyFailed
	}
	return nil
}

func printReport(out io.Writer, r *inventory.Report) {
	fmt.Fprintf(out, "referenced: %d\n", r.Referenced)
	fmt.Fprintf(out, "on disk:    %d\n", r.Actual)
	fmt.Fprintf(out, "matched:    %d\n", len(r.Matched))

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(out, "\n%s: %d\n", title, len(items))
		for _, it := range items {
			fmt.Fprintf(out, "  %s\n", it)
		}
	}
	section("missing", r.Missing)
	section("unused", r.Unused)
	section("unreadable", r.Broken)
	section("missing directories", r.MissingDirs)

	if len(r.SizeMismatches) > 0 {
		fmt.Fprintf(out, "\nwrong size: %d\n", len(r.SizeMismatches))
		for _, m := range r.SizeMismatches {
			fmt.Fprintf(out, "  %s\n", m)
		}
	}

	if r.OK() {
		fmt.Fprintln(out, "\nall referenced assets present")
	}
}
