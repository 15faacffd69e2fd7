package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/haewon/fxkit"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fxkit",
	Short: "Art and audio asset tools for the game pipeline",
	Long: `fxkit generates and maintains game assets: procedural effect sprites,
sprite sheet splitting and previews, fog removal on generated images,
synthesized sound effects and asset inventory checks.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("fxkit version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setupLogging routes library logs to stderr. Info is the default level so
// batch progress is visible; --verbose adds per-file diagnostics.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	fxkit.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// Execute runs the root command. An interrupt cancels the command context,
// which batch commands check between files.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
