package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haewon/fxkit/sfx"
)

var sfxCmd = &cobra.Command{
	Use:   "sfx",
	Short: "Synthesize sound effects to WAV",
	Long: `Renders every preset to a 44.1 kHz 16-bit mono WAV file. Existing files
are kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runSfx,
}

var (
	sfxPresets string
	sfxOut     string
	sfxForce   bool
)

func init() {
	sfxCmd.Flags().StringVar(&sfxPresets, "presets", "", "preset YAML file (default: built-in table)")
	sfxCmd.Flags().StringVarP(&sfxOut, "out", "o", "assets/audio/sfx", "output directory")
	sfxCmd.Flags().BoolVarP(&sfxForce, "force", "f", false, "overwrite existing files")
	rootCmd.AddCommand(sfxCmd)
}

func runSfx(cmd *cobra.Command, _ []string) error {
	presets := sfx.DefaultPresets()
	if sfxPresets != "" {
		p, err := sfx.LoadPresets(sfxPresets)
		if err != nil {
			return err
		}
		presets = p
	}

	written, err := sfx.Generate(sfxOut, presets, sfxForce)
	fmt.Fprintf(cmd.OutOrStdout(), "%d/%d effects written -> %s\n", len(written), len(presets), sfxOut)
	return err
}
