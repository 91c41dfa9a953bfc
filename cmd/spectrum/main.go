// spectrum is a headless toolbox for Full Spectrum puzzle levels: it loads
// level files, validates them, and runs the light-propagation engine over
// them.
//
// Usage:
//
//	spectrum check <level>    - Validate a level and report its illumination
//	spectrum levels [dir]     - List available levels
//	spectrum sim <level> <script>  - Replay a scripted action sequence
//	spectrum new              - Generate a random level
//
// Global flags:
//
//	--config <path>  - Path to game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
)

// logger is shared by all subcommands.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "spectrum",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "Full Spectrum - level tools for the light puzzle",
	Long: `spectrum is a toolbox for Full Spectrum puzzle levels.

Available commands:
  check    - Validate a level and report its illumination
  levels   - List available levels
  sim      - Replay a scripted action sequence against a level
  new      - Generate a random level

Examples:
  spectrum check levels/classic.yaml
  spectrum check classic
  spectrum levels ./levels
  spectrum sim levels/classic.yaml scripts/opening.yaml
  spectrum new --seed 42 > levels/random42.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(newCmd)
}
