package codewarden

import (
	"fmt"
	"os"

	"github.com/codewarden/codewarden/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagNoColor bool
	flagThreads int
	flagFailOn  string
	flagVerbose bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the codewarden CLI.
var rootCmd = &cobra.Command{
	Use:           "codewarden",
	Short:         "Find hard-coded secrets and code smells in your sources",
	Long:          "Codewarden scans source trees for hard-coded secrets, debug leftovers, TODO backlogs and eval usage, and estimates a per-file complexity score. Everything runs locally.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(flagVerbose)
	},
}

// Execute runs the codewarden CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = sequential)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "none", "exit non-zero on findings: none|low|medium|high")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
