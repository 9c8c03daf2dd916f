package codewarden

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/codewarden/codewarden/internal/analyzer"
	"github.com/codewarden/codewarden/internal/config"
	"github.com/codewarden/codewarden/internal/git"
	"github.com/codewarden/codewarden/internal/report"
	"github.com/codewarden/codewarden/internal/tui"
	"github.com/codewarden/codewarden/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagNoSecrets       bool
	flagNoComplexity    bool
	flagDefaultExcludes bool
	flagFormat          string
	flagNoSuggestions   bool
	flagHideMatches     bool
	flagChanged         bool
	flagCopy            bool
	flagInteractive     bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze files for secrets, smells and complexity",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "report files larger than this as too large (default 50 MiB)")
	cmd.Flags().BoolVar(&flagNoSecrets, "no-secrets", false, "disable secret detection")
	cmd.Flags().BoolVar(&flagNoComplexity, "no-complexity", false, "disable complexity analysis")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, dist, images, etc.)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "output format: table|text|markdown")
	cmd.Flags().BoolVar(&flagNoSuggestions, "no-suggestions", false, "omit per-file suggestions")
	cmd.Flags().BoolVar(&flagHideMatches, "hide-matches", false, "never print matched values")
	cmd.Flags().BoolVar(&flagChanged, "changed", false, "only analyze files changed in the git worktree")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the markdown report to the clipboard")
	cmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "browse results interactively")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	prefs := config.LoadPreferences()
	var local config.FileConfig
	if c, err := config.LoadLocal(root); err == nil {
		local = c
	}
	if ok, required := local.CheckMinVersion(version); !ok {
		fmt.Fprintf(os.Stderr, "warning: this repo's config requires codewarden >= %s (running %s)\n", required, version)
	}

	a := analyzer.New(analyzer.Options{
		SecretDetection:    resolveBool(cmd, "no-secrets", !flagNoSecrets, local.Secrets, prefs.Analysis.SecretDetection),
		ComplexityAnalysis: resolveBool(cmd, "no-complexity", !flagNoComplexity, local.Complexity, prefs.Analysis.ComplexityAnalysis),
		MaxFileBytes:       pickInt64(flagMaxBytes, local.MaxFileSize, prefs.Analysis.MaxFileSize),
		IncludeGlobs:       pickString(flagInclude, local.Include, ""),
		ExcludeGlobs:       pickString(flagExclude, local.Exclude, ""),
		DefaultExcludes:    resolveBool(cmd, "default-excludes", flagDefaultExcludes, local.DefaultExcludes, true),
		Threads:            pickInt(flagThreads, local.Threads, 0),
	})

	var reports []types.FileReport
	if flagChanged {
		files, err := git.ChangedFiles(root)
		if err != nil {
			return fmt.Errorf("listing changed files: %w", err)
		}
		reports = a.AnalyzeFiles(files)
	} else {
		var err error
		reports, err = a.AnalyzePath(root)
		if err != nil {
			return err
		}
	}

	noColor := flagNoColor || !prefs.Display.Color || !term.IsTerminal(int(os.Stdout.Fd()))
	opts := report.PrintOptions{
		NoColor:         noColor,
		ShowSuggestions: !flagNoSuggestions && prefs.Display.ShowSuggestions,
		HideMatches:     flagHideMatches || prefs.Display.HideMatches,
	}
	format := pickString(flagFormat, local.Format, prefs.Display.Format)

	switch {
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, reports); err != nil {
			return err
		}
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, reports, version); err != nil {
			return err
		}
	case flagInteractive:
		if err := tui.Run(reports, opts.HideMatches); err != nil {
			return err
		}
	case format == "markdown":
		fmt.Print(report.Markdown(reports))
	case format == "text":
		report.PrintText(os.Stdout, reports, opts)
	default:
		report.PrintTable(os.Stdout, reports, opts)
	}

	// Clipboard failures are warnings; they never alter the scan outcome.
	if flagCopy {
		if err := clipboard.WriteAll(report.Markdown(reports)); err != nil {
			fmt.Fprintln(os.Stderr, "copy warning:", err)
		}
	}

	if report.ShouldFail(reports, flagFailOn) {
		os.Exit(1)
	}
	return nil
}
