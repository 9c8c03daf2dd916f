package codewarden

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/codewarden/codewarden/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput          string
	cfgInclude         string
	cfgExclude         string
	cfgMaxBytes        int64
	cfgThreads         int
	cfgNoColor         bool
	cfgDefaultExcludes bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .codewarden.yml with the selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".codewarden.yml", "output file path")
	initCmd.Flags().StringVar(&cfgInclude, "include", "", "comma-separated include globs")
	initCmd.Flags().StringVar(&cfgExclude, "exclude", "", "comma-separated exclude globs")
	initCmd.Flags().Int64Var(&cfgMaxBytes, "max-bytes", 50<<20, "report files larger than this as too large")
	initCmd.Flags().IntVar(&cfgThreads, "threads", 0, "worker threads (0=sequential)")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgDefaultExcludes, "default-excludes", true, "enable default ignore patterns")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective global preferences",
		RunE: func(_ *cobra.Command, _ []string) error {
			prefs := config.LoadPreferences()
			b, err := json.MarshalIndent(prefs, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		},
	}
	cfgCmd.AddCommand(showCmd)

	saveCmd := &cobra.Command{
		Use:   "save-defaults",
		Short: "Write the default preferences to the global preference file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.SavePreferences(config.DefaultPreferences())
		},
	}
	cfgCmd.AddCommand(saveCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	fc := config.FileConfig{
		Include:         optStrPtr(cfgInclude),
		Exclude:         optStrPtr(cfgExclude),
		MaxFileSize:     int64Ptr(cfgMaxBytes),
		Threads:         intPtr(cfgThreads),
		NoColor:         boolPtr(cfgNoColor),
		DefaultExcludes: boolPtr(cfgDefaultExcludes),
	}
	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Println("Wrote", cfgOutput)
	return nil
}

func optStrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
