package codewarden

import (
	"fmt"

	"github.com/codewarden/codewarden/internal/rules"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Run: func(_ *cobra.Command, _ []string) {
			for _, r := range rules.All() {
				fmt.Printf("%-14s %-14s %-7s %s\n", r.ID, r.Kind, r.Severity, r.Message)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
