package codewarden

import "github.com/spf13/cobra"

// pick helpers merge the configuration layers: CLI beats repo-local YAML
// beats global preferences.

func pickString(cli string, local *string, pref string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	return pref
}

func pickInt(cli int, local *int, pref int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	return pref
}

func pickInt64(cli int64, local *int64, pref int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	return pref
}

// resolveBool is the tri-state merge for toggles: an explicitly set flag wins,
// then a set YAML field, then the preference value.
func resolveBool(cmd *cobra.Command, flagName string, flagVal bool, local *bool, pref bool) bool {
	if cmd.Flags().Changed(flagName) {
		return flagVal
	}
	if local != nil {
		return *local
	}
	return pref
}
