package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/go-ecc/internal/version"
)

// versionCmd prints build version information.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		if formatter.IsJSON() {
			return writeJSON(w, map[string]string{
				"version": version.Version,
				"commit":  version.Commit,
				"date":    version.Date,
			})
		}
		outln(w, version.String())
		return nil
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(versionCmd)
}
