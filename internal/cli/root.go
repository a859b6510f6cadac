package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "progward",
	Short: "Quarantine pass for agent program registries",
	Long: "Sweeps program registries and quarantines programs spawned inside the\n" +
		"monitored telemetry context or carrying call-initiating actions. Affected\n" +
		"programs are deactivated and absorbed into a restrictive deconstruction\n" +
		"sandbox; call-initiated telemetry actions are forced off registry-wide.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
