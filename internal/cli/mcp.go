package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pklimov/progward/internal/config"
	"github.com/pklimov/progward/internal/mcp"
)

var mcpConfigPath string

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpConfigPath, "config", "", "Path to progward.yaml")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the quarantine sweep as MCP tools over stdio",
	Long: "Starts an MCP server exposing progward_sweep and progward_classify, so\n" +
		"agent runtimes can quarantine registries without shelling out.",
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(mcpConfigPath)
	if err != nil {
		return err
	}

	auditPath := ""
	if mcpConfigPath != "" {
		auditPath = cfg.AuditLog
	}

	s, err := mcp.New(mcp.Config{
		SandboxEnvID: cfg.SandboxEnvID,
		AuditLogPath: auditPath,
	})
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.Run(context.Background())
}
