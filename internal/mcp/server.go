// Package mcp exposes the quarantine sweep to MCP clients over stdio, so
// agent runtimes can hand progward a program registry and get back the
// quarantined copy plus the affected identifiers.
package mcp

import (
	"context"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pklimov/progward/internal/audit"
)

// Config holds MCP server configuration.
type Config struct {
	SandboxEnvID string
	AuditLogPath string
}

// Server wraps the MCP SDK server around the sweep.
type Server struct {
	mcpServer *mcpsdk.Server
	cfg       Config
	auditLog  *audit.Log
	mu        sync.Mutex
}

// New creates an MCP server with the sweep tools registered.
func New(cfg Config) (*Server, error) {
	var auditLog *audit.Log
	if cfg.AuditLogPath != "" {
		var err error
		auditLog, err = audit.Open(cfg.AuditLogPath)
		if err != nil {
			return nil, err
		}
	}

	s := &Server{cfg: cfg, auditLog: auditLog}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "progward",
			Version: "0.1.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close closes the audit log if configured.
func (s *Server) Close() error {
	if s.auditLog != nil {
		return s.auditLog.Close()
	}
	return nil
}

// registerTools adds the progward tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "progward_sweep",
		Description: "Sweep a program registry: deactivate telemetry-origin and call-action programs, absorb them into the deconstruction sandbox, and return the quarantined registry plus affected program ids.",
	}, s.handleSweep)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "progward_classify",
		Description: "Classify a single program record without mutating anything (dry-run): reports telemetry origin and call-action matches.",
	}, s.handleClassify)
}
