package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pklimov/progward/internal/audit"
	"github.com/pklimov/progward/internal/model"
	"github.com/pklimov/progward/internal/quarantine"
)

// SweepInput defines parameters for the progward_sweep tool.
type SweepInput struct {
	Payload    map[string]any `json:"payload" jsonschema:"program registry document with a programs sequence"`
	SandboxEnv string         `json:"sandbox_env,omitempty" jsonschema:"override for the deconstruction environment id"`
}

// SweepOutput contains the sweep result.
type SweepOutput struct {
	DeactivatedIDs []string       `json:"deactivated_program_ids"`
	BlockedCallIDs []string       `json:"blocked_call_program_ids"`
	AbsorbedIDs    []string       `json:"absorbed_program_ids"`
	Payload        map[string]any `json:"payload"`
}

// ClassifyInput defines parameters for the progward_classify tool.
type ClassifyInput struct {
	Program map[string]any `json:"program" jsonschema:"a single program record"`
}

// ClassifyOutput contains the per-record classification.
type ClassifyOutput struct {
	ProgramID       string `json:"program_id"`
	TelemetryOrigin bool   `json:"telemetry_origin"`
	CallAction      bool   `json:"call_action"`
	WouldDeactivate bool   `json:"would_deactivate"`
}

func (s *Server) handleSweep(_ context.Context, _ *mcpsdk.CallToolRequest, input SweepInput) (*mcpsdk.CallToolResult, SweepOutput, error) {
	envID := input.SandboxEnv
	if envID == "" {
		envID = s.cfg.SandboxEnvID
	}

	result := quarantine.Sweep(input.Payload, &quarantine.Config{SandboxEnvID: envID})

	if s.auditLog != nil {
		scanned := len(model.Programs(result.Payload))
		s.mu.Lock()
		_ = s.auditLog.Record(audit.NewEntry(result, "mcp", envID, scanned))
		s.mu.Unlock()
	}

	out := SweepOutput{
		DeactivatedIDs: result.DeactivatedIDs,
		BlockedCallIDs: result.BlockedCallIDs,
		AbsorbedIDs:    result.AbsorbedIDs,
		Payload:        result.Payload,
	}
	return nil, out, nil
}

func (s *Server) handleClassify(_ context.Context, _ *mcpsdk.CallToolRequest, input ClassifyInput) (*mcpsdk.CallToolResult, ClassifyOutput, error) {
	origin := quarantine.FromTelemetry(input.Program)
	call := quarantine.HasCallAction(input.Program)

	out := ClassifyOutput{
		ProgramID:       model.ProgramID(input.Program),
		TelemetryOrigin: origin,
		CallAction:      call,
		WouldDeactivate: origin || call,
	}
	return nil, out, nil
}
