package quarantine

import (
	"strings"

	"github.com/pklimov/progward/internal/model"
)

// Markers written onto deactivated records.
const (
	StatusDeactivated     = "deactivated"
	ReasonTelemetryOrigin = "telemetry_origin"
	ReasonCallAction      = "call_action"
)

// Config holds sweep parameters.
type Config struct {
	// SandboxEnvID overrides the deconstruction environment identifier.
	// Empty means DefaultSandboxEnvID.
	SandboxEnvID string
}

// DefaultConfig returns the built-in sweep configuration.
func DefaultConfig() *Config {
	return &Config{SandboxEnvID: DefaultSandboxEnvID}
}

// Result is the immutable outcome of one sweep. The ID slices follow scan
// order over the program sequence; each program contributes at most once
// per slice. BlockedCallIDs is always a subset of DeactivatedIDs, and
// AbsorbedIDs always equals DeactivatedIDs in membership.
type Result struct {
	DeactivatedIDs []string       `json:"deactivated_program_ids"`
	BlockedCallIDs []string       `json:"blocked_call_program_ids"`
	AbsorbedIDs    []string       `json:"absorbed_program_ids"`
	Payload        map[string]any `json:"payload"`
}

// Sweep runs the deactivation pass over a payload. The caller's payload is
// never mutated: the pass operates on a deep copy and returns fresh
// structures with no retained reference back to the input. A nil cfg means
// defaults. Total over its input domain; malformed records degrade to
// "does not match" instead of failing.
func Sweep(payload map[string]any, cfg *Config) *Result {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	out, _ := model.DeepCopy(payload).(map[string]any)
	if out == nil {
		out = make(map[string]any)
	}

	result := &Result{
		DeactivatedIDs: []string{},
		BlockedCallIDs: []string{},
		AbsorbedIDs:    []string{},
		Payload:        out,
	}

	for _, entry := range model.Programs(out) {
		p, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		id := model.ProgramID(p)
		origin := FromTelemetry(p)
		call := HasCallAction(p)
		if !origin && !call {
			// Untouched: no field added, no field changed.
			continue
		}

		p["active"] = false
		p["status"] = StatusDeactivated

		reasons := make([]string, 0, 2)
		if origin {
			reasons = append(reasons, ReasonTelemetryOrigin)
		}
		if call {
			reasons = append(reasons, ReasonCallAction)
		}
		p["deactivation_reason"] = strings.Join(reasons, ",")

		result.DeactivatedIDs = append(result.DeactivatedIDs, id)
		if call {
			result.BlockedCallIDs = append(result.BlockedCallIDs, id)
		}

		Absorb(p, cfg.SandboxEnvID)
		result.AbsorbedIDs = append(result.AbsorbedIDs, id)
	}

	// Call-initiated telemetry actions are shut off process-wide, whatever
	// the input said.
	out[model.KeyCallActionsEnabled] = false

	return result
}
