package progward

import (
	"github.com/pklimov/progward/internal/quarantine"
)

// Markers written onto quarantined program records.
const (
	StatusDeactivated = quarantine.StatusDeactivated
	SandboxMode       = quarantine.SandboxMode

	// DefaultSandboxEnv is the deconstruction environment used when no
	// override is supplied.
	DefaultSandboxEnv = quarantine.DefaultSandboxEnvID
)

// Result is the outcome of one sweep. Deactivated, BlockedCall, and
// Absorbed follow scan order over the registry's programs; BlockedCall is
// always a subset of Deactivated, and Absorbed equals Deactivated in
// membership.
type Result struct {
	Deactivated []string
	BlockedCall []string
	Absorbed    []string
	Payload     map[string]any
}

// Option configures a single Sweep call.
type Option func(*sweepConfig)

type sweepConfig struct {
	sandboxEnv string
}

// WithSandboxEnv overrides the deconstruction environment identifier
// attached to absorbed programs.
func WithSandboxEnv(id string) Option {
	return func(c *sweepConfig) { c.sandboxEnv = id }
}

// Sweep runs the quarantine pass over a registry document and returns a
// fresh quarantined copy plus the affected program identifiers. The input
// is never mutated; malformed records degrade to "does not match" instead
// of failing.
func Sweep(registry map[string]any, opts ...Option) Result {
	var cfg sweepConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := quarantine.Sweep(registry, &quarantine.Config{SandboxEnvID: cfg.sandboxEnv})
	return Result{
		Deactivated: r.DeactivatedIDs,
		BlockedCall: r.BlockedCallIDs,
		Absorbed:    r.AbsorbedIDs,
		Payload:     r.Payload,
	}
}
