// Package report renders sweep results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pklimov/progward/internal/quarantine"
)

// Run pairs a sweep result with run metadata for rendering.
type Run struct {
	RunID      string             `json:"run_id"`
	Timestamp  string             `json:"ts"`
	Source     string             `json:"source,omitempty"`
	SandboxEnv string             `json:"sandbox_env"`
	Programs   int                `json:"programs"`
	Result     *quarantine.Result `json:"result"`
}

// New wraps a sweep result with fresh run metadata.
func New(r *quarantine.Result, source, sandboxEnv string, programs int) *Run {
	if sandboxEnv == "" {
		sandboxEnv = quarantine.DefaultSandboxEnvID
	}
	return &Run{
		RunID:      uuid.NewString(),
		Timestamp:  time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Source:     source,
		SandboxEnv: sandboxEnv,
		Programs:   programs,
		Result:     r,
	}
}

// FormatText renders a run as human-readable text.
func FormatText(run *Run) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Sweep %s", run.RunID)
	if run.Source != "" {
		fmt.Fprintf(&b, " (%s)", run.Source)
	}
	b.WriteString("\n")

	r := run.Result
	fmt.Fprintf(&b, "  scanned     %d program", run.Programs)
	if run.Programs != 1 {
		b.WriteString("s")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  deactivated %d  %s\n", len(r.DeactivatedIDs), joinIDs(r.DeactivatedIDs))
	fmt.Fprintf(&b, "  call-block  %d  %s\n", len(r.BlockedCallIDs), joinIDs(r.BlockedCallIDs))
	fmt.Fprintf(&b, "  absorbed    %d  into sandbox %s\n", len(r.AbsorbedIDs), run.SandboxEnv)

	if len(r.DeactivatedIDs) == 0 {
		b.WriteString("\nNothing matched. Registry returned unchanged (call actions forced off).\n")
	}

	return b.String()
}

// FormatJSON renders a run as indented JSON.
func FormatJSON(run *Run) (string, error) {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal run: %w", err)
	}
	return string(data), nil
}

func joinIDs(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	const max = 8
	if len(ids) > max {
		return strings.Join(ids[:max], ", ") + fmt.Sprintf(", … (%d more)", len(ids)-max)
	}
	return strings.Join(ids, ", ")
}
