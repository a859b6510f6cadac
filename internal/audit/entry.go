// Package audit keeps the append-only ledger of quarantine sweeps. The log
// is JSONL with SHA-256 hash chaining: each entry's prev_hash is the hash
// of the previous line, so tampering with history breaks the chain.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/pklimov/progward/internal/quarantine"
)

// Entry is one sweep run in the ledger. All fields are concrete types (no
// map[string]any) to guarantee deterministic json.Marshal field order for
// reproducible hashing.
type Entry struct {
	Timestamp   string   `json:"ts"`
	RunID       string   `json:"run_id"`
	Source      string   `json:"source"`
	SandboxEnv  string   `json:"sandbox_env"`
	Programs    int      `json:"programs"`
	Deactivated []string `json:"deactivated"`
	BlockedCall []string `json:"blocked_call"`
	Absorbed    []string `json:"absorbed"`
	PrevHash    string   `json:"prev_hash"`
}

// NewEntry builds a ledger entry for a completed sweep. Source names where
// the payload came from (file path, "stdin", "mcp"); programs is the total
// scanned, not just the affected count.
func NewEntry(r *quarantine.Result, source, sandboxEnv string, programs int) Entry {
	return Entry{
		Timestamp:   time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		RunID:       uuid.NewString(),
		Source:      source,
		SandboxEnv:  sandboxEnv,
		Programs:    programs,
		Deactivated: r.DeactivatedIDs,
		BlockedCall: r.BlockedCallIDs,
		Absorbed:    r.AbsorbedIDs,
	}
}
