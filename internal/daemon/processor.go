package daemon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pklimov/progward/internal/audit"
	"github.com/pklimov/progward/internal/model"
	"github.com/pklimov/progward/internal/payload"
	"github.com/pklimov/progward/internal/quarantine"
	"github.com/pklimov/progward/internal/report"
)

// ProcessorConfig holds runtime configuration for payload processing.
type ProcessorConfig struct {
	Dirs         DirConfig
	SandboxEnvID string
	AuditLog     *audit.Log
}

// Processor runs the quarantine sweep over inbox payload files.
type Processor struct {
	cfg ProcessorConfig
}

// NewProcessor creates a processor with the given configuration.
func NewProcessor(cfg ProcessorConfig) *Processor {
	return &Processor{cfg: cfg}
}

// Process handles a single payload file through its full lifecycle:
// read → sweep → write quarantined payload and run report to the outbox →
// record in the ledger → archive the original.
func (p *Processor) Process(_ context.Context, path string) error {
	// Structural symlink defense: reject symlinks before reading so an
	// attacker cannot point inbox entries at arbitrary filesystem paths.
	fi, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("stat payload file: %w", err)
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("rejected symlink: %s", filepath.Base(path))
	}

	doc, err := payload.Load(path)
	if err != nil {
		return err
	}

	sweepCfg := &quarantine.Config{SandboxEnvID: p.cfg.SandboxEnvID}
	result := quarantine.Sweep(doc, sweepCfg)
	scanned := len(model.Programs(result.Payload))

	base := filepath.Base(path)
	if err := payload.Write(result.Payload, filepath.Join(p.cfg.Dirs.Outbox, base)); err != nil {
		return fmt.Errorf("write quarantined payload: %w", err)
	}

	run := report.New(result, base, p.cfg.SandboxEnvID, scanned)
	runJSON, err := report.FormatJSON(run)
	if err != nil {
		return err
	}
	resultPath := filepath.Join(p.cfg.Dirs.Outbox, resultName(base))
	if err := os.WriteFile(resultPath, []byte(runJSON+"\n"), 0600); err != nil {
		return fmt.Errorf("write run report: %w", err)
	}

	if p.cfg.AuditLog != nil {
		entry := audit.NewEntry(result, base, run.SandboxEnv, scanned)
		if err := p.cfg.AuditLog.Record(entry); err != nil {
			return err
		}
	}

	if err := moveFile(path, filepath.Join(p.cfg.Dirs.Archive, base)); err != nil {
		return fmt.Errorf("archive payload: %w", err)
	}
	return nil
}

// resultName derives the run report filename from the payload filename.
func resultName(base string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".result.json"
}
