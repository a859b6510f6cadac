// Package daemon runs progward in watch mode: payload files dropped into
// the inbox are swept and the quarantined payloads plus run reports land in
// the outbox, with every run recorded in the audit ledger.
package daemon

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pklimov/progward/internal/audit"
)

// Config holds full daemon configuration.
type Config struct {
	Dirs         DirConfig
	SandboxEnvID string
	AuditLogPath string
	PollMode     bool
	PollInterval time.Duration
}

// Daemon watches the inbox directory and sweeps payload files.
type Daemon struct {
	cfg       Config
	processor *Processor
	auditLog  *audit.Log
}

// New creates a daemon with validated configuration.
func New(cfg Config) (*Daemon, error) {
	if cfg.Dirs.Inbox == "" || cfg.Dirs.Outbox == "" || cfg.Dirs.Archive == "" {
		return nil, fmt.Errorf("inbox, outbox, and archive directories are required")
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = pollDefault
	}

	if err := EnsureDirs(cfg.Dirs); err != nil {
		return nil, err
	}

	var auditLog *audit.Log
	if cfg.AuditLogPath != "" {
		var err error
		auditLog, err = audit.Open(cfg.AuditLogPath)
		if err != nil {
			return nil, err
		}
	}

	processor := NewProcessor(ProcessorConfig{
		Dirs:         cfg.Dirs,
		SandboxEnvID: cfg.SandboxEnvID,
		AuditLog:     auditLog,
	})

	return &Daemon{cfg: cfg, processor: processor, auditLog: auditLog}, nil
}

// Run processes any payloads already sitting in the inbox, then blocks
// watching for new ones until ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	defer func() {
		if d.auditLog != nil {
			_ = d.auditLog.Close()
		}
	}()

	handler := func(path string) {
		if err := d.processor.Process(ctx, path); err != nil {
			fmt.Fprintf(os.Stderr, "progward: %s: %v\n", path, err)
		}
	}

	// Startup backlog: files dropped while the daemon was down.
	NewPollWatcher(d.cfg.Dirs.Inbox, handler, d.cfg.PollInterval).scan()

	if d.cfg.PollMode {
		return NewPollWatcher(d.cfg.Dirs.Inbox, handler, d.cfg.PollInterval).Run(ctx)
	}
	return NewInboxWatcher(d.cfg.Dirs.Inbox, handler).Run(ctx)
}
