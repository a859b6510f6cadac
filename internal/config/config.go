// Package config loads progward's YAML configuration. Every field has a
// working default so the binary runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable parameters.
type Config struct {
	// SandboxEnvID overrides the deconstruction environment identifier
	// attached to absorbed programs.
	SandboxEnvID string `yaml:"sandbox_env_id"`

	// Inbox and Outbox are the watch-mode directories: payload files
	// dropped into Inbox are swept and the results land in Outbox.
	Inbox  string `yaml:"inbox"`
	Outbox string `yaml:"outbox"`

	// Archive receives processed inbox files.
	Archive string `yaml:"archive"`

	// AuditLog is the path of the hash-chained sweep ledger.
	AuditLog string `yaml:"audit_log"`

	// PollMode switches the watcher from fsnotify to polling (NFS etc.).
	PollMode            bool `yaml:"poll_mode"`
	PollIntervalSeconds int  `yaml:"poll_interval_seconds"`
}

// PollInterval returns the poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Default returns the built-in configuration rooted at ~/.progward.
func Default() *Config {
	root := "/var/lib/progward"
	if home, err := os.UserHomeDir(); err == nil {
		root = filepath.Join(home, ".progward")
	}
	return &Config{
		Inbox:               filepath.Join(root, "inbox"),
		Outbox:              filepath.Join(root, "outbox"),
		Archive:             filepath.Join(root, "archive"),
		AuditLog:            filepath.Join(root, "audit.jsonl"),
		PollIntervalSeconds: 5,
	}
}

// Load reads a config file and fills unset fields from defaults. An empty
// path returns defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if loaded.SandboxEnvID != "" {
		cfg.SandboxEnvID = loaded.SandboxEnvID
	}
	if loaded.Inbox != "" {
		cfg.Inbox = loaded.Inbox
	}
	if loaded.Outbox != "" {
		cfg.Outbox = loaded.Outbox
	}
	if loaded.Archive != "" {
		cfg.Archive = loaded.Archive
	}
	if loaded.AuditLog != "" {
		cfg.AuditLog = loaded.AuditLog
	}
	if loaded.PollMode {
		cfg.PollMode = true
	}
	if loaded.PollIntervalSeconds != 0 {
		cfg.PollIntervalSeconds = loaded.PollIntervalSeconds
	}

	return cfg, nil
}
