package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pklimov/progward/internal/config"
	"github.com/pklimov/progward/internal/daemon"
)

var watchConfigPath string

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchConfigPath, "config", "", "Path to progward.yaml")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the inbox and sweep payload files as they arrive",
	Long: "Runs progward as a daemon: payload files dropped into the inbox are\n" +
		"swept, the quarantined payloads and run reports land in the outbox, and\n" +
		"every run is appended to the audit ledger. Stops on SIGINT/SIGTERM.",
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(watchConfigPath)
	if err != nil {
		return err
	}

	d, err := daemon.New(daemon.Config{
		Dirs: daemon.DirConfig{
			Inbox:   cfg.Inbox,
			Outbox:  cfg.Outbox,
			Archive: cfg.Archive,
		},
		SandboxEnvID: cfg.SandboxEnvID,
		AuditLogPath: cfg.AuditLog,
		PollMode:     cfg.PollMode,
		PollInterval: cfg.PollInterval(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "progward: watching %s\n", cfg.Inbox)
	return d.Run(ctx)
}
