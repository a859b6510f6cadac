package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pklimov/progward/internal/audit"
	"github.com/pklimov/progward/internal/config"
	"github.com/pklimov/progward/internal/model"
	"github.com/pklimov/progward/internal/payload"
	"github.com/pklimov/progward/internal/quarantine"
	"github.com/pklimov/progward/internal/report"
)

var (
	sweepOut        string
	sweepFormat     string
	sweepSandboxEnv string
	sweepAuditLog   string
	sweepConfigPath string
)

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().StringVarP(&sweepOut, "out", "o", "", "Write the quarantined payload to this path (JSON or YAML by extension)")
	sweepCmd.Flags().StringVarP(&sweepFormat, "format", "f", "text", "Result format (text|json)")
	sweepCmd.Flags().StringVar(&sweepSandboxEnv, "sandbox-env", "", "Deconstruction environment id for absorbed programs")
	sweepCmd.Flags().StringVar(&sweepAuditLog, "audit-log", "", "Append the run to this hash-chained ledger")
	sweepCmd.Flags().StringVar(&sweepConfigPath, "config", "", "Path to progward.yaml")
}

var sweepCmd = &cobra.Command{
	Use:   "sweep <payload-file>",
	Short: "Run the quarantine sweep over a payload file",
	Long: "Loads a program registry (JSON or YAML), deactivates every program that\n" +
		"originated in the telemetry context or carries a call action, absorbs the\n" +
		"affected programs into the deconstruction sandbox, and prints which\n" +
		"program ids were hit. The input file is never modified.",
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(sweepConfigPath)
	if err != nil {
		return err
	}
	envID := sweepSandboxEnv
	if envID == "" {
		envID = cfg.SandboxEnvID
	}
	auditPath := sweepAuditLog
	if auditPath == "" && sweepConfigPath != "" {
		auditPath = cfg.AuditLog
	}

	doc, err := payload.Load(args[0])
	if err != nil {
		return err
	}

	result := quarantine.Sweep(doc, &quarantine.Config{SandboxEnvID: envID})
	scanned := len(model.Programs(result.Payload))
	run := report.New(result, filepath.Base(args[0]), envID, scanned)

	if sweepOut != "" {
		if err := payload.Write(result.Payload, sweepOut); err != nil {
			return err
		}
	}

	if auditPath != "" {
		log, err := audit.Open(auditPath)
		if err != nil {
			return err
		}
		entry := audit.NewEntry(result, filepath.Base(args[0]), run.SandboxEnv, scanned)
		if err := log.Record(entry); err != nil {
			_ = log.Close()
			return err
		}
		if err := log.Close(); err != nil {
			return err
		}
	}

	switch sweepFormat {
	case "json":
		out, err := report.FormatJSON(run)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		fmt.Print(report.FormatText(run))
	}
	return nil
}
