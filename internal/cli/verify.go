package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pklimov/progward/internal/audit"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify <ledger-file>",
	Short: "Verify the hash chain of an audit ledger",
	Long: "Walks a JSONL sweep ledger and checks that every entry's prev_hash\n" +
		"matches the previous line. Exit code 1 if the chain is broken.",
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	res := audit.Verify(args[0])
	out, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(out))
	if !res.Valid {
		os.Exit(1)
	}
	return nil
}
