package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbDir     string
	readStdin bool
)

var rootCmd = &cobra.Command{
	Use:   "pathcli",
	Short: "Pathcli verifies Merkle tree paths and records the verdicts",
}

// Init initiates commands
func Init() error {
	rootCmd.PersistentFlags().StringVar(&dbDir, "db", "attestations.db", "attestation log directory")

	verifyCmd.Flags().BoolVar(&readStdin, "stdin", false, "read a binary statement from standard input")
	attestCmd.Flags().BoolVar(&readStdin, "stdin", false, "read a binary statement from standard input")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(attestCmd)
	rootCmd.AddCommand(lookupCmd)

	return nil
}

// Execute executes command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
