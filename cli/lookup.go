package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"merklepath/merkle"
	"merklepath/storage"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup LEAF",
	Short: "Print the stored attestation record for a leaf digest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		leaf, err := merkle.DigestFromHex(args[0])
		if err != nil {
			return fmt.Errorf("invalid leaf %s: %w", args[0], err)
		}

		db, err := storage.NewLevelDB(dbDir)
		if err != nil {
			return fmt.Errorf("failed to open attestation log: %w", err)
		}

		attLog := storage.NewAttestationLog(db)
		defer attLog.Close()

		rec, err := attLog.Get(leaf)
		if err != nil {
			return err
		}

		fmt.Printf("leaf:  %s\nroot:  %s\nvalid: %t\n", rec.Leaf.Hex(), rec.Root.Hex(), rec.Valid)
		return nil
	},
}
