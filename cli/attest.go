package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"merklepath/log"
	"merklepath/record"
	"merklepath/storage"
)

var attestCmd = &cobra.Command{
	Use:   "attest LEAF ROOT [SIBLING:DIR ...]",
	Short: "Verify a Merkle path and store the verdict in the attestation log",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := statementFromArgs(args)
		if err != nil {
			return err
		}

		rec := record.Attest(st)

		db, err := storage.NewLevelDB(dbDir)
		if err != nil {
			return fmt.Errorf("failed to open attestation log: %w", err)
		}

		attLog := storage.NewAttestationLog(db)
		defer attLog.Close()

		if err := attLog.Put(rec); err != nil {
			return fmt.Errorf("failed to store record: %w", err)
		}

		log.New().Infow("stored attestation",
			"leaf", rec.Leaf.Hex(), "root", rec.Root.Hex(), "valid", rec.Valid)

		fmt.Println(hex.EncodeToString(rec.Encode()))
		return nil
	},
}
