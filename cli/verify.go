package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"merklepath/merkle"
	"merklepath/record"
)

var verifyCmd = &cobra.Command{
	Use:   "verify LEAF ROOT [SIBLING:DIR ...]",
	Short: "Verify a Merkle path locally",
	Long: `Verify recomputes the root from LEAF and the given siblings and compares
it to ROOT. Digests are hex. DIR is L when the verified digest is the left
operand at that level and R when it is the right one. With --stdin the
binary statement layout is read from standard input instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := statementFromArgs(args)
		if err != nil {
			return err
		}

		if !merkle.Verify(st.Leaf, st.Root, st.Proof) {
			fmt.Println("false")
			os.Exit(1)
		}

		fmt.Println("true")
		return nil
	},
}

func statementFromArgs(args []string) (record.Statement, error) {
	if readStdin {
		if len(args) != 0 {
			return record.Statement{}, fmt.Errorf("--stdin takes no positional arguments")
		}

		return record.ReadStatement(os.Stdin)
	}

	if len(args) < 2 {
		return record.Statement{}, fmt.Errorf("expected LEAF and ROOT digests")
	}

	var st record.Statement
	var err error

	if st.Leaf, err = merkle.DigestFromHex(args[0]); err != nil {
		return record.Statement{}, fmt.Errorf("invalid leaf %s: %w", args[0], err)
	}
	if st.Root, err = merkle.DigestFromHex(args[1]); err != nil {
		return record.Statement{}, fmt.Errorf("invalid root %s: %w", args[1], err)
	}

	for _, arg := range args[2:] {
		step, err := parseStep(arg)
		if err != nil {
			return record.Statement{}, err
		}

		st.Proof = append(st.Proof, step)
	}

	return st, nil
}

func parseStep(arg string) (merkle.Step, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 2 {
		return merkle.Step{}, fmt.Errorf("invalid proof step %s: want SIBLING:DIR", arg)
	}

	sibling, err := merkle.DigestFromHex(parts[0])
	if err != nil {
		return merkle.Step{}, fmt.Errorf("invalid sibling %s: %w", parts[0], err)
	}

	switch strings.ToUpper(parts[1]) {
	case "L":
		return merkle.Step{Sibling: sibling}, nil
	case "R":
		return merkle.Step{Sibling: sibling, Right: true}, nil
	default:
		return merkle.Step{}, fmt.Errorf("invalid direction %s: want L or R", parts[1])
	}
}
