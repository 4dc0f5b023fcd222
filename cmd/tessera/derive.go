package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tessera/internal/circuit"
	"tessera/internal/eval"
	"tessera/internal/grid"
)

var deriveCmd = &cobra.Command{
	Use:   "derive [flags] value",
	Short: "Derive gate sequences from an accepted state",
	Long:  `Derive evaluates the state and, if accepted, maps its token grid to a deterministic quantum gate sequence and its classical shadow`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDerive,
}

func init() {
	addRequestFlags(deriveCmd)
	deriveCmd.Flags().Int("max-qubits", 8, "qubit ceiling for the derived circuit")
	deriveCmd.Flags().Int("max-layers", 16, "layer ceiling for the derived circuit")
	deriveCmd.Flags().Bool("reversible", false, "restrict to gates with an exact classical correspondent")
	deriveCmd.Flags().String("out", "", "write source_quantum.txt and source_classical.txt into this directory")
}

func runDerive(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	rep, err := eval.New().Run(req)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	if !rep.Accepted {
		// Not an error: the verdict is the answer.
		fmt.Fprintf(cmd.OutOrStdout(), "state rejected (%s); no circuits derived\n", rep.Reason)
		return nil
	}

	g, ok := grid.New(rep.Tokens)
	if !ok {
		return fmt.Errorf("accepted state has no square grid (token count %d)", len(rep.Tokens))
	}

	maxQubits, _ := cmd.Flags().GetInt("max-qubits")
	maxLayers, _ := cmd.Flags().GetInt("max-layers")
	reversible, _ := cmd.Flags().GetBool("reversible")

	d := circuit.Derive(g, circuit.Options{
		MaxQubits:      maxQubits,
		MaxLayers:      maxLayers,
		ReversibleOnly: reversible,
	})

	quantum := circuit.Sequence(d.Quantum)
	classical := circuit.Sequence(d.Classical)

	outDir, _ := cmd.Flags().GetString("out")
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		qPath := filepath.Join(outDir, "source_quantum.txt")
		cPath := filepath.Join(outDir, "source_classical.txt")
		if err := os.WriteFile(qPath, []byte(quantum+"\n"), 0o644); err != nil {
			return err
		}
		if err := os.WriteFile(cPath, []byte(classical+"\n"), 0o644); err != nil {
			return err
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote:\n  %s\n  %s\n", qPath, cPath)
		}
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "grid %dx%d, qubits %d, layers %d\n", rep.GridSide, rep.GridSide, d.Qubits, d.Layers)
	fmt.Fprintf(cmd.OutOrStdout(), "quantum:   %s\n", quantum)
	fmt.Fprintf(cmd.OutOrStdout(), "classical: %s\n", classical)
	return nil
}
