package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zkcplabs/zkcp"
	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
	"github.com/zkcplabs/zkcp/sudoku"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "decrypt the sudoku solution from a verified proof",
	Long: `Verify a sudoku proof and decrypt its solution using the secret. This is
the buyer's side of a contingent payment: once the secret is learned, the
solution committed in the proof can be recovered.`,
	RunE: runDecrypt,
}

func init() {
	rootCmd.AddCommand(decryptCmd)

	flags := decryptCmd.Flags()
	flags.StringVar(&cfg.SecretFile, "secret-file", cfg.SecretFile, "path to the 32-byte hex-encoded secret")
	flags.StringVar(&cfg.ProofFile, "proof-file", cfg.ProofFile, "path to the serialized proof")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.SecretFile == "" {
		return errors.New("--secret-file flag is required")
	}
	secret, err := readSecret(cfg.SecretFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.ProofFile)
	if err != nil {
		return fmt.Errorf("failed to read proof: %w", err)
	}

	exec, err := oracle.NewExecutor(oracle.WithLogger(logger))
	if err != nil {
		return err
	}

	solution, err := decrypt(exec, secret, data)
	if err != nil {
		return err
	}

	logger.Info("solution decrypted", zap.String("program", cfg.Program))
	fmt.Print(formatBoard(&solution))
	return nil
}

func decrypt(exec *oracle.Executor, secret [32]byte, data []byte) (sudoku.Board, error) {
	switch cfg.Program {
	case program.DlogSudoku.Name():
		proof, err := zkcp.DlogSudokuProofFromBytes(data)
		if err != nil {
			return sudoku.Board{}, err
		}
		if err := proof.Verify(exec); err != nil {
			return sudoku.Board{}, err
		}
		return proof.DecryptSolution(secp256k1.PrivKeyFromBytes(secret[:]))

	case program.Sha256Sudoku.Name():
		proof, err := zkcp.Sha256SudokuProofFromBytes(data)
		if err != nil {
			return sudoku.Board{}, err
		}
		if err := proof.Verify(exec); err != nil {
			return sudoku.Board{}, err
		}
		return proof.DecryptSolution(secret)

	default:
		return sudoku.Board{}, fmt.Errorf("program %q has no encrypted solution", cfg.Program)
	}
}
