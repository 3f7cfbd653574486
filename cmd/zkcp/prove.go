package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zkcplabs/zkcp"
	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
	"github.com/zkcplabs/zkcp/proving"
	"github.com/zkcplabs/zkcp/sudoku"
)

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "generate a contingent payment proof",
	Long: `Generate a proof binding a secret to its public relation, and - for the
sudoku variants - to a solution encrypted under that secret. The proof is
written to the output file in its wire encoding.`,
	RunE: runProve,
}

func init() {
	rootCmd.AddCommand(proveCmd)

	flags := proveCmd.Flags()
	flags.StringVar(&cfg.SecretFile, "secret-file", cfg.SecretFile, "path to the 32-byte hex-encoded secret")
	flags.StringVar(&cfg.SolutionFile, "solution-file", cfg.SolutionFile, "path to the sudoku solution (81 digits)")
	flags.StringVar(&cfg.MaskFile, "mask-file", cfg.MaskFile, "path to the puzzle mask (81 binary digits)")
	flags.StringVar(&cfg.ProofFile, "proof-file", cfg.ProofFile, "output path for the serialized proof")
}

func runProve(cmd *cobra.Command, args []string) error {
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

	exec, err := oracle.NewExecutor(oracle.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	data, err := prove(ctx, exec, secret, logger)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("proving interrupted")
		return err
	case err != nil:
		return err
	}

	if err := os.WriteFile(cfg.ProofFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write proof: %w", err)
	}

	logger.Info("proof written",
		zap.String("program", cfg.Program),
		zap.String("path", cfg.ProofFile),
		zap.Int("size", len(data)),
	)
	return nil
}

func prove(ctx context.Context, exec *oracle.Executor, secret [32]byte, logger *zap.Logger) ([]byte, error) {
	switch cfg.Program {
	case program.DlogSha256.Name():
		secretKey := secp256k1.PrivKeyFromBytes(secret[:])
		proof, err := zkcp.NewDlogSha256Proof(ctx, exec, secretKey, proving.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return proof.Bytes()

	case program.DlogSudoku.Name():
		solution, mask, err := proveBoards()
		if err != nil {
			return nil, err
		}
		secretKey := secp256k1.PrivKeyFromBytes(secret[:])
		proof, err := zkcp.NewDlogSudokuProof(ctx, exec, secretKey, solution, mask, proving.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return proof.Bytes()

	case program.Sha256Sudoku.Name():
		solution, mask, err := proveBoards()
		if err != nil {
			return nil, err
		}
		proof, err := zkcp.NewSha256SudokuProof(ctx, exec, secret, solution, mask, proving.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return proof.Bytes()

	default:
		return nil, fmt.Errorf("unknown program %q", cfg.Program)
	}
}

func proveBoards() (*sudoku.Board, *sudoku.Board, error) {
	if cfg.SolutionFile == "" || cfg.MaskFile == "" {
		return nil, nil, fmt.Errorf("--solution-file and --mask-file flags are required for program %q", cfg.Program)
	}
	solution, err := readBoard(cfg.SolutionFile)
	if err != nil {
		return nil, nil, err
	}
	mask, err := readBoard(cfg.MaskFile)
	if err != nil {
		return nil, nil, err
	}
	return &solution, &mask, nil
}
