package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zkcplabs/zkcp"
	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <proof file> [proof file...]",
	Short: "verify contingent payment proofs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	exec, err := oracle.NewExecutor(oracle.WithLogger(logger))
	if err != nil {
		return err
	}

	var eg errgroup.Group
	for _, path := range args {
		path := path
		eg.Go(func() error {
			if err := verifyFile(exec, path); err != nil {
				logger.Error("proof is invalid", zap.String("path", path), zap.Error(err))
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Info("proof is valid", zap.String("path", path), zap.String("program", cfg.Program))
			return nil
		})
	}
	return eg.Wait()
}

func verifyFile(exec *oracle.Executor, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read proof: %w", err)
	}

	switch cfg.Program {
	case program.DlogSha256.Name():
		proof, err := zkcp.DlogSha256ProofFromBytes(data)
		if err != nil {
			return err
		}
		return proof.Verify(exec)

	case program.DlogSudoku.Name():
		proof, err := zkcp.DlogSudokuProofFromBytes(data)
		if err != nil {
			return err
		}
		return proof.Verify(exec)

	case program.Sha256Sudoku.Name():
		proof, err := zkcp.Sha256SudokuProofFromBytes(data)
		if err != nil {
			return err
		}
		return proof.Verify(exec)

	default:
		return fmt.Errorf("unknown program %q", cfg.Program)
	}
}
