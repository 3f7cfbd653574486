package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/zkcplabs/zkcp/sudoku"
)

// readSecret reads a 32-byte hex-encoded secret from a file.
func readSecret(path string) ([32]byte, error) {
	var secret [32]byte

	data, err := os.ReadFile(path)
	if err != nil {
		return secret, fmt.Errorf("failed to read secret file: %w", err)
	}

	decoded, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return secret, fmt.Errorf("invalid secret encoding: %w", err)
	}
	if len(decoded) != len(secret) {
		return secret, fmt.Errorf("invalid `secret` length; expected: %d, given: %v", len(secret), len(decoded))
	}

	copy(secret[:], decoded)
	return secret, nil
}

func readBoard(path string) (sudoku.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sudoku.Board{}, fmt.Errorf("failed to read board file: %w", err)
	}
	return sudoku.ParseBoard(string(data))
}

// formatBoard renders a board as a 9x9 grid with box separators.
func formatBoard(board *sudoku.Board) string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		if row > 0 && row%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for col := 0; col < 9; col++ {
			if col > 0 {
				sb.WriteByte(' ')
				if col%3 == 0 {
					sb.WriteString("| ")
				}
			}
			sb.WriteByte('0' + board[row*9+col])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
