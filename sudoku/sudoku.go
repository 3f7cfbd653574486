// Package sudoku implements the 9x9 board representation used by the
// contingent-payment protocols: validity checking, puzzle masking, and a
// bijective compact encoding that halves the number of bytes run through
// the stream cipher inside the attested computation.
package sudoku

import "fmt"

// Board is a 9x9 sudoku board with one byte per cell. Cells are indexed
// left to right, top to bottom. A cell holds a digit 1-9, or 0 for blank.
type Board [81]byte

// Mask turns a solution into a puzzle by zeroing out cells. Cells set to 0
// in the mask are blanked; cells set to 1 keep the solution's value.
//
// A mask byte outside {0, 1} is a contract violation by the caller, not a
// recoverable input error, so this function panics on one.
func Mask(solution, mask *Board) Board {
	puzzle := *solution
	for i := 0; i < 81; i++ {
		switch mask[i] {
		case 0:
			puzzle[i] = 0
		case 1:
		default:
			panic(fmt.Sprintf("invalid mask byte at cell %d: %d", i, mask[i]))
		}
	}
	return puzzle
}

func checkDigit(digit byte, seen *[9]bool) bool {
	if digit < 1 || digit > 9 {
		return false
	}
	if seen[digit-1] {
		return false
	}
	seen[digit-1] = true
	return true
}

// IsValidSolution reports whether the board is a valid sudoku solution:
// every row, every column, and every 3x3 subgrid contains each of the
// digits 1-9 exactly once.
func IsValidSolution(board *Board) bool {
	for row := 0; row < 9; row++ {
		var seen [9]bool
		for column := 0; column < 9; column++ {
			if !checkDigit(board[row*9+column], &seen) {
				return false
			}
		}
	}

	for column := 0; column < 9; column++ {
		var seen [9]bool
		for row := 0; row < 9; row++ {
			if !checkDigit(board[row*9+column], &seen) {
				return false
			}
		}
	}

	for grid := 0; grid < 9; grid++ {
		var seen [9]bool
		gridRowStart := grid / 3 * 3
		gridColStart := grid % 3 * 3
		for i := 0; i < 9; i++ {
			row := gridRowStart + i/3
			column := gridColStart + i%3
			if !checkDigit(board[row*9+column], &seen) {
				return false
			}
		}
	}

	return true
}

// SolvesPuzzle reports whether solution matches puzzle on every cell the
// puzzle has filled in. Blank (zero) puzzle cells match any solution cell.
func SolvesPuzzle(solution, puzzle *Board) bool {
	for i := 0; i < 81; i++ {
		if puzzle[i] != 0 && solution[i] != puzzle[i] {
			return false
		}
	}
	return true
}
