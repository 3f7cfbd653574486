package sudoku

import (
	"fmt"
	"unicode"
)

// ParseBoard parses a board from text. Cells are read as decimal digits,
// left to right and top to bottom; whitespace is ignored, so both a single
// 81-digit line and a 9x9 grid layout are accepted.
func ParseBoard(text string) (Board, error) {
	var board Board
	cells := 0
	for _, c := range text {
		if unicode.IsSpace(c) {
			continue
		}
		if c < '0' || c > '9' {
			return Board{}, fmt.Errorf("invalid board character %q at cell %d", c, cells)
		}
		if cells < len(board) {
			board[cells] = byte(c - '0')
		}
		cells++
	}
	if cells != len(board) {
		return Board{}, fmt.Errorf("invalid board length; expected: %d cells, given: %d", len(board), cells)
	}
	return board, nil
}
