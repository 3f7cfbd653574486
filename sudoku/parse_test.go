package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	r := require.New(t)

	grid := `
		6 1 4  3 8 9  2 5 7
		5 8 3  6 7 2  4 1 9
		9 7 2  5 4 1  8 6 3

		1 3 9  8 5 4  6 7 2
		2 5 8  1 6 7  9 3 4
		7 4 6  2 9 3  5 8 1

		8 2 7  9 1 5  3 4 6
		4 9 5  7 3 6  1 2 8
		3 6 1  4 2 8  7 9 5
	`
	board, err := ParseBoard(grid)
	r.NoError(err)
	r.True(IsValidSolution(&board))

	// The same digits as one unbroken line parse identically.
	line, err := ParseBoard(strings.Join(strings.Fields(grid), ""))
	r.NoError(err)
	r.Equal(board, line)
}

func TestParseBoardRejectsBadInput(t *testing.T) {
	r := require.New(t)

	_, err := ParseBoard(strings.Repeat("1", 80))
	r.ErrorContains(err, "expected: 81 cells, given: 80")

	_, err = ParseBoard(strings.Repeat("1", 82))
	r.ErrorContains(err, "expected: 81 cells, given: 82")

	_, err = ParseBoard(strings.Repeat("1", 40) + "x" + strings.Repeat("1", 40))
	r.ErrorContains(err, `invalid board character 'x' at cell 40`)
}
