package sudoku

import (
	"encoding/binary"
	"errors"
)

// ErrMalleableEncoding is returned when decompressing a compact board whose
// row words cannot have been produced by Compress. Rejecting them keeps the
// compact encoding bijective, so a proof cannot commit to two different
// byte representations of the same board.
var ErrMalleableEncoding = errors.New("compact sudoku board representation is non-standard")

// CompactBoard is a board compressed to 9 big-endian uint32 row words, one
// per row, each formed by reading the row's nine digits as a base-10 number.
// Any row word above 999,999,999 is not a valid encoding.
type CompactBoard [36]byte

// Compress packs a board into its compact 36-byte representation.
func Compress(board *Board) CompactBoard {
	var compact CompactBoard
	for row := 0; row < 9; row++ {
		var word uint32
		for column := 0; column < 9; column++ {
			word = word*10 + uint32(board[row*9+column])
		}
		binary.BigEndian.PutUint32(compact[row*4:], word)
	}
	return compact
}

// Decompress unpacks a compact board back into the one-byte-per-cell form.
// It returns ErrMalleableEncoding if any row word exceeds nine base-10
// digits.
func Decompress(compact *CompactBoard) (Board, error) {
	var board Board
	for row := 0; row < 9; row++ {
		word := binary.BigEndian.Uint32(compact[row*4:])
		if word > 999_999_999 {
			return Board{}, ErrMalleableEncoding
		}
		for column := 8; column >= 0; column-- {
			board[row*9+column] = byte(word % 10)
			word /= 10
		}
	}
	return board, nil
}
