// Package zkcp implements zero-knowledge contingent payment proofs.
//
// Each proof simultaneously shows two bound facts about one secret without
// revealing it: the secret satisfies a well-known relation (it is the
// discrete log of a public key, or the preimage of a SHA-256 hash), and the
// same secret certifies an auxiliary statement attested by a
// computational-integrity oracle. For the sudoku variants the auxiliary
// statement is "a valid solution to this puzzle is encrypted here, and the
// secret is the decryption key" — so a buyer who learns the secret (say,
// by paying for it on-chain) necessarily learns the solution too.
//
// Three compositions are provided:
//
//   - DlogSha256Proof: discrete log of a public key, bound to the SHA-256
//     hash of the secret key.
//   - DlogSudokuProof: discrete log of a public key, bound to an encrypted
//     sudoku solution keyed by the secret key.
//   - Sha256SudokuProof: SHA-256 preimage, bound to an encrypted sudoku
//     solution keyed by the preimage.
package zkcp

import (
	"golang.org/x/crypto/chacha20"

	"github.com/zkcplabs/zkcp/shared"
	"github.com/zkcplabs/zkcp/sudoku"
)

// Domain tag appended to the cipher-nonce transcript.
const chachaNonceTag = "chacha_nonce"

// Appendix layout shared by the sudoku programs: cipher nonce, puzzle,
// encrypted compact solution.
const sudokuAppendixLen = chacha20.NonceSize + 81 + 36

// deriveCipherNonce derives the ChaCha20 nonce binding a secret to one
// particular solution and mask. The derivation is deterministic, so the
// same inputs always yield the same ciphertext, but the nonce is
// unpredictable without the secret.
func deriveCipherNonce(programID [32]byte, secret []byte, solution, mask *sudoku.Board) [chacha20.NonceSize]byte {
	digest := shared.NewTranscript().
		Append(programID[:]).
		Append(secret).
		Append(solution[:]).
		Append(mask[:]).
		Append([]byte(chachaNonceTag)).
		Sum()

	var nonce [chacha20.NonceSize]byte
	copy(nonce[:], digest[:])
	return nonce
}

// sudokuAuxInput assembles the auxiliary private input the sudoku programs
// read: cipher nonce, then mask, then solution.
func sudokuAuxInput(cipherNonce [chacha20.NonceSize]byte, solution, mask *sudoku.Board) []byte {
	aux := make([]byte, 0, chacha20.NonceSize+162)
	aux = append(aux, cipherNonce[:]...)
	aux = append(aux, mask[:]...)
	aux = append(aux, solution[:]...)
	return aux
}

// puzzleFromAppendix parses the masked puzzle out of a sudoku journal
// appendix.
func puzzleFromAppendix(appendix []byte) (sudoku.Board, error) {
	var puzzle sudoku.Board
	if len(appendix) != sudokuAppendixLen {
		return puzzle, shared.AppendixLengthError{Expected: sudokuAppendixLen, Given: len(appendix)}
	}
	copy(puzzle[:], appendix[chacha20.NonceSize:])
	return puzzle, nil
}

// decryptSolution recovers the sudoku solution from a journal appendix
// using the given key, and re-validates it against the committed puzzle.
// The validity checks cannot fail for a verified proof; a failure is
// surfaced as shared.InvariantError so callers can tell "I skipped
// verification" apart from ordinary bad input.
func decryptSolution(key [32]byte, appendix []byte) (sudoku.Board, error) {
	if len(appendix) != sudokuAppendixLen {
		return sudoku.Board{}, shared.AppendixLengthError{Expected: sudokuAppendixLen, Given: len(appendix)}
	}

	var compact sudoku.CompactBoard
	copy(compact[:], appendix[chacha20.NonceSize+81:])

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], appendix[:chacha20.NonceSize])
	if err != nil {
		return sudoku.Board{}, err
	}
	cipher.XORKeyStream(compact[:], compact[:])

	solution, err := sudoku.Decompress(&compact)
	if err != nil {
		return sudoku.Board{}, err
	}

	puzzle, err := puzzleFromAppendix(appendix)
	if err != nil {
		return sudoku.Board{}, err
	}

	if !sudoku.IsValidSolution(&solution) {
		return sudoku.Board{}, shared.InvariantError{Check: "decrypted solution is not a valid sudoku solution"}
	}
	if !sudoku.SolvesPuzzle(&solution, &puzzle) {
		return sudoku.Board{}, shared.InvariantError{Check: "decrypted solution does not match the proof's puzzle"}
	}
	return solution, nil
}
