package program

import (
	"errors"

	"github.com/spacemeshos/sha256-simd"
	"golang.org/x/crypto/chacha20"

	"github.com/zkcplabs/zkcp/sudoku"
)

// Lengths of the sudoku programs' shared auxiliary input (cipher nonce,
// puzzle mask, solution) and journal appendix (cipher nonce, puzzle,
// encrypted compact solution).
const (
	sudokuAuxInputLen = chacha20.NonceSize + 81 + 81
	sudokuAppendixLen = chacha20.NonceSize + 81 + 36
)

// DlogSha256 is the hash-commitment program. Private inputs:
//
//	secret key (32) || secret nonce (32) || challenge (32)
//
// Journal:
//
//	challenge (32) || signature s (32) || sha256(secret key) (32)
var DlogSha256 = newProgram("dlog-secp256k1-sha256", 0, 32, func(env *guestEnv) error {
	secretKey, err := runSchnorrPrefix(env)
	if err != nil {
		return err
	}

	digest := sha256.Sum256(secretKey[:])
	env.commit(digest[:])
	return nil
})

// DlogSudoku is the discrete-log sudoku ZKCP program. Private inputs:
//
//	secret key (32) || secret nonce (32) || challenge (32) ||
//	cipher nonce (12) || puzzle mask (81) || solution (81)
//
// Journal:
//
//	challenge (32) || signature s (32) ||
//	cipher nonce (12) || puzzle (81) || encrypted compact solution (36)
//
// The decryption key for the compact solution is the secret key itself,
// which is what makes the exchange contingent: learning the discrete log
// also unlocks the solution.
var DlogSudoku = newProgram("dlog-secp256k1-sudoku", sudokuAuxInputLen, sudokuAppendixLen, func(env *guestEnv) error {
	secretKey, err := runSchnorrPrefix(env)
	if err != nil {
		return err
	}
	return runSudokuBody(env, secretKey)
})

// Sha256Sudoku is the hash-preimage sudoku ZKCP program. Private inputs:
//
//	preimage (32) || cipher nonce (12) || puzzle mask (81) || solution (81)
//
// Journal:
//
//	sha256(preimage) (32) ||
//	cipher nonce (12) || puzzle (81) || encrypted compact solution (36)
var Sha256Sudoku = newProgram("sha256-sudoku", sudokuAuxInputLen, sudokuAppendixLen, func(env *guestEnv) error {
	var preimage [32]byte
	if err := env.read(preimage[:]); err != nil {
		return err
	}

	digest := sha256.Sum256(preimage[:])
	env.commit(digest[:])

	return runSudokuBody(env, preimage)
})

// runSchnorrPrefix reads the fixed discrete-log inputs, commits the
// challenge and the Schnorr signature scalar, and returns the secret key
// for use by the rest of the program.
func runSchnorrPrefix(env *guestEnv) ([32]byte, error) {
	var secretKey, secretNonce, challenge [32]byte
	if err := env.read(secretKey[:]); err != nil {
		return secretKey, err
	}
	if err := env.read(secretNonce[:]); err != nil {
		return secretKey, err
	}
	if err := env.read(challenge[:]); err != nil {
		return secretKey, err
	}

	sig := schnorrSignature(&secretKey, &secretNonce, &challenge)
	env.commit(challenge[:])
	env.commit(sig[:])
	return secretKey, nil
}

// runSudokuBody reads the cipher nonce, mask, and solution, asserts the
// solution is valid, and commits the nonce, the masked puzzle, and the
// solution compressed and encrypted under the given key.
//
// An invalid solution aborts the attested computation. An honest prover can
// never trigger it, and a dishonest one gets no usable attestation.
func runSudokuBody(env *guestEnv, key [32]byte) error {
	var cipherNonce [chacha20.NonceSize]byte
	var mask, solution sudoku.Board
	if err := env.read(cipherNonce[:]); err != nil {
		return err
	}
	if err := env.read(mask[:]); err != nil {
		return err
	}
	if err := env.read(solution[:]); err != nil {
		return err
	}

	if !sudoku.IsValidSolution(&solution) {
		return errors.New("sudoku solution is invalid")
	}
	puzzle := sudoku.Mask(&solution, &mask)

	compact := sudoku.Compress(&solution)
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], cipherNonce[:])
	if err != nil {
		return err
	}
	cipher.XORKeyStream(compact[:], compact[:])

	env.commit(cipherNonce[:])
	env.commit(puzzle[:])
	env.commit(compact[:])
	return nil
}
