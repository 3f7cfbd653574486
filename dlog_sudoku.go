package zkcp

import (
	"context"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
	"github.com/zkcplabs/zkcp/proving"
	"github.com/zkcplabs/zkcp/shared"
	"github.com/zkcplabs/zkcp/sudoku"
	"github.com/zkcplabs/zkcp/verifying"
)

// DlogSudokuProof proves that the discrete log of a public key is also the
// decryption key to a valid solution of the sudoku puzzle committed in the
// journal. This is the seller's side of a contingent payment: whoever
// learns the secret key can decrypt the solution.
type DlogSudokuProof struct {
	*shared.DlogProof
}

// NewDlogSudokuProof proves knowledge of secretKey, masks the solution
// into a puzzle, and commits the puzzle together with the solution
// encrypted under secretKey. Blocks for the duration of the oracle's
// execution.
func NewDlogSudokuProof(
	ctx context.Context,
	o oracle.Oracle,
	secretKey *secp256k1.PrivateKey,
	solution, mask *sudoku.Board,
	opts ...proving.OptionFunc,
) (*DlogSudokuProof, error) {
	prover, err := proving.NewDlogProver(o, program.DlogSudoku, opts...)
	if err != nil {
		return nil, err
	}

	cipherNonce := deriveCipherNonce(program.DlogSudoku.ID(), secretKey.Serialize(), solution, mask)
	proof, err := prover.Prove(ctx, secretKey, sudokuAuxInput(cipherNonce, solution, mask))
	if err != nil {
		return nil, err
	}
	return &DlogSudokuProof{proof}, nil
}

// DlogSudokuProofFromBytes deserializes a proof produced by Bytes.
func DlogSudokuProofFromBytes(data []byte) (*DlogSudokuProof, error) {
	inner, err := shared.DlogProofFromBytes(data)
	if err != nil {
		return nil, err
	}
	return &DlogSudokuProof{inner}, nil
}

// Puzzle returns the masked puzzle committed in the journal.
func (p *DlogSudokuProof) Puzzle() (sudoku.Board, error) {
	return puzzleFromAppendix(p.Appendix())
}

// DecryptSolution recovers the sudoku solution using the secret key the
// proof is about. It returns shared.ErrSecretMismatch if the key does not
// match the proof's public key, before attempting any decryption.
func (p *DlogSudokuProof) DecryptSolution(secretKey *secp256k1.PrivateKey) (sudoku.Board, error) {
	if !secretKey.PubKey().IsEqual(p.PublicKey) {
		return sudoku.Board{}, shared.ErrSecretMismatch
	}

	var key [32]byte
	copy(key[:], secretKey.Serialize())
	return decryptSolution(key, p.Appendix())
}

// Verify checks the Schnorr binding and the attestation.
func (p *DlogSudokuProof) Verify(o oracle.Oracle) error {
	return verifying.VerifyDlog(o, program.DlogSudoku, p.DlogProof)
}
