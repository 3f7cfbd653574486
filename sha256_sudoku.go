package zkcp

import (
	"context"

	"github.com/spacemeshos/sha256-simd"

	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
	"github.com/zkcplabs/zkcp/proving"
	"github.com/zkcplabs/zkcp/shared"
	"github.com/zkcplabs/zkcp/sudoku"
	"github.com/zkcplabs/zkcp/verifying"
)

// Sha256SudokuProof proves that the preimage of a SHA-256 hash is also the
// decryption key to a valid solution of the sudoku puzzle committed in the
// journal.
type Sha256SudokuProof struct {
	*shared.PreimageProof
}

// NewSha256SudokuProof proves knowledge of preimage, masks the solution
// into a puzzle, and commits the puzzle together with the solution
// encrypted under the preimage. Blocks for the duration of the oracle's
// execution.
func NewSha256SudokuProof(
	ctx context.Context,
	o oracle.Oracle,
	preimage [32]byte,
	solution, mask *sudoku.Board,
	opts ...proving.OptionFunc,
) (*Sha256SudokuProof, error) {
	prover, err := proving.NewPreimageProver(o, program.Sha256Sudoku, opts...)
	if err != nil {
		return nil, err
	}

	cipherNonce := deriveCipherNonce(program.Sha256Sudoku.ID(), preimage[:], solution, mask)
	proof, err := prover.Prove(ctx, preimage, sudokuAuxInput(cipherNonce, solution, mask))
	if err != nil {
		return nil, err
	}
	return &Sha256SudokuProof{proof}, nil
}

// Sha256SudokuProofFromBytes deserializes a proof produced by Bytes.
func Sha256SudokuProofFromBytes(data []byte) (*Sha256SudokuProof, error) {
	inner, err := shared.PreimageProofFromBytes(data)
	if err != nil {
		return nil, err
	}
	return &Sha256SudokuProof{inner}, nil
}

// Puzzle returns the masked puzzle committed in the journal.
func (p *Sha256SudokuProof) Puzzle() (sudoku.Board, error) {
	return puzzleFromAppendix(p.Appendix())
}

// DecryptSolution recovers the sudoku solution using the preimage the
// proof is about. It returns shared.ErrSecretMismatch if the preimage does
// not hash to the journal's committed value, before attempting any
// decryption.
func (p *Sha256SudokuProof) DecryptSolution(preimage [32]byte) (sudoku.Board, error) {
	committed, err := p.Hash()
	if err != nil {
		return sudoku.Board{}, err
	}
	if sha256.Sum256(preimage[:]) != committed {
		return sudoku.Board{}, shared.ErrSecretMismatch
	}
	return decryptSolution(preimage, p.Appendix())
}

// Verify checks the attestation.
func (p *Sha256SudokuProof) Verify(o oracle.Oracle) error {
	return verifying.VerifyPreimage(o, program.Sha256Sudoku, p.PreimageProof)
}
