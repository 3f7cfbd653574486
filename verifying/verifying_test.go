package verifying

import (
	"context"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
	"github.com/zkcplabs/zkcp/proving"
	"github.com/zkcplabs/zkcp/shared"
)

func testSecretKey(tb testing.TB, fill byte) *secp256k1.PrivateKey {
	tb.Helper()
	var buf [32]byte
	for i := range buf {
		buf[i] = fill
	}
	return secp256k1.PrivKeyFromBytes(buf[:])
}

func proveDlogSha256(tb testing.TB) (*oracle.Executor, *shared.DlogProof) {
	tb.Helper()
	r := require.New(tb)

	exec, err := oracle.NewExecutor()
	r.NoError(err)

	prover, err := proving.NewDlogProver(exec, program.DlogSha256)
	r.NoError(err)

	proof, err := prover.Prove(context.Background(), testSecretKey(tb, 3), nil)
	r.NoError(err)
	return exec, proof
}

func TestVerifyDlog(t *testing.T) {
	r := require.New(t)

	exec, proof := proveDlogSha256(t)
	r.NoError(VerifyDlog(exec, program.DlogSha256, proof))
}

func TestVerifyDlogDetectsSwappedPublicKey(t *testing.T) {
	r := require.New(t)

	exec, proof := proveDlogSha256(t)

	// The challenge binds the public key; any other key must be rejected.
	tampered := &shared.DlogProof{
		PublicKey:   testSecretKey(t, 5).PubKey(),
		PublicNonce: proof.PublicNonce,
		Attestation: proof.Attestation,
	}
	r.ErrorIs(VerifyDlog(exec, program.DlogSha256, tampered), shared.ErrChallengeMismatch)
}

func TestVerifyDlogDetectsSwappedPublicNonce(t *testing.T) {
	r := require.New(t)

	exec, proof := proveDlogSha256(t)

	tampered := &shared.DlogProof{
		PublicKey:   proof.PublicKey,
		PublicNonce: testSecretKey(t, 5).PubKey(),
		Attestation: proof.Attestation,
	}
	r.ErrorIs(VerifyDlog(exec, program.DlogSha256, tampered), shared.ErrChallengeMismatch)
}

func tamperedJournal(proof *shared.DlogProof, i int) *shared.DlogProof {
	journal := append([]byte(nil), proof.Journal()...)
	journal[i] ^= 1
	return &shared.DlogProof{
		PublicKey:   proof.PublicKey,
		PublicNonce: proof.PublicNonce,
		Attestation: oracle.Attestation{Journal: journal, Seal: proof.Attestation.Seal},
	}
}

func TestVerifyDlogDetectsTamperedJournal(t *testing.T) {
	r := require.New(t)

	exec, proof := proveDlogSha256(t)

	// Flipping any challenge bit breaks the Fiat-Shamir binding.
	r.ErrorIs(
		VerifyDlog(exec, program.DlogSha256, tamperedJournal(proof, 31)),
		shared.ErrChallengeMismatch,
	)

	// Flipping any signature bit breaks the Schnorr equation.
	r.ErrorIs(
		VerifyDlog(exec, program.DlogSha256, tamperedJournal(proof, 63)),
		shared.ErrSignatureInvalid,
	)

	// Flipping an appendix bit leaves the algebra intact but invalidates
	// the attestation.
	err := VerifyDlog(exec, program.DlogSha256, tamperedJournal(proof, 70))
	r.ErrorContains(err, "attestation is invalid")
	r.ErrorIs(err, oracle.ErrInvalidSeal)
}

func TestVerifyDlogRejectsWrongProgram(t *testing.T) {
	r := require.New(t)

	exec, proof := proveDlogSha256(t)
	r.Error(VerifyDlog(exec, program.DlogSudoku, proof))
}

func TestVerifyDlogConcurrently(t *testing.T) {
	r := require.New(t)

	exec, proof := proveDlogSha256(t)

	// Proof records are immutable after construction; concurrent
	// verification requires no synchronization.
	var eg errgroup.Group
	for i := 0; i < 16; i++ {
		eg.Go(func() error {
			return VerifyDlog(exec, program.DlogSha256, proof)
		})
	}
	r.NoError(eg.Wait())
}

func TestVerifyPreimage(t *testing.T) {
	r := require.New(t)

	exec, err := oracle.NewExecutor()
	r.NoError(err)

	prover, err := proving.NewPreimageProver(exec, program.Sha256Sudoku)
	r.NoError(err)

	solution := [81]byte{
		6, 1, 4, 3, 8, 9, 2, 5, 7,
		5, 8, 3, 6, 7, 2, 4, 1, 9,
		9, 7, 2, 5, 4, 1, 8, 6, 3,
		1, 3, 9, 8, 5, 4, 6, 7, 2,
		2, 5, 8, 1, 6, 7, 9, 3, 4,
		7, 4, 6, 2, 9, 3, 5, 8, 1,
		8, 2, 7, 9, 1, 5, 3, 4, 6,
		4, 9, 5, 7, 3, 6, 1, 2, 8,
		3, 6, 1, 4, 2, 8, 7, 9, 5,
	}

	aux := make([]byte, 12) // cipher nonce
	aux = append(aux, make([]byte, 81)...)
	aux = append(aux, solution[:]...)

	proof, err := prover.Prove(context.Background(), [32]byte{3}, aux)
	r.NoError(err)

	r.NoError(VerifyPreimage(exec, program.Sha256Sudoku, proof))

	tampered := &shared.PreimageProof{Attestation: oracle.Attestation{
		Journal: append([]byte(nil), proof.Journal()...),
		Seal:    proof.Attestation.Seal,
	}}
	tampered.Attestation.Journal[0] ^= 1
	err = VerifyPreimage(exec, program.Sha256Sudoku, tampered)
	r.ErrorContains(err, "attestation is invalid")
	r.ErrorIs(err, oracle.ErrInvalidSeal)
}
