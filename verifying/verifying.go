// Package verifying checks proof records: it recomputes the public binding
// values, checks the Schnorr equation where the proof family has one, and
// delegates computational integrity to the oracle.
//
// Verification is a pure computation over immutable data and may be invoked
// concurrently from any number of call sites without synchronization.
package verifying

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
	"github.com/zkcplabs/zkcp/shared"
)

// VerifyDlog ensures the validity of a discrete-log proof against its
// program:
//
//  1. the journal's challenge equals the challenge recomputed from the
//     stored public nonce, public key, and program identity;
//  2. the Schnorr equation s*G == R + e*P holds;
//  3. the oracle accepts the attestation for the program identity.
//
// It returns nil if the proof is valid or an error describing the failure
// otherwise. No partial trust is granted: any failing step rejects the
// proof.
func VerifyDlog(o oracle.Oracle, prog *program.Program, proof *shared.DlogProof) error {
	if proof.PublicKey == nil || proof.PublicNonce == nil {
		return errors.New("invalid proof; expected: non-nil public key and public nonce")
	}

	challenge := shared.SchnorrChallenge(prog.ID(), proof.PublicNonce, proof.PublicKey)
	journalChallenge, err := proof.Challenge()
	if err != nil {
		return err
	}
	if !challenge.Equals(&journalChallenge) {
		return shared.ErrChallengeMismatch
	}

	s, err := proof.Signature()
	if err != nil {
		return err
	}
	if !schnorrEquationHolds(&s, &challenge, proof.PublicNonce, proof.PublicKey) {
		return shared.ErrSignatureInvalid
	}

	if err := o.Verify(prog.ID(), proof.Attestation); err != nil {
		return fmt.Errorf("attestation is invalid: %w", err)
	}
	return nil
}

// VerifyPreimage ensures the validity of a preimage proof against its
// program. The hash relation is checked inside the attested computation,
// so verification delegates entirely to the oracle.
func VerifyPreimage(o oracle.Oracle, prog *program.Program, proof *shared.PreimageProof) error {
	if err := o.Verify(prog.ID(), proof.Attestation); err != nil {
		return fmt.Errorf("attestation is invalid: %w", err)
	}
	return nil
}

// schnorrEquationHolds checks s*G == R + e*P.
func schnorrEquationHolds(s, e *secp256k1.ModNScalar, publicNonce, publicKey *secp256k1.PublicKey) bool {
	var sG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(s, &sG)

	var p, eP, r, rhs secp256k1.JacobianPoint
	publicKey.AsJacobian(&p)
	secp256k1.ScalarMultNonConst(e, &p, &eP)
	publicNonce.AsJacobian(&r)
	secp256k1.AddNonConst(&r, &eP, &rhs)

	sG.ToAffine()
	rhs.ToAffine()
	return sG.X.Equals(&rhs.X) && sG.Y.Equals(&rhs.Y) && sG.Z.Equals(&rhs.Z)
}
