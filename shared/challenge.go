package shared

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// SchnorrChallenge computes the Fiat-Shamir challenge binding a proof's
// public nonce, public key, and program identity:
//
//	e = sha256(R || P || programID) mod n
//
// with both points in 33-byte compressed form. The challenge depends only
// on values the prover commits to before the oracle runs, so it cannot be
// chosen adaptively after picking a nonce.
func SchnorrChallenge(programID [32]byte, publicNonce, publicKey *secp256k1.PublicKey) secp256k1.ModNScalar {
	digest := NewTranscript().
		Append(publicNonce.SerializeCompressed()).
		Append(publicKey.SerializeCompressed()).
		Append(programID[:]).
		Sum()

	var e secp256k1.ModNScalar
	e.SetBytes(&digest)
	return e
}
