package program

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// schnorrSignature computes the Schnorr signature scalar
//
//	s = k + e*d (mod n)
//
// over raw 32-byte big-endian field elements, exactly as the attested
// program does. The host always supplies canonical (already reduced)
// scalars.
func schnorrSignature(secretKey, secretNonce, challenge *[32]byte) [32]byte {
	var d, k, e secp256k1.ModNScalar
	d.SetBytes(secretKey)
	k.SetBytes(secretNonce)
	e.SetBytes(challenge)

	s := e.Mul(&d).Add(&k)
	return s.Bytes()
}
