package zkcp

import (
	"context"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
	"github.com/zkcplabs/zkcp/proving"
	"github.com/zkcplabs/zkcp/shared"
	"github.com/zkcplabs/zkcp/verifying"
)

// DlogSha256Proof proves that the discrete log of a public key is also the
// preimage of a SHA-256 hash committed in the journal.
type DlogSha256Proof struct {
	*shared.DlogProof
}

// NewDlogSha256Proof proves knowledge of secretKey and commits
// sha256(secretKey) as public output. Blocks for the duration of the
// oracle's execution.
func NewDlogSha256Proof(ctx context.Context, o oracle.Oracle, secretKey *secp256k1.PrivateKey, opts ...proving.OptionFunc) (*DlogSha256Proof, error) {
	prover, err := proving.NewDlogProver(o, program.DlogSha256, opts...)
	if err != nil {
		return nil, err
	}
	proof, err := prover.Prove(ctx, secretKey, nil)
	if err != nil {
		return nil, err
	}
	return &DlogSha256Proof{proof}, nil
}

// DlogSha256ProofFromBytes deserializes a proof produced by Bytes.
func DlogSha256ProofFromBytes(data []byte) (*DlogSha256Proof, error) {
	inner, err := shared.DlogProofFromBytes(data)
	if err != nil {
		return nil, err
	}
	return &DlogSha256Proof{inner}, nil
}

// Hash returns the SHA-256 hash of the secret key, from the journal
// appendix.
func (p *DlogSha256Proof) Hash() ([32]byte, error) {
	var hash [32]byte
	appendix := p.Appendix()
	if len(appendix) != program.DlogSha256.AppendixLen() {
		return hash, shared.AppendixLengthError{Expected: program.DlogSha256.AppendixLen(), Given: len(appendix)}
	}
	copy(hash[:], appendix)
	return hash, nil
}

// Verify checks the Schnorr binding and the attestation.
func (p *DlogSha256Proof) Verify(o oracle.Oracle) error {
	return verifying.VerifyDlog(o, program.DlogSha256, p.DlogProof)
}
