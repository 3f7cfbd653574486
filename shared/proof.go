package shared

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	xdr "github.com/nullstyle/go-xdr/xdr3"

	"github.com/zkcplabs/zkcp/oracle"
)

// Journal prefix lengths fixed per proof family. Discrete-log journals
// start with the challenge and the signature scalar; preimage journals
// start with the SHA-256 hash.
const (
	DlogJournalPrefixLen     = 64
	PreimageJournalPrefixLen = 32
)

const compressedPointLen = 33

// DlogProof is a proof that the holder of a secp256k1 secret key ran an
// attested program over it. It binds a Schnorr signature, recomputable by
// any verifier from the public key and nonce, to the program's journal.
//
// A DlogProof is immutable after construction and safe for concurrent
// verification.
type DlogProof struct {
	PublicKey   *secp256k1.PublicKey
	PublicNonce *secp256k1.PublicKey
	Attestation oracle.Attestation
}

// Journal returns the attested public output of the program execution.
func (p *DlogProof) Journal() []byte {
	return p.Attestation.Journal
}

// Challenge parses the challenge scalar from the journal's first 32 bytes.
func (p *DlogProof) Challenge() (secp256k1.ModNScalar, error) {
	return journalScalar(p.Journal(), 0)
}

// Signature parses the Schnorr signature scalar s from journal bytes
// 32..64.
func (p *DlogProof) Signature() (secp256k1.ModNScalar, error) {
	return journalScalar(p.Journal(), 32)
}

// Appendix returns the journal bytes beyond the fixed 64-byte prefix:
// whatever additional public output the program variant committed.
func (p *DlogProof) Appendix() []byte {
	if len(p.Journal()) < DlogJournalPrefixLen {
		return nil
	}
	return p.Journal()[DlogJournalPrefixLen:]
}

// Bytes serializes the proof: the public key and public nonce in 33-byte
// compressed form, followed by the XDR-framed attestation.
func (p *DlogProof) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(p.PublicKey.SerializeCompressed())
	buf.Write(p.PublicNonce.SerializeCompressed())
	if _, err := xdr.Marshal(&buf, &p.Attestation); err != nil {
		return nil, fmt.Errorf("failed to marshal attestation: %w", err)
	}
	return buf.Bytes(), nil
}

// DlogProofFromBytes deserializes a proof produced by Bytes. Point
// encodings are validated before use; off-curve or truncated points are
// rejected.
func DlogProofFromBytes(data []byte) (*DlogProof, error) {
	if len(data) < 2*compressedPointLen {
		return nil, fmt.Errorf("invalid proof length; expected: >= %d, given: %d", 2*compressedPointLen, len(data))
	}

	publicKey, err := secp256k1.ParsePubKey(data[:compressedPointLen])
	if err != nil {
		return nil, fmt.Errorf("invalid public key encoding: %w", err)
	}
	publicNonce, err := secp256k1.ParsePubKey(data[compressedPointLen : 2*compressedPointLen])
	if err != nil {
		return nil, fmt.Errorf("invalid public nonce encoding: %w", err)
	}

	var att oracle.Attestation
	if _, err := xdr.Unmarshal(bytes.NewReader(data[2*compressedPointLen:]), &att); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attestation: %w", err)
	}

	return &DlogProof{
		PublicKey:   publicKey,
		PublicNonce: publicNonce,
		Attestation: att,
	}, nil
}

// PreimageProof is a proof that the holder of a SHA-256 preimage ran an
// attested program over it. The hash relation lives entirely inside the
// attested computation, so the record carries nothing but the attestation.
type PreimageProof struct {
	Attestation oracle.Attestation
}

// Journal returns the attested public output of the program execution.
func (p *PreimageProof) Journal() []byte {
	return p.Attestation.Journal
}

// Hash returns the SHA-256 hash the proof is about, from the journal's
// first 32 bytes. The preimage of this hash was a private input to the
// program.
func (p *PreimageProof) Hash() ([32]byte, error) {
	var hash [32]byte
	if len(p.Journal()) < PreimageJournalPrefixLen {
		return hash, JournalLengthError{Expected: PreimageJournalPrefixLen, Given: len(p.Journal())}
	}
	copy(hash[:], p.Journal())
	return hash, nil
}

// Appendix returns the journal bytes beyond the fixed 32-byte prefix.
func (p *PreimageProof) Appendix() []byte {
	if len(p.Journal()) < PreimageJournalPrefixLen {
		return nil
	}
	return p.Journal()[PreimageJournalPrefixLen:]
}

// Bytes serializes the proof: the XDR-framed attestation alone.
func (p *PreimageProof) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := xdr.Marshal(&buf, &p.Attestation); err != nil {
		return nil, fmt.Errorf("failed to marshal attestation: %w", err)
	}
	return buf.Bytes(), nil
}

// PreimageProofFromBytes deserializes a proof produced by Bytes.
func PreimageProofFromBytes(data []byte) (*PreimageProof, error) {
	var att oracle.Attestation
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &att); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attestation: %w", err)
	}
	return &PreimageProof{Attestation: att}, nil
}

func journalScalar(journal []byte, offset int) (secp256k1.ModNScalar, error) {
	var s secp256k1.ModNScalar
	if len(journal) < offset+32 {
		return s, JournalLengthError{Expected: offset + 32, Given: len(journal)}
	}
	if overflow := s.SetByteSlice(journal[offset : offset+32]); overflow {
		return s, errors.New("journal scalar is not canonical; value overflows the curve order")
	}
	return s, nil
}
