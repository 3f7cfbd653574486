package shared

import (
	"hash"

	"github.com/spacemeshos/sha256-simd"
)

// Transcript hashes an ordered sequence of protocol fields into a 32-byte
// digest. Every nonce and challenge in the protocol is derived from a
// transcript, and prover and verifier must append identical fields in
// identical order: field order and width are part of the wire contract,
// so changing either is a protocol break, not a refactor.
type Transcript struct {
	h hash.Hash
}

// NewTranscript returns an empty SHA-256 transcript.
func NewTranscript() *Transcript {
	return &Transcript{h: sha256.New()}
}

// Append adds one field to the transcript and returns the transcript for
// chaining.
func (t *Transcript) Append(field []byte) *Transcript {
	t.h.Write(field)
	return t
}

// Sum finalizes the transcript.
func (t *Transcript) Sum() [32]byte {
	var digest [32]byte
	copy(digest[:], t.h.Sum(nil))
	return digest
}
