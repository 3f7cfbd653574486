// Package oracle defines the computational-integrity oracle boundary: the
// service trusted to execute an attested program over private inputs and to
// certify, later, that a journal was produced by a correct execution.
package oracle

import "context"

// Attestation is the oracle's certified output: the public journal an
// attested program committed, plus an opaque seal proving the journal was
// produced by correctly executing the program. The journal is immutable
// once produced; proof records hold it by value and never modify it.
//
// Journals are deterministic for deterministic inputs. Seals need not be.
type Attestation struct {
	Journal []byte
	Seal    []byte
}

// Oracle produces and verifies attestations of program execution.
//
// Prove executes the program identified by programID over the private
// input. It is blocking and CPU-bound; a zkVM-backed implementation may
// take minutes. No retries are attempted at this layer and there are no
// timeout semantics; callers needing cancellation must run Prove somewhere
// they can abandon.
//
// Verify accepts iff the attestation's seal certifies that some execution
// of the program identified by programID produced the attestation's
// journal. It never re-exposes private inputs.
type Oracle interface {
	Prove(ctx context.Context, programID [32]byte, code, privateInput []byte) (Attestation, error)
	Verify(programID [32]byte, att Attestation) error
}
