package proving

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
	"github.com/zkcplabs/zkcp/shared"
)

// PreimageProver proves that a SHA-256 preimage exhibits the properties
// attested by a program. Unlike the discrete-log family there is no
// host-side algebra; the hash relation lives entirely inside the attested
// computation.
type PreimageProver struct {
	oracle  oracle.Oracle
	program *program.Program
	logger  *zap.Logger
}

// NewPreimageProver returns a prover for the given program, using the
// given oracle for attested execution.
func NewPreimageProver(o oracle.Oracle, prog *program.Program, opts ...OptionFunc) (*PreimageProver, error) {
	if o == nil {
		return nil, errors.New("invalid `oracle` value; expected: non-nil, given: nil")
	}
	if prog == nil {
		return nil, errors.New("invalid `program` value; expected: non-nil, given: nil")
	}

	options := defaultOption()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return &PreimageProver{
		oracle:  o,
		program: prog,
		logger:  options.logger,
	}, nil
}

// Prove creates a proof that the preimage exhibits the properties attested
// by the prover's program. The call blocks for the duration of the
// oracle's execution.
func (p *PreimageProver) Prove(ctx context.Context, preimage [32]byte, auxInput []byte) (*shared.PreimageProof, error) {
	if len(auxInput) != p.program.AuxInputLen() {
		return nil, shared.InputLengthError{Expected: p.program.AuxInputLen(), Given: len(auxInput)}
	}

	privateInput := make([]byte, 0, 32+len(auxInput))
	privateInput = append(privateInput, preimage[:]...)
	privateInput = append(privateInput, auxInput...)

	p.logger.Info("proving: invoking oracle", zap.String("program", p.program.Name()))

	// This call can take a while.
	att, err := p.oracle.Prove(ctx, p.program.ID(), p.program.Code(), privateInput)
	if err != nil {
		return nil, fmt.Errorf("oracle proving failed: %w", err)
	}

	if expected := shared.PreimageJournalPrefixLen + p.program.AppendixLen(); len(att.Journal) != expected {
		return nil, shared.JournalLengthError{Expected: expected, Given: len(att.Journal)}
	}

	p.logger.Info("proving: generated proof", zap.String("program", p.program.Name()))

	return &shared.PreimageProof{Attestation: att}, nil
}
