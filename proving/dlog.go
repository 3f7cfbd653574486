// Package proving builds proof records by deriving the protocol's
// deterministic nonces and challenges, invoking the computational-integrity
// oracle, and validating the shape of what comes back.
package proving

import (
	"context"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"go.uber.org/zap"

	"github.com/zkcplabs/zkcp/oracle"
	"github.com/zkcplabs/zkcp/program"
	"github.com/zkcplabs/zkcp/shared"
)

// Domain tag appended to the secret-nonce transcript.
const secpNonceTag = "secp256k1_nonce"

// DlogProver proves that a secp256k1 secret key exhibits the properties
// attested by a program, bound by a Schnorr signature over a Fiat-Shamir
// challenge. Provers are stateless between calls and safe for concurrent
// use.
type DlogProver struct {
	oracle  oracle.Oracle
	program *program.Program
	logger  *zap.Logger
}

// NewDlogProver returns a prover for the given program, using the given
// oracle for attested execution.
func NewDlogProver(o oracle.Oracle, prog *program.Program, opts ...OptionFunc) (*DlogProver, error) {
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

	return &DlogProver{
		oracle:  o,
		program: prog,
		logger:  options.logger,
	}, nil
}

// Prove creates a proof that the secret key exhibits the properties
// attested by the prover's program, with auxInput as the program's
// auxiliary private input.
//
// The secret nonce is derived deterministically from the program identity,
// the secret key, and the auxiliary input, so identical inputs always
// produce an identical journal. The call blocks for the duration of the
// oracle's execution.
func (p *DlogProver) Prove(ctx context.Context, secretKey *secp256k1.PrivateKey, auxInput []byte) (*shared.DlogProof, error) {
	if secretKey == nil {
		return nil, errors.New("invalid `secretKey` value; expected: non-nil, given: nil")
	}
	// Zero is not a valid scalar: it has no discrete log to prove.
	if secretKey.Key.IsZero() {
		return nil, errors.New("invalid `secretKey` value; expected: a non-zero scalar, given: zero")
	}
	if len(auxInput) != p.program.AuxInputLen() {
		return nil, shared.InputLengthError{Expected: p.program.AuxInputLen(), Given: len(auxInput)}
	}

	programID := p.program.ID()
	secretKeyBytes := secretKey.Serialize()

	nonceDigest := shared.NewTranscript().
		Append(programID[:]).
		Append(secretKeyBytes).
		Append(auxInput).
		Append([]byte(secpNonceTag)).
		Sum()
	var secretNonce secp256k1.ModNScalar
	secretNonce.SetBytes(&nonceDigest)
	nonceKey := secp256k1.NewPrivateKey(&secretNonce)

	publicKey := secretKey.PubKey()
	publicNonce := nonceKey.PubKey()

	challenge := shared.SchnorrChallenge(programID, publicNonce, publicKey)
	challengeBytes := challenge.Bytes()
	secretNonceBytes := nonceKey.Serialize()

	privateInput := make([]byte, 0, 96+len(auxInput))
	privateInput = append(privateInput, secretKeyBytes...)
	privateInput = append(privateInput, secretNonceBytes...)
	privateInput = append(privateInput, challengeBytes[:]...)
	privateInput = append(privateInput, auxInput...)

	p.logger.Info("proving: invoking oracle", zap.String("program", p.program.Name()))

	// This call can take a while.
	att, err := p.oracle.Prove(ctx, programID, p.program.Code(), privateInput)
	if err != nil {
		return nil, fmt.Errorf("oracle proving failed: %w", err)
	}

	if expected := shared.DlogJournalPrefixLen + p.program.AppendixLen(); len(att.Journal) != expected {
		return nil, shared.JournalLengthError{Expected: expected, Given: len(att.Journal)}
	}

	p.logger.Info("proving: generated proof", zap.String("program", p.program.Name()))

	return &shared.DlogProof{
		PublicKey:   publicKey,
		PublicNonce: publicNonce,
		Attestation: att,
	}, nil
}
