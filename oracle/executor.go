package oracle

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/spacemeshos/sha256-simd"
	"go.uber.org/zap"

	"github.com/zkcplabs/zkcp/program"
)

var (
	// ErrUnknownProgram is returned when an executor is asked to prove or
	// verify a program it has no registered logic for.
	ErrUnknownProgram = errors.New("program is not registered with the executor")

	// ErrInvalidSeal is returned when an attestation's seal does not match
	// its journal and program identity.
	ErrInvalidSeal = errors.New("attestation seal is invalid")
)

const sealDomain = "zkcp/executor/seal/v1"

type option struct {
	logger   *zap.Logger
	programs []*program.Program
}

// OptionFunc is a function that sets an option for an Executor instance.
type OptionFunc func(*option) error

// WithLogger sets the logger the executor reports program executions to.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(opts *option) error {
		if logger == nil {
			return errors.New("invalid `logger` value; expected: non-nil, given: nil")
		}
		opts.logger = logger
		return nil
	}
}

// WithProgram registers an additional program with the executor, beyond
// the built-in variants.
func WithProgram(prog *program.Program) OptionFunc {
	return func(opts *option) error {
		if prog == nil {
			return errors.New("invalid `program` value; expected: non-nil, given: nil")
		}
		opts.programs = append(opts.programs, prog)
		return nil
	}
}

// Executor is an Oracle that runs attested programs directly in-process.
//
// It produces real journals but not real proofs: the seal is a plain digest
// binding the journal to the program identity, so it certifies integrity
// only between parties that already trust the process that produced it.
// That makes the Executor suitable for tests, development, and single-party
// use. Deployments where the verifier must not trust the prover inject a
// zkVM-backed Oracle instead; nothing above this boundary changes.
type Executor struct {
	programs map[[32]byte]*program.Program
	logger   *zap.Logger
}

// NewExecutor returns an Executor with all built-in program variants
// registered.
func NewExecutor(opts ...OptionFunc) (*Executor, error) {
	options := &option{
		logger:   zap.NewNop(),
		programs: program.All(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	programs := make(map[[32]byte]*program.Program, len(options.programs))
	for _, prog := range options.programs {
		programs[prog.ID()] = prog
	}
	return &Executor{
		programs: programs,
		logger:   options.logger,
	}, nil
}

// Prove executes the identified program over the private input and seals
// the resulting journal. A program abort (such as an invalid sudoku
// solution failing the in-program assertion) surfaces as an error with no
// attestation.
func (e *Executor) Prove(ctx context.Context, programID [32]byte, code, privateInput []byte) (att Attestation, err error) {
	if err := ctx.Err(); err != nil {
		return Attestation{}, err
	}

	prog, ok := e.programs[programID]
	if !ok {
		return Attestation{}, ErrUnknownProgram
	}
	if id := sha256.Sum256(code); id != programID {
		return Attestation{}, fmt.Errorf("program code digest %x does not match program id %x", id, programID)
	}

	// A panic inside the program is the in-process equivalent of a zkVM
	// guest abort: the execution terminates with no usable attestation.
	defer func() {
		if r := recover(); r != nil {
			att = Attestation{}
			err = fmt.Errorf("attested program %q aborted: %v", prog.Name(), r)
		}
	}()

	journal, err := prog.Execute(privateInput)
	if err != nil {
		return Attestation{}, fmt.Errorf("attested program %q failed: %w", prog.Name(), err)
	}

	e.logger.Debug("executor: attested program completed",
		zap.String("program", prog.Name()),
		zap.Int("journal_len", len(journal)),
	)

	return Attestation{
		Journal: journal,
		Seal:    seal(programID, journal),
	}, nil
}

// Verify checks that the attestation's seal binds its journal to the
// identified program.
func (e *Executor) Verify(programID [32]byte, att Attestation) error {
	if _, ok := e.programs[programID]; !ok {
		return ErrUnknownProgram
	}
	if !bytes.Equal(att.Seal, seal(programID, att.Journal)) {
		return ErrInvalidSeal
	}
	return nil
}

func seal(programID [32]byte, journal []byte) []byte {
	h := sha256.New()
	h.Write([]byte(sealDomain))
	h.Write(programID[:])
	h.Write(journal)
	return h.Sum(nil)
}
