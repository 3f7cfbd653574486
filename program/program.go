// Package program defines the attested computations at the heart of each
// proof variant: the exact private-input layout each program reads, the
// logic it runs, and the public journal it commits to. Prover and verifier
// both recompute pieces of these programs, so the byte layouts here are
// protocol contracts; reordering a field breaks soundness, not just
// compatibility.
package program

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spacemeshos/sha256-simd"
)

// Program describes one attested computation: a content-addressed identity,
// the program image handed to the oracle, the declared auxiliary-input and
// appendix lengths, and the logic itself.
//
// Programs are immutable and safe to share across concurrent provers and
// verifiers.
type Program struct {
	name        string
	code        []byte
	id          [32]byte
	auxInputLen int
	appendixLen int
	run         func(env *guestEnv) error
}

func newProgram(name string, auxInputLen, appendixLen int, run func(env *guestEnv) error) *Program {
	// The local executor carries no machine image; the code is a canonical
	// versioned descriptor whose digest serves as the program identity. An
	// oracle backed by a real zkVM substitutes its program image here.
	code := []byte("zkcp/program/" + name + "/v1")
	return &Program{
		name:        name,
		code:        code,
		id:          sha256.Sum256(code),
		auxInputLen: auxInputLen,
		appendixLen: appendixLen,
		run:         run,
	}
}

// Name returns the program's human-readable name.
func (p *Program) Name() string { return p.name }

// ID returns the content-addressed program identity: the SHA-256 digest of
// the program code.
func (p *Program) ID() [32]byte { return p.id }

// Code returns the program image to hand to the oracle.
func (p *Program) Code() []byte { return p.code }

// AuxInputLen is the required length of the auxiliary private input,
// beyond the fixed fields read by every program of the same family.
func (p *Program) AuxInputLen() int { return p.auxInputLen }

// AppendixLen is the length of the journal beyond the family's fixed
// prefix (64 bytes for discrete-log programs, 32 for preimage programs).
func (p *Program) AppendixLen() int { return p.appendixLen }

// Execute runs the attested computation over the private input and returns
// the journal it commits. Oracles that execute programs in-process call
// this; a zkVM-backed oracle runs the program image instead and must
// produce a bit-identical journal.
func (p *Program) Execute(privateInput []byte) ([]byte, error) {
	env := &guestEnv{in: bytes.NewReader(privateInput)}
	if err := p.run(env); err != nil {
		return nil, err
	}
	if env.in.Len() != 0 {
		return nil, fmt.Errorf("invalid private input length; %d trailing bytes after program %q consumed its inputs", env.in.Len(), p.name)
	}
	return env.journal.Bytes(), nil
}

// All returns every program variant, for oracle registration.
func All() []*Program {
	return []*Program{DlogSha256, DlogSudoku, Sha256Sudoku}
}

// ByName returns the program variant registered under the given name.
func ByName(name string) (*Program, error) {
	for _, prog := range All() {
		if prog.Name() == name {
			return prog, nil
		}
	}
	return nil, fmt.Errorf("unknown program %q", name)
}

// guestEnv is the execution environment an attested program runs in: a
// reader over the ordered private inputs and a writer for the public
// journal.
type guestEnv struct {
	in      *bytes.Reader
	journal bytes.Buffer
}

func (env *guestEnv) read(buf []byte) error {
	if _, err := io.ReadFull(env.in, buf); err != nil {
		return fmt.Errorf("short private input: %w", err)
	}
	return nil
}

func (env *guestEnv) commit(b []byte) {
	env.journal.Write(b)
}
