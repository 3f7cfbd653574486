package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrChallengeMismatch is returned when the challenge committed in a
	// journal does not equal the challenge recomputed from the proof's
	// public values.
	ErrChallengeMismatch = errors.New("journal challenge does not match computed challenge")

	// ErrSignatureInvalid is returned when the Schnorr equation
	// s*G == R + e*P does not hold for a proof's public values.
	ErrSignatureInvalid = errors.New("schnorr signature is invalid")

	// ErrSecretMismatch is returned when a supplied secret does not match
	// the relation committed in a proof, before any decryption is
	// attempted.
	ErrSecretMismatch = errors.New("secret does not match the relation committed in the proof")
)

// InputLengthError is returned when the auxiliary input handed to a prover
// does not match the program's declared length. It is raised before the
// oracle is ever invoked.
type InputLengthError struct {
	Expected int
	Given    int
}

func (err InputLengthError) Error() string {
	return fmt.Sprintf("invalid `auxInput` length; expected: %d, given: %d", err.Expected, err.Given)
}

// JournalLengthError is returned when a journal does not have the size the
// program declares. It indicates a program or version mismatch and is never
// silently truncated around.
type JournalLengthError struct {
	Expected int
	Given    int
}

func (err JournalLengthError) Error() string {
	return fmt.Sprintf("invalid journal length; expected: %d, given: %d", err.Expected, err.Given)
}

// AppendixLengthError is returned when a journal's appendix does not have
// the length the program variant declares for it.
type AppendixLengthError struct {
	Expected int
	Given    int
}

func (err AppendixLengthError) Error() string {
	return fmt.Sprintf("invalid journal appendix length; expected: %d, given: %d", err.Expected, err.Given)
}

// InvariantError reports a consistency failure that cannot occur once the
// surrounding proof has been verified, such as a decrypted solution failing
// validity checks. Seeing one means the caller skipped verification.
type InvariantError struct {
	Check string
}

func (err InvariantError) Error() string {
	return fmt.Sprintf("%s; did you forget to verify the proof?", err.Check)
}
