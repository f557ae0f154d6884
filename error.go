package mcclellan

import "fmt"

// ErrorKind classifies a CompileError. Every compile failure is one of
// these; there is no partial output on failure.
type ErrorKind uint8

const (
	// StateOverflow: more than 2^16 states, or an assigned implementation
	// index collides with the ACCEPT/ACCEL flag bits reserved at the top
	// of a packed successor index.
	StateOverflow ErrorKind = iota

	// InvalidConfig: the supplied CompileContext or RawDFA failed a
	// precondition check before compilation began, or a buffer given to
	// FromBytes is not a well-formed image.
	InvalidConfig
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case StateOverflow:
		return "StateOverflow"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// CompileError is the error type returned by Compile. It always carries a
// Kind so callers can distinguish recoverable-by-retry-with-different-input
// situations (StateOverflow) from programmer-error situations
// (InvalidConfig) without string matching.
type CompileError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap supports errors.Is/errors.As against the wrapped Cause.
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// ErrStateOverflow is returned when the raw DFA has more states than the
// chosen packed layout's successor index can address.
var ErrStateOverflow = &CompileError{
	Kind:    StateOverflow,
	Message: "mcclellan: state numbering overflowed the packed successor index",
}

// ErrTooManyStates is returned when the raw DFA exceeds the hard 2^16
// state-count ceiling shared by both the 8-bit and 16-bit layouts.
var ErrTooManyStates = &CompileError{
	Kind:    StateOverflow,
	Message: "mcclellan: raw DFA has more than 65536 states",
}

// ErrNoRawDFA is returned when Compile is given a RawDFA with no states at
// all (not even the mandatory dead state).
var ErrNoRawDFA = &CompileError{
	Kind:    InvalidConfig,
	Message: "mcclellan: raw DFA has no states",
}
