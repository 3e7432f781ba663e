package speech

import "fmt"

// ValidationError is a client mistake caught before any outbound call.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// SynthesisError is a provider-side synthesis failure surfaced to the caller.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string { return fmt.Sprintf("synthesis failed: %v", e.Err) }

func (e *SynthesisError) Unwrap() error { return e.Err }
