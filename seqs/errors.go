package seqs

import "errors"

// The error taxonomy is small and precondition-based. No operation
// recovers internally; failures are immediate, total for the call in
// question, and never affect unrelated calls.
var (
	// ErrEmpty is returned by operations that require a non-empty
	// sequence (First, Last, Rest, Init, Reduce1, Minimum, ...) when
	// given an empty one.
	ErrEmpty = errors.New("seqs: empty sequence")

	// ErrNegativeCount is returned by counting operations (Take, Drop,
	// Replicate, ...) when given a negative count.
	ErrNegativeCount = errors.New("seqs: negative count")
)
