package blockchain

import (
	"errors"
	"fmt"
)

// Reason is a machine-readable cause for rejecting a candidate block or chain.
type Reason string

const (
	BadIndex        Reason = "bad_index"
	BadPreviousHash Reason = "bad_previous_hash"
	BadHash         Reason = "bad_hash"
	BadGenesis      Reason = "bad_genesis"
)

// ValidationError reports why a candidate was rejected. Validation failures
// are always recovered locally: the candidate is dropped, a diagnostic is
// logged, and the local chain stays untouched.
type ValidationError struct {
	Reason Reason
	Index  uint64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid block %d: %s", e.Index, e.Reason)
}

// IsValidation checks whether an error is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// EmptyChainError signals a chain with zero blocks. Stores seed genesis at
// construction, so encountering one is an invariant violation rather than a
// misbehaving peer; it must be surfaced loudly, never silently skipped.
type EmptyChainError struct{}

func (e *EmptyChainError) Error() string { return "chain has no blocks" }

// IsEmptyChain checks whether an error is an EmptyChainError.
func IsEmptyChain(err error) bool {
	var v *EmptyChainError
	return errors.As(err, &v)
}
