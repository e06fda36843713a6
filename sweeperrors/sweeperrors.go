// Package sweeperrors defines the sweep engine's error taxonomy: a small set
// of sentinel errors combined with fmt.Errorf wrapping, so callers can
// errors.Is/errors.As against a stable set of kinds rather than parsing
// message strings.
package sweeperrors

import (
	"errors"
	"fmt"

	"github.com/segsweep/segsweep/segment"
)

// Sentinel error kinds. Combine with fmt.Errorf("%w: ...", Err...) for
// context, or wrap in a *SweepError to carry offending segment indices.
var (
	// ErrMalformedSegment is returned when a segment has coincident
	// endpoints or a non-finite coordinate.
	ErrMalformedSegment = errors.New("malformed segment")

	// ErrInfiniteOverlap is returned when the geometric classifier reports
	// an Overlap between two segments during new-event discovery: the
	// inputs contain overlapping collinear segments, or the tolerance is too
	// small for the input's angular resolution.
	ErrInfiniteOverlap = errors.New("infinite overlap between collinear segments")

	// ErrProgrammingInvariant is returned when an internal invariant the
	// algorithm depends on is violated (duplicate Left/Right events for a
	// segment, deleting a segment absent from the status structure, etc).
	// Its presence indicates a bug in the engine, not bad input.
	ErrProgrammingInvariant = errors.New("sweep programming invariant violated")
)

// SweepError wraps one of the sentinel kinds above with the segment indices
// involved, if any, and a human-readable message.
type SweepError struct {
	Kind    error
	Indices []segment.Index
	msg     string
}

// NewSweepError constructs a SweepError of the given kind, formatting msg
// with args in the manner of fmt.Sprintf, and recording the offending
// segment indices.
func NewSweepError(kind error, indices []segment.Index, format string, args ...any) *SweepError {
	return &SweepError{
		Kind:    kind,
		Indices: indices,
		msg:     fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *SweepError) Error() string {
	if len(e.Indices) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.msg)
	}
	return fmt.Sprintf("%s: %s (segments %v)", e.Kind, e.msg, e.Indices)
}

// Unwrap lets errors.Is/errors.As see through to the sentinel Kind.
func (e *SweepError) Unwrap() error {
	return e.Kind
}
