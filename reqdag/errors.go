package reqdag

import (
	"errors"
	"fmt"
)

// ErrUnsolvable is the sentinel wrapped by UnsolvableError.
var ErrUnsolvable = errors.New("reqdag: requirement DAG is unsolvable")

// UnsolvableError reports that, after preparation, a destination's
// requirement DAG has a dead end or a cycle (spec.md §4.3, §7). The
// caller skips this destination and continues with the others.
type UnsolvableError struct {
	Dest   string
	Reason error
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("reqdag: destination %q is unsolvable: %v", e.Dest, e.Reason)
}

// Is lets errors.Is(err, ErrUnsolvable) succeed for any UnsolvableError.
func (e *UnsolvableError) Is(target error) bool { return target == ErrUnsolvable }

// Unwrap exposes the underlying cause (usually a cycle detected by
// toposort) for callers that want it.
func (e *UnsolvableError) Unwrap() error { return e.Reason }
