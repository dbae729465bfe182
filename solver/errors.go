package solver

import "fmt"

// InternalError reports a failure the solver cannot recover from: Solve
// returns it when grafting a destination into its working copy of the
// IGP graph fails. It is always fatal to the enclosing Solve call,
// unlike an unsolvable destination, which is logged and skipped.
type InternalError struct {
	Op  string
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("solver: %s: %s", e.Op, e.Msg)
}
