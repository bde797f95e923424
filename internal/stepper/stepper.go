// Package stepper defines the external iteration contract shared by the
// volumetric and dodecahedral solvers, so callers (CLI, web server) can
// drive either search the same way: paused, single-stepped, or run to
// completion.
package stepper

// Driver is the stepwise search contract. A single Step call does exactly
// one of: go deeper (place one more piece), move sideways (replace the top
// of the stack), or backtrack further — repeating the latter two within the
// same call until either a move is found or the search is exhausted.
//
// Implementations are not safe for concurrent mutation: callers must not
// invoke Step/StepToSolution on the same Driver from more than one
// goroutine at a time, and must not mutate observed snapshots between
// calls.
type Driver interface {
	// Step advances one search edge. Returns false once the search is
	// exhausted (Done becomes true).
	Step() bool

	// StepToSolution repeatedly calls Step until either a new complete
	// placement is reached (returns true) or the search is exhausted
	// (returns false).
	StepToSolution() bool

	// Done reports whether the search is exhausted, i.e. no further Step
	// call can advance it.
	Done() bool
}

// Step advances d by one search edge. It exists so callers can drive either
// solver through the shared interface value rather than a concrete type.
func Step(d Driver) bool {
	return d.Step()
}

// StepToSolution drives d until either a new complete placement is reached
// or the search is exhausted.
func StepToSolution(d Driver) bool {
	return d.StepToSolution()
}

// RunToCompletion drives d with Step until the search is exhausted.
func RunToCompletion(d Driver) {
	for !d.Done() && d.Step() {
	}
}

// AdvanceN drives d forward at most n search edges, stopping early if the
// search is exhausted.
func AdvanceN(d Driver, n int) {
	for i := 0; i < n && !d.Done(); i++ {
		d.Step()
	}
}
