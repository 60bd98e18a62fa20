package scan

// outcome tags a Result.
type outcome uint8

const (
	noMatch outcome = iota // the reducer does not apply here
	matched                // the reducer consumed input
	fatal                  // the reducer required input that was not there
)

// Result is what a Reducer returns: no match, a new State, or a fatal
// expectation failure. The zero Result is a no match.
type Result struct {
	outcome outcome
	state   State
	err     *ExpectationError
}

// Miss returns a Result saying the reducer does not apply.
func Miss() Result {
	return Result{}
}

// Hit returns a Result carrying the new State.
func Hit(s State) Result {
	return Result{outcome: matched, state: s}
}

// Fail returns a Result carrying a fatal expectation failure.
func Fail(err *ExpectationError) Result {
	return Result{outcome: fatal, err: err}
}

// NoMatch reports whether the reducer did not apply.
func (r Result) NoMatch() bool { return r.outcome == noMatch }

// Matched reports whether the reducer produced a new State.
func (r Result) Matched() bool { return r.outcome == matched }

// Fatal reports whether the reducer failed an expectation.
func (r Result) Fatal() bool { return r.outcome == fatal }

// State returns the new State of a matched Result.
func (r Result) State() State { return r.state }

// Err returns the failure of a fatal Result, or nil.
func (r Result) Err() *ExpectationError { return r.err }

func (r Result) String() string {
	switch r.outcome {
	case matched:
		return "matched"
	case fatal:
		return "fatal: " + r.err.Error()
	}
	return "no match"
}
