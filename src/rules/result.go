package rules

import "fmt"

// Outcome classifies the result of one rule invocation.
type Outcome int

const (
	Ok Outcome = iota
	Warning
	Error
)

func (o Outcome) String() string {
	switch o {
	case Ok:
		return "ok"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the value every rule invocation produces. Created fresh per
// invocation, never mutated.
type Result struct {
	Outcome     Outcome
	Description string
}

// Passed returns an Ok result.
func Passed() Result {
	return Result{Outcome: Ok}
}

// Failed returns an Error result with a formatted description.
func Failed(format string, args ...any) Result {
	return Result{Outcome: Error, Description: fmt.Sprintf(format, args...)}
}

// Failing reports whether the runner should treat this result as a
// failure. Only Ok counts as success.
func (r Result) Failing() bool {
	return r.Outcome != Ok
}
