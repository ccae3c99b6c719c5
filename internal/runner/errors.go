package runner

import "fmt"

// CaseError tags an underlying SUT or judge error with the identifier of
// the test case that failed, so batch failures are attributable.
type CaseError struct {
	CaseID int
	Err    error
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("case %d: %v", e.CaseID, e.Err)
}

func (e *CaseError) Unwrap() error { return e.Err }

// PreconditionError reports a batch started without its preconditions:
// at least one test case, a prior successful connection probe, and judge
// credentials. No network call is made when one fires.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "cannot start evaluation: " + e.Reason
}
