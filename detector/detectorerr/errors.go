package detectorerr

import (
	"fmt"
)

var (
	// ErrWatchedPackagesFound indicates when at least one package at or below a watch-listed
	// version was discovered and the user asked for a failing exit code in that case.
	ErrWatchedPackagesFound = NewExpectedErr("discovered packages at or below watch-listed versions")
)

// ExpectedErr represents a class of expected errors that the application may produce.
type ExpectedErr struct {
	Err error
}

// NewExpectedErr generates a new ExpectedErr.
func NewExpectedErr(msgFormat string, args ...interface{}) ExpectedErr {
	return ExpectedErr{
		Err: fmt.Errorf(msgFormat, args...),
	}
}

// Error returns a string representing the underlying error condition.
func (e ExpectedErr) Error() string {
	return e.Err.Error()
}
