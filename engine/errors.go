package engine

import (
	"errors"

	"github.com/npillmayer/nebula"
)

// Errors of the engine. Errors returned by the engine match one of these
// with errors.Is.
var (
	// ErrAlreadyIntroduced is a structural generation error: a parameter
	// has been introduced twice in the same scope.
	ErrAlreadyIntroduced = errors.New("variable is already introduced in that scope")
	// ErrNotAFunction is a reduction shape error: a value other than a
	// function or a variable has been applied.
	ErrNotAFunction = errors.New("expected a function or a variable")
	// ErrNotAnApplication is returned by Derive for terms which are not
	// applications.
	ErrNotAnApplication = errors.New("can only derive top function applications")
	// ErrEmptyProgram is returned for programs without expressions.
	ErrEmptyProgram = errors.New("program contains no expression")
)

// Error is an engine error, optionally carrying a source location.
type Error struct {
	Loc  nebula.Loc // zero if unknown
	Msg  string
	Kind error // one of the Err… variables
}

func (e *Error) Error() string {
	if e.Loc.IsUnknown() {
		return e.Msg
	}
	return e.Loc.String() + " " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}
