package chain

import (
	"errors"
	"fmt"

	"github.com/rubiojr/ifexpr/ast"
)

// Error kinds. Every *Error unwraps to exactly one of these.
var (
	ErrInvalidBinding   = errors.New("invalid binding")
	ErrNotInvoked       = errors.New("expected to be invoked as a function")
	ErrArity            = errors.New("wrong number of arguments")
	ErrNotExpression    = errors.New("expected an identifier, literal or expression")
	ErrUnexpectedMember = errors.New("unexpected member invocation")
	ErrNotTerminated    = errors.New("chain not terminated with an end")
	ErrEndArguments     = errors.New("expected no arguments")
	ErrInTemplate       = errors.New("macro used inside a template literal")
)

// Error is a structural error in a chain or in the macro binding.
type Error struct {
	Kind error
	Pos  ast.Position
	Msg  string
}

// Errorf builds an *Error of the given kind at pos. With an empty format
// the message is the kind's own text.
func Errorf(kind error, pos ast.Position, format string, args ...any) *Error {
	msg := kind.Error()
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Pos: pos, Msg: msg}
}

func (e *Error) Error() string {
	if loc := FormatLocation(e.Pos); loc != "" {
		return loc + ": " + e.Msg
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }
