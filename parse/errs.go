package parse

import (
	"errors"
	"fmt"

	"github.com/yaziciahmet/jsonv/token"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
	ErrTrailingContent = errors.New("trailing content")
	ErrStringKey       = errors.New("expected string key")
	ErrTrailingComma   = errors.New("trailing comma")
	ErrDepth           = errors.New("max depth exceeded")
)

// ParseErr is a grammar-level failure. Pos is nil only when the
// document ended where a token was required and no position could be
// derived.
type ParseErr struct {
	Err      error
	Pos      *token.Pos
	Expected string
	Found    string
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	msg := e.Err.Error()
	switch {
	case e.Expected != "" && e.Found != "":
		msg = fmt.Sprintf("%s: expected %s, found %s", msg, e.Expected, e.Found)
	case e.Expected != "":
		msg = fmt.Sprintf("%s: expected %s", msg, e.Expected)
	case e.Found != "":
		msg = fmt.Sprintf("%s: found %s", msg, e.Found)
	}
	if e.Pos == nil {
		return msg + " at end of input"
	}
	return fmt.Sprintf("%s at %s", msg, e.Pos.String())
}
