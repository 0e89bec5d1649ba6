package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrUnterminated   = errors.New("unterminated string")
	ErrBadEscape      = errors.New("invalid escape")
	ErrBadUnicode     = errors.New("invalid unicode escape")
	ErrNumber         = errors.New("malformed number")
	ErrLiteral        = errors.New("unrecognized literal")
	ErrBadUTF8        = errors.New("bad utf8")
)

// ErrNumberLeadingZero unwraps to ErrNumber: a leading zero is one way
// for a number to be malformed.
var ErrNumberLeadingZero = fmt.Errorf("%w: leading zero", ErrNumber)
