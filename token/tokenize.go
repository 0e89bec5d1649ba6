package token

import (
	"fmt"
	"io"
)

// Tokenizer produces the tokens of a JSON document one at a time. The
// cursor advances monotonically; a Tokenizer is not restartable and not
// safe for concurrent use. Each validation run owns its own Tokenizer.
type Tokenizer struct {
	d      []byte
	i      int
	posDoc *PosDoc
}

func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{
		d:      src,
		posDoc: &PosDoc{d: src},
	}
}

// PosDoc exposes position lookups over the underlying document, so a
// consumer can report errors at end of input.
func (t *Tokenizer) PosDoc() *PosDoc {
	return t.posDoc
}

// Next returns the next token, io.EOF once the input is exhausted, or a
// *TokenizeErr at the first malformed lexeme. After a non-nil error the
// Tokenizer is spent.
func (t *Tokenizer) Next() (*Token, error) {
	d, n := t.d, len(t.d)
	for t.i < n {
		switch d[t.i] {
		case ' ', '\t', '\r':
			t.i++
		case '\n':
			t.posDoc.nl(t.i)
			t.i++
		default:
			return t.lexeme()
		}
	}
	return nil, io.EOF
}

// lexeme scans one maximal lexeme starting at t.i, which is not
// whitespace.
func (t *Tokenizer) lexeme() (*Token, error) {
	d, n, i := t.d, len(t.d), t.i
	c := d[i]
	switch c {
	case '{':
		return t.structural(TLCurl), nil
	case '}':
		return t.structural(TRCurl), nil
	case '[':
		return t.structural(TLSquare), nil
	case ']':
		return t.structural(TRSquare), nil
	case ':':
		return t.structural(TColon), nil
	case ',':
		return t.structural(TComma), nil
	case '"':
		j, err := bsEscQuoted(d[i:])
		if err != nil {
			return nil, NewTokenizeErr(err, t.posDoc.Pos(i))
		}
		tok := &Token{
			Type:  TString,
			Pos:   t.posDoc.Pos(i),
			Bytes: d[i : i+j],
		}
		t.i += j
		return tok, nil
	case 't', 'f', 'n':
		return t.keyword()
	case '-':
		if i+1 >= n || !asciiDigit(d[i+1]) {
			return nil, NewTokenizeErr(ErrNumber, t.posDoc.Pos(i))
		}
		sz, isFloat, err := number(d[i+1:])
		if err != nil {
			return nil, NewTokenizeErr(err, t.posDoc.Pos(i))
		}
		return t.numToken(sz+1, isFloat), nil
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		sz, isFloat, err := number(d[i:])
		if err != nil {
			return nil, NewTokenizeErr(err, t.posDoc.Pos(i))
		}
		return t.numToken(sz, isFloat), nil
	default:
		return nil, UnexpectedErr(fmt.Sprintf("%q", rune(c)), t.posDoc.Pos(i))
	}
}

func (t *Tokenizer) structural(typ TokenType) *Token {
	tok := &Token{
		Type:  typ,
		Pos:   t.posDoc.Pos(t.i),
		Bytes: t.d[t.i : t.i+1],
	}
	t.i++
	return tok
}

func (t *Tokenizer) numToken(sz int, isFloat bool) *Token {
	tok := &Token{
		Type:  TInteger,
		Pos:   t.posDoc.Pos(t.i),
		Bytes: t.d[t.i : t.i+sz],
	}
	if isFloat {
		tok.Type = TFloat
	}
	t.i += sz
	return tok
}

// keyword matches the literals true, false and null exactly. The whole
// run of ASCII letters at the cursor is the lexeme, so a partial or
// misspelled literal reports at the run's start.
func (t *Tokenizer) keyword() (*Token, error) {
	d, n, i := t.d, len(t.d), t.i
	j := i
	for j < n && asciiLetter(d[j]) {
		j++
	}
	var typ TokenType
	switch string(d[i:j]) {
	case "true":
		typ = TTrue
	case "false":
		typ = TFalse
	case "null":
		typ = TNull
	default:
		return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrLiteral, d[i:j]), t.posDoc.Pos(i))
	}
	tok := &Token{
		Type:  typ,
		Pos:   t.posDoc.Pos(i),
		Bytes: d[i:j],
	}
	t.i = j
	return tok, nil
}

func asciiLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Tokenize tokenizes src eagerly, appending to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	tz := NewTokenizer(src)
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, *tok)
	}
}
