package token

import (
	"errors"
	"io"
	"testing"
)

type tokTest struct {
	in   string
	typs []TokenType
}

func TestTokenize(t *testing.T) {
	tts := []tokTest{
		{
			in:   `{}`,
			typs: []TokenType{TLCurl, TRCurl},
		},
		{
			in:   `[]`,
			typs: []TokenType{TLSquare, TRSquare},
		},
		{
			in:   `{"a": 1, "b": [true, false, null]}`,
			typs: []TokenType{TLCurl, TString, TColon, TInteger, TComma, TString, TColon, TLSquare, TTrue, TComma, TFalse, TComma, TNull, TRSquare, TRCurl},
		},
		{
			in:   "\t {\r\n\"k\"\n:\n-2.5e10 } ",
			typs: []TokenType{TLCurl, TString, TColon, TFloat, TRCurl},
		},
		{
			in:   `"\" \\ \/ \b \f \n \r \t \u00e9"`,
			typs: []TokenType{TString},
		},
		{
			in:   `0`,
			typs: []TokenType{TInteger},
		},
		{
			in:   `-0`,
			typs: []TokenType{TInteger},
		},
		{
			in:   `0.5`,
			typs: []TokenType{TFloat},
		},
		{
			in:   `0e21`,
			typs: []TokenType{TFloat},
		},
		{
			in:   `1E-2`,
			typs: []TokenType{TFloat},
		},
		{
			in:   `-42`,
			typs: []TokenType{TInteger},
		},
	}
	for i := range tts {
		tt := &tts[i]
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.typs) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.typs))
			continue
		}
		for j := range toks {
			if toks[j].Type != tt.typs[j] {
				t.Errorf("%q: token %d: got %s, want %s", tt.in, j, toks[j].Type, tt.typs[j])
			}
		}
	}
}

type tokErrTest struct {
	in  string
	e   error
	off int
}

func TestTokenizeErr(t *testing.T) {
	tts := []tokErrTest{
		{in: `@`, e: ErrUnexpectedChar, off: 0},
		{in: `{"a": #}`, e: ErrUnexpectedChar, off: 6},
		{in: `'single'`, e: ErrUnexpectedChar, off: 0},
		{in: `"unterminated`, e: ErrUnterminated, off: 0},
		{in: `"tab	inside"`, e: ErrUnterminated, off: 0},
		{in: "\"nl\ninside\"", e: ErrUnterminated, off: 0},
		{in: `"trailing backslash\`, e: ErrUnterminated, off: 0},
		{in: `  "\q"`, e: ErrBadEscape, off: 2},
		{in: `"\x41"`, e: ErrBadEscape, off: 0},
		{in: `"\u12"`, e: ErrBadUnicode, off: 0},
		{in: `"\uZZZZ"`, e: ErrBadUnicode, off: 0},
		{in: `"\u"`, e: ErrBadUnicode, off: 0},
		{in: `01`, e: ErrNumber, off: 0},
		{in: `-01`, e: ErrNumber, off: 0},
		{in: `1.`, e: ErrNumber, off: 0},
		{in: `1e`, e: ErrNumber, off: 0},
		{in: `1e+`, e: ErrNumber, off: 0},
		{in: `-`, e: ErrNumber, off: 0},
		{in: `[-]`, e: ErrNumber, off: 1},
		{in: `nul`, e: ErrLiteral, off: 0},
		{in: `truthy`, e: ErrLiteral, off: 0},
		{in: `falsey`, e: ErrLiteral, off: 0},
		{in: `[tru]`, e: ErrLiteral, off: 1},
	}
	for i := range tts {
		tt := &tts[i]
		_, err := Tokenize(nil, []byte(tt.in))
		if err == nil {
			t.Errorf("%q: no error, want %v", tt.in, tt.e)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.e)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%q: error %v is not a *TokenizeErr", tt.in, err)
			continue
		}
		if te.Pos.I != tt.off {
			t.Errorf("%q: got offset %d, want %d", tt.in, te.Pos.I, tt.off)
		}
	}
}

func TestTokenizeOffsets(t *testing.T) {
	in := `{"a": [10, null]}`
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	offs := []int{0, 1, 4, 6, 7, 9, 11, 15, 16}
	if len(toks) != len(offs) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(offs))
	}
	for i := range toks {
		t.Log(toks[i].Info())
		if toks[i].Pos.I != offs[i] {
			t.Errorf("token %d %s: want offset %d", i, toks[i].Info(), offs[i])
		}
	}
}

func TestTokenizerNextEOF(t *testing.T) {
	tz := NewTokenizer([]byte(`true`))
	tok, err := tz.Next()
	if err != nil || tok.Type != TTrue {
		t.Fatalf("got %v, %v", tok, err)
	}
	// EOF repeats once the input is spent.
	for i := 0; i < 2; i++ {
		if _, err := tz.Next(); err != io.EOF {
			t.Fatalf("got %v, want io.EOF", err)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	in := "{\n  \"a\": x\n}"
	_, err := Tokenize(nil, []byte(in))
	if err == nil {
		t.Fatal("no error")
	}
	var te *TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("not a *TokenizeErr: %v", err)
	}
	if te.Pos.I != 9 {
		t.Errorf("got offset %d, want 9", te.Pos.I)
	}
	line, col := te.Pos.LineCol()
	if line != 1 || col != 7 {
		t.Errorf("got line=%d col=%d, want line=1 col=7", line, col)
	}
}
