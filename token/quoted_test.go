package token

import (
	"errors"
	"testing"
)

func TestQuotedLexeme(t *testing.T) {
	tts := []struct {
		in string
		sz int
		e  error
	}{
		{in: `""`, sz: 2},
		{in: `"a"`, sz: 3},
		{in: `"a" tail`, sz: 3},
		{in: `"\""`, sz: 4},
		{in: `"\\"`, sz: 4},
		{in: `"\/"`, sz: 4},
		{in: `"\b\f\n\r\t"`, sz: 12},
		{in: `"\u0041"`, sz: 8},
		{in: `"\uffff"`, sz: 8},
		{in: `"héllo"`, sz: 8},
		{in: `"`, e: ErrUnterminated},
		{in: `"abc`, e: ErrUnterminated},
		{in: `"abc\`, e: ErrUnterminated},
		{in: "\"a\nb\"", e: ErrUnterminated},
		{in: "\"a\x00b\"", e: ErrUnterminated},
		{in: `"\q"`, e: ErrBadEscape},
		{in: `"\u12g4"`, e: ErrBadUnicode},
		{in: `"\u123"`, e: ErrBadUnicode},
		{in: "\"a\xffb\"", e: ErrBadUTF8},
	}
	for i := range tts {
		tt := &tts[i]
		sz, err := bsEscQuoted([]byte(tt.in))
		if tt.e != nil {
			if !errors.Is(err, tt.e) {
				t.Errorf("%q: got %v, want %v", tt.in, err, tt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if sz != tt.sz {
			t.Errorf("%q: got length %d, want %d", tt.in, sz, tt.sz)
		}
	}
}

func TestQuotedToString(t *testing.T) {
	tts := []struct {
		in  string
		out string
	}{
		{in: `""`, out: ""},
		{in: `"hi"`, out: "hi"},
		{in: `"\"q\""`, out: `"q"`},
		{in: `"\\"`, out: `\`},
		{in: `"\/"`, out: "/"},
		{in: `"\b\f\n\r\t"`, out: "\b\f\n\r\t"},
		{in: `"\u0041"`, out: "A"},
		{in: `"é"`, out: "é"},
		{in: `"\u00e9"`, out: "é"},
		// surrogate pair
		{in: `"\ud83d\ude00"`, out: "\U0001f600"},
		// unpaired high surrogate decodes to the replacement rune
		{in: `"\ud83d"`, out: "�"},
	}
	for i := range tts {
		tt := &tts[i]
		if got := QuotedToString([]byte(tt.in)); got != tt.out {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	vs := []string{
		"",
		"plain",
		`with "quotes" and \backslash`,
		"controlchars",
		"tab\tnl\ncr\r",
		"héllo, 世界",
		"\U0001f600",
	}
	for _, v := range vs {
		q := Quote(v)
		got, err := Unquote(q)
		if err != nil {
			t.Errorf("%q: %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("%q: round trip gave %q", v, got)
		}
	}
}
