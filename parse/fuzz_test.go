package parse

import (
	"errors"
	"testing"

	"github.com/yaziciahmet/jsonv/token"
)

// FuzzValidate checks that every verdict carries a usable position and
// that no input panics the pipeline.
func FuzzValidate(f *testing.F) {
	seeds := []string{
		`{"a": 1, "b": [1, 2.5, true, null, "x"]}`,
		`{"a": 1,}`,
		`[1, 2`,
		`{"a" 1}`,
		`"unterminated`,
		`{}extra`,
		`[[[[[]]]]]`,
		`-0.5e+10`,
		`nul`,
		"\"\\ud83d\\ude00\"",
		``,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		err := Validate(d)
		if err == nil {
			return
		}
		var pe *ParseErr
		var te *token.TokenizeErr
		switch {
		case errors.As(err, &pe):
			if pe.Pos == nil {
				t.Errorf("%q: ParseErr without position: %v", d, err)
			} else if pe.Pos.I < 0 || pe.Pos.I > len(d) {
				t.Errorf("%q: offset %d out of range", d, pe.Pos.I)
			}
		case errors.As(err, &te):
			if te.Pos.I < 0 || te.Pos.I > len(d) {
				t.Errorf("%q: offset %d out of range", d, te.Pos.I)
			}
		default:
			t.Errorf("%q: unexpected error type: %v", d, err)
		}
	})
}
