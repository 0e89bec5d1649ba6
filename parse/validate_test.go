package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaziciahmet/jsonv/encode"
)

func TestValidate(t *testing.T) {
	if err := Validate([]byte(`{"a": [1, 2.5, true, null, "x"]}`)); err != nil {
		t.Error(err)
	}
	if err := Validate([]byte(`{"a": [1,}`)); err == nil {
		t.Error("no error for malformed input")
	}
}

func TestValidateAgreesWithParse(t *testing.T) {
	docs := []string{
		`null`,
		`[1, 2, 3]`,
		`{"k": "v"}`,
		``,
		`{,}`,
		`[1, 2`,
		`truex`,
		`{}{}`,
	}
	for _, doc := range docs {
		_, perr := Parse([]byte(doc))
		verr := Validate([]byte(doc))
		if (perr == nil) != (verr == nil) {
			t.Errorf("%q: Parse err %v, Validate err %v", doc, perr, verr)
		}
	}
}

func TestValidateDepth(t *testing.T) {
	deep := strings.Repeat("[", 64) + strings.Repeat("]", 64)
	if err := Validate([]byte(deep)); err != nil {
		t.Errorf("depth 64 within default ceiling: %v", err)
	}
	err := Validate([]byte(deep), MaxDepth(63))
	if !errors.Is(err, ErrDepth) {
		t.Errorf("got %v, want %v", err, ErrDepth)
	}
	var pe *ParseErr
	if !errors.As(err, &pe) {
		t.Fatalf("not a *ParseErr: %v", err)
	}
	// reported at the bracket that crossed the ceiling
	if pe.Pos == nil || pe.Pos.I != 63 {
		t.Errorf("got %v, want offset 63", pe.Pos)
	}
	if err := Validate([]byte(deep), MaxDepth(64)); err != nil {
		t.Errorf("depth 64 at ceiling 64: %v", err)
	}

	mixed := `{"a": [{"b": [0]}]}`
	if err := Validate([]byte(mixed), MaxDepth(4)); err != nil {
		t.Errorf("depth 4 at ceiling 4: %v", err)
	}
	if err := Validate([]byte(mixed), MaxDepth(3)); !errors.Is(err, ErrDepth) {
		t.Errorf("got %v, want %v", err, ErrDepth)
	}
}

// Re-encoding a parsed document must itself parse to an equal tree.
func TestParseEncodeRoundTrip(t *testing.T) {
	docs := []string{
		`{"a": 1, "b": [1, 2.5, true, null, "x"]}`,
		`[{}, [], "", 0, -0.5]`,
		`{"nested": {"deep": {"null": null}}}`,
		`"esc \"\\\n\té"`,
		// numbers past float64's range still re-encode as numbers
		`[1e999, -1e999, 1e-999]`,
		`{"big": 123e+999}`,
	}
	for _, doc := range docs {
		node, err := Parse([]byte(doc))
		if err != nil {
			t.Errorf("%q: %v", doc, err)
			continue
		}
		out := encode.MustString(node)
		again, err := Parse([]byte(out))
		if err != nil {
			t.Errorf("%q: re-parse of %q: %v", doc, out, err)
			continue
		}
		if encode.MustString(again) != out {
			t.Errorf("%q: encode not stable:\n%s\n%s", doc, out, encode.MustString(again))
		}
	}
}
