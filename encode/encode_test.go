package encode

import (
	"bytes"
	"math"
	"testing"

	"github.com/yaziciahmet/jsonv/ir"
)

func sampleNode() *ir.Node {
	obj := ir.Object()
	obj.SetField("a", ir.FromInt(1))
	arr := ir.Array()
	arr.Append(ir.FromFloat(2.5))
	arr.Append(ir.FromBool(false))
	arr.Append(ir.Null())
	arr.Append(ir.FromString("x\ny"))
	obj.SetField("b", arr)
	return obj
}

func TestEncodeIndented(t *testing.T) {
	want := `{
  "a": 1,
  "b": [
    2.5,
    false,
    null,
    "x\ny"
  ]
}
`
	var buf bytes.Buffer
	if err := Encode(sampleNode(), &buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeWire(t *testing.T) {
	want := `{"a":1,"b":[2.5,false,null,"x\ny"]}` + "\n"
	var buf bytes.Buffer
	if err := Encode(sampleNode(), &buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeIndentWidth(t *testing.T) {
	arr := ir.Array()
	arr.Append(ir.FromInt(1))
	want := "[\n    1\n]\n"
	var buf bytes.Buffer
	if err := Encode(arr, &buf, EncodeIndent(4)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	obj := ir.Object()
	obj.SetField("o", ir.Object())
	obj.SetField("a", ir.Array())
	want := `{"o":{},"a":[]}`
	if got := MustString(obj, EncodeWire(true)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeScalars(t *testing.T) {
	tts := []struct {
		node *ir.Node
		want string
	}{
		{node: ir.Null(), want: "null"},
		{node: ir.FromBool(true), want: "true"},
		{node: ir.FromInt(-42), want: "-42"},
		{node: ir.FromFloat(0.5), want: "0.5"},
		{node: ir.FromFloat(1e21), want: "1e+21"},
		{node: ir.FromString(""), want: `""`},
		{node: ir.FromString("é \"q\""), want: `"é \"q\""`},
	}
	for i := range tts {
		tt := &tts[i]
		if got := MustString(tt.node); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestEncodeNumberText(t *testing.T) {
	n := ir.FromFloat(math.Inf(1))
	n.Text = "1e999"
	if got := MustString(n); got != "1e999" {
		t.Errorf("got %q, want %q", got, "1e999")
	}
	n = ir.FromFloat(math.Inf(-1))
	n.Text = "-2e999"
	if got := MustString(n); got != "-2e999" {
		t.Errorf("got %q, want %q", got, "-2e999")
	}
}

func TestEncodeColored(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(sampleNode(), &buf, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("no output")
	}
}
