package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/yaziciahmet/jsonv/ir"
	"github.com/yaziciahmet/jsonv/token"
)

type EncState struct {
	depth, indent int
	wire          bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as JSON text followed by a newline. The default is
// indented output; EncodeWire selects the compact wire form.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type.IsLeaf() {
		s, err := leafString(node)
		if err != nil {
			return err
		}
		return writeColored(w, es, node.Type, ValueColor, s)
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	default:
		return ErrEncoding
	}
}

func leafString(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.StringType:
		return token.Quote(node.String), nil
	case ir.NumberType:
		return numberString(node), nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NullType:
		return "null", nil
	default:
		return "", ErrEncoding
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeColored(w, es, node.Type, SepColor, "{"); err != nil {
		return err
	}
	n := len(node.Fields)
	es.depth++
	for i := range n {
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := token.Quote(node.Fields[i].String)
		if err := writeColored(w, es, node.Type, FieldColor, key); err != nil {
			return err
		}
		sep := ": "
		if es.wire {
			sep = ":"
		}
		if err := writeColored(w, es, node.Type, SepColor, sep); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeColored(w, es, node.Type, SepColor, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if n > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, node.Type, SepColor, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeColored(w, es, node.Type, SepColor, "["); err != nil {
		return err
	}
	n := len(node.Values)
	es.depth++
	for i := range n {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeColored(w, es, node.Type, SepColor, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if n > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, node.Type, SepColor, "]")
}

// numberString renders a number node. Nodes carrying their source
// lexeme emit it verbatim; FormatFloat would render a range-overflowed
// value as +Inf, which is not JSON.
func numberString(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Text != "" {
		return node.Text
	}
	return strconv.FormatFloat(node.Float(), 'g', -1, 64)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeColored(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
