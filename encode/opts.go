package encode

import "errors"

var ErrEncoding = errors.New("encoding error")

type EncodeOption func(*EncState)

// EncodeWire selects the compact single-line form.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeIndent sets the indent width for the indented form.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
