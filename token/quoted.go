package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// bsEscQuoted returns the length of the quoted string lexeme at the
// start of d, both quotes included. d[0] must be '"'.
//
// A raw control character before the closing quote terminates the
// string as surely as end of input does, so both report the string as
// unterminated.
func bsEscQuoted(d []byte) (int, error) {
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return 0, ErrBadUTF8
		}
		i += sz
		switch r {
		case '"':
			return i, nil
		case '\\':
			if i >= n {
				return 0, ErrUnterminated
			}
			c := d[i]
			i++
			switch c {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if i+4 > n || !allHex(d[i:i+4]) {
					return 0, ErrBadUnicode
				}
				i += 4
			default:
				return 0, ErrBadEscape
			}
		default:
			if r < 0x20 {
				return 0, ErrUnterminated
			}
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// Quote renders v as a JSON string lexeme.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote is the inverse of Quote over well-formed lexemes.
func Unquote(v string) (string, error) {
	n, err := bsEscQuoted([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return QuotedToString([]byte(v)), nil
}

// QuotedToString unescapes a string lexeme that bsEscQuoted accepted.
// Surrogate pairs in \u escapes are combined.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case '"':
			return b.String()
		case '\\':
			c := d[i]
			i++
			switch c {
			case '"', '\\', '/':
				b.WriteByte(c)
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				r := hexRune(d[i : i+4])
				i += 4
				if utf16IsHighSurrogate(r) && i+6 <= len(d) && d[i] == '\\' && d[i+1] == 'u' {
					lo := hexRune(d[i+2 : i+6])
					if utf16IsLowSurrogate(lo) {
						r = 0x10000 + (r-0xd800)<<10 + (lo - 0xdc00)
						i += 6
					}
				}
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hexRune(d []byte) rune {
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d); err != nil {
		return utf8.RuneError
	}
	return rune(dst[0])<<8 | rune(dst[1])
}

func utf16IsHighSurrogate(r rune) bool {
	return r >= 0xd800 && r < 0xdc00
}

func utf16IsLowSurrogate(r rune) bool {
	return r >= 0xdc00 && r < 0xe000
}
