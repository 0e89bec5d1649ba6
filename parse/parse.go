package parse

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/yaziciahmet/jsonv/ir"
	"github.com/yaziciahmet/jsonv/token"
)

// Parse parses d as a single JSON value and returns its tree.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	o := newOpts(opts)
	o.build = true
	return run(d, o)
}

// Validate reports whether d is a single well-formed JSON value. It
// performs the same descent as Parse without building the tree, and
// returns nil or the first *token.TokenizeErr / *ParseErr encountered.
func Validate(d []byte, opts ...Option) error {
	_, err := run(d, newOpts(opts))
	return err
}

func run(d []byte, o *parseOpts) (*ir.Node, error) {
	p := &parser{tz: token.NewTokenizer(d), opts: o}
	p.advance()
	node, err := p.value()
	if err != nil {
		return nil, err
	}
	if p.lexErr == io.EOF {
		return node, nil
	}
	// the top-level value is complete: anything after it, even
	// unlexable bytes, is trailing content
	if p.tok != nil {
		return nil, &ParseErr{Err: ErrTrailingContent, Pos: p.tok.Pos, Found: describe(p.tok)}
	}
	var te *token.TokenizeErr
	if errors.As(p.lexErr, &te) {
		return nil, &ParseErr{Err: ErrTrailingContent, Pos: &te.Pos}
	}
	return nil, p.lexErr
}

// parser walks the token sequence with one token of lookahead. The
// grammar is LL(1): tok alone decides every production, and nothing is
// ever un-read.
type parser struct {
	tz     *token.Tokenizer
	tok    *token.Token
	lexErr error
	opts   *parseOpts
	depth  int
}

func (p *parser) advance() {
	p.tok, p.lexErr = p.tz.Next()
}

// wantErr reports a missing token: end of input if the tokens ran out,
// otherwise the lexical error that cut the sequence short.
func (p *parser) wantErr(expected string) error {
	if p.lexErr == io.EOF {
		return &ParseErr{Err: ErrUnexpectedEnd, Pos: p.tz.PosDoc().End(), Expected: expected}
	}
	return p.lexErr
}

func (p *parser) value() (*ir.Node, error) {
	if p.tok == nil {
		return nil, p.wantErr("value")
	}
	t := p.tok
	switch t.Type {
	case token.TLCurl:
		return p.object(t)
	case token.TLSquare:
		return p.array(t)
	case token.TString:
		var node *ir.Node
		if p.opts.build {
			node = ir.FromString(token.QuotedToString(t.Bytes))
		}
		p.advance()
		return node, nil
	case token.TInteger, token.TFloat:
		node, err := p.numNode(t)
		if err != nil {
			return nil, err
		}
		p.advance()
		return node, nil
	case token.TTrue, token.TFalse:
		var node *ir.Node
		if p.opts.build {
			node = ir.FromBool(t.Type == token.TTrue)
		}
		p.advance()
		return node, nil
	case token.TNull:
		var node *ir.Node
		if p.opts.build {
			node = ir.Null()
		}
		p.advance()
		return node, nil
	default:
		return nil, &ParseErr{Err: ErrUnexpectedToken, Pos: t.Pos, Expected: "value", Found: describe(t)}
	}
}

func (p *parser) object(open *token.Token) (*ir.Node, error) {
	if err := p.push(open); err != nil {
		return nil, err
	}
	defer p.pop()
	p.advance()
	var obj *ir.Node
	if p.opts.build {
		obj = ir.Object()
	}
	if p.tok != nil && p.tok.Type == token.TRCurl {
		p.advance()
		return obj, nil
	}
	for {
		if p.tok == nil {
			return nil, p.wantErr("string key")
		}
		if p.tok.Type != token.TString {
			return nil, &ParseErr{Err: ErrStringKey, Pos: p.tok.Pos, Expected: "string key", Found: describe(p.tok)}
		}
		keyTok := p.tok
		p.advance()
		if p.tok == nil {
			return nil, p.wantErr("':'")
		}
		if p.tok.Type != token.TColon {
			return nil, &ParseErr{Err: ErrUnexpectedToken, Pos: p.tok.Pos, Expected: "':'", Found: describe(p.tok)}
		}
		p.advance()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		if p.opts.build {
			obj.SetField(token.QuotedToString(keyTok.Bytes), val)
		}
		if p.tok == nil {
			return nil, p.wantErr("',' or '}'")
		}
		switch p.tok.Type {
		case token.TComma:
			p.advance()
			if p.tok != nil && p.tok.Type == token.TRCurl {
				return nil, &ParseErr{Err: ErrTrailingComma, Pos: p.tok.Pos, Expected: "member", Found: "'}'"}
			}
		case token.TRCurl:
			p.advance()
			return obj, nil
		default:
			return nil, &ParseErr{Err: ErrUnexpectedToken, Pos: p.tok.Pos, Expected: "',' or '}'", Found: describe(p.tok)}
		}
	}
}

func (p *parser) array(open *token.Token) (*ir.Node, error) {
	if err := p.push(open); err != nil {
		return nil, err
	}
	defer p.pop()
	p.advance()
	var arr *ir.Node
	if p.opts.build {
		arr = ir.Array()
	}
	if p.tok != nil && p.tok.Type == token.TRSquare {
		p.advance()
		return arr, nil
	}
	for {
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		if p.opts.build {
			arr.Append(val)
		}
		if p.tok == nil {
			return nil, p.wantErr("',' or ']'")
		}
		switch p.tok.Type {
		case token.TComma:
			p.advance()
			if p.tok != nil && p.tok.Type == token.TRSquare {
				return nil, &ParseErr{Err: ErrTrailingComma, Pos: p.tok.Pos, Expected: "value", Found: "']'"}
			}
		case token.TRSquare:
			p.advance()
			return arr, nil
		default:
			return nil, &ParseErr{Err: ErrUnexpectedToken, Pos: p.tok.Pos, Expected: "',' or ']'", Found: describe(p.tok)}
		}
	}
}

func (p *parser) push(open *token.Token) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return &ParseErr{Err: ErrDepth, Pos: open.Pos}
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}

// numNode converts a number lexeme. Integers that fit keep int64
// precision; everything else goes through float64. Lexemes beyond
// float64's range keep their source text so the node still encodes as
// the number the document had.
func (p *parser) numNode(t *token.Token) (*ir.Node, error) {
	if !p.opts.build {
		return nil, nil
	}
	if t.Type == token.TInteger {
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err == nil {
			return ir.FromInt(i), nil
		}
	}
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err == nil {
		return ir.FromFloat(f), nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return nil, &ParseErr{Err: ErrUnexpectedToken, Pos: t.Pos, Expected: "number", Found: fmt.Sprintf("%q", t.Bytes)}
	}
	node := ir.FromFloat(f)
	node.Text = string(t.Bytes)
	return node, nil
}

func describe(t *token.Token) string {
	switch t.Type {
	case token.TString:
		return "string"
	case token.TInteger, token.TFloat:
		return "number"
	case token.TTrue, token.TFalse, token.TNull:
		return string(t.Bytes)
	default:
		return fmt.Sprintf("'%s'", t.Bytes)
	}
}
