package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/yaziciahmet/jsonv/encode"
	"github.com/yaziciahmet/jsonv/parse"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	node, err := parse.Parse([]byte(doc.content))
	if err != nil {
		// Diagnostics already report the problem; formatting an
		// invalid document is a no-op.
		return nil, nil
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf); err != nil {
		return nil, err
	}
	formatted := buf.String()
	if formatted == doc.content {
		return nil, nil
	}
	lines := bytes.Count([]byte(doc.content), []byte{'\n'})
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
