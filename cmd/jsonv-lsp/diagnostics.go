package main

import (
	"context"
	"errors"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/yaziciahmet/jsonv/debug"
	"github.com/yaziciahmet/jsonv/parse"
	"github.com/yaziciahmet/jsonv/token"
)

type document struct {
	uri     protocol.DocumentURI
	content string
}

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func (s *documentStore) put(uri protocol.DocumentURI, content string) *document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := &document{uri: uri, content: content}
	s.docs[string(uri)] = doc
	return doc
}

func (s *documentStore) get(uri protocol.DocumentURI) (*document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[string(uri)]
	return doc, ok
}

func (s *documentStore) remove(uri protocol.DocumentURI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, string(uri))
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(params.TextDocument.URI, params.TextDocument.Text)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Full sync: the last change carries the whole document.
	change := params.ContentChanges[len(params.ContentChanges)-1]
	doc := s.docs.put(params.TextDocument.URI, change.Text)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	if doc, ok := s.docs.get(params.TextDocument.URI); ok {
		s.publishDiagnostics(ctx, doc)
	}
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(params.TextDocument.URI)
	// Clear stale diagnostics for the closed document.
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics,
		&protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc.content)
	if debug.LSP() {
		debug.Logf("lsp: %s: %d diagnostics\n", doc.uri, len(diagnostics))
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics,
		&protocol.PublishDiagnosticsParams{
			URI:         doc.uri,
			Diagnostics: diagnostics,
		})
	if err != nil && debug.LSP() {
		debug.Logf("lsp: publish diagnostics: %s\n", err)
	}
}

func validateDocument(content string) []protocol.Diagnostic {
	d := []byte(content)
	err := parse.Validate(d)
	if err == nil {
		return []protocol.Diagnostic{}
	}
	rng := errRange(err)
	return []protocol.Diagnostic{
		{
			Range:    rng,
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  err.Error(),
		},
	}
}

// errRange maps a validation error to the document range it occurred
// at. Errors carry byte offsets; the range starts there and extends
// one column so editors have something to underline.
func errRange(err error) protocol.Range {
	var pos *token.Pos
	var pe *parse.ParseErr
	var te *token.TokenizeErr
	switch {
	case errors.As(err, &pe):
		pos = pe.Pos
	case errors.As(err, &te):
		pos = &te.Pos
	}
	if pos == nil {
		return protocol.Range{}
	}
	line, col := pos.LineCol()
	start := protocol.Position{Line: uint32(line), Character: uint32(col)}
	return protocol.Range{
		Start: start,
		End:   protocol.Position{Line: start.Line, Character: start.Character + 1},
	}
}
