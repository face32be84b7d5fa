// Package lsp serves GraphQL parse diagnostics over the Language
// Server Protocol. Documents are re-parsed as mixed documents on every
// open, change, and save, and the resulting diagnostics pushed to the
// client; a clean parse or a close publishes an empty set to clear
// stale squiggles.
package lsp

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/tako/graphql/parser"
	"github.com/dhamidi/tako/graphql/token"
)

const lsName = "tako"

type LSPServer struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.RWMutex
	documents map[protocol.DocumentUri][]byte
}

func NewLSPServer(version string, debug bool) *LSPServer {
	ls := &LSPServer{
		version:   version,
		documents: make(map[protocol.DocumentUri][]byte),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, debug)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	content := []byte(params.TextDocument.Text)
	ls.setDocument(params.TextDocument.URI, content)
	ls.publishDiagnostics(ctx, params.TextDocument.URI, content)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	whole, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	content := []byte(whole.Text)
	ls.setDocument(params.TextDocument.URI, content)
	ls.publishDiagnostics(ctx, params.TextDocument.URI, content)
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.dropDocument(params.TextDocument.URI)
	ls.clearDiagnostics(ctx, params.TextDocument.URI)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	content, ok := ls.savedContent(params)
	if !ok {
		return nil
	}
	ls.publishDiagnostics(ctx, params.TextDocument.URI, content)
	return nil
}

// savedContent resolves the text to check after a save: the text the
// client included, the tracked copy, or the file on disk, in that
// order.
func (ls *LSPServer) savedContent(params *protocol.DidSaveTextDocumentParams) ([]byte, bool) {
	if params.Text != nil {
		content := []byte(*params.Text)
		ls.setDocument(params.TextDocument.URI, content)
		return content, true
	}
	if content, ok := ls.getDocument(params.TextDocument.URI); ok {
		return content, true
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, false
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	ls.setDocument(params.TextDocument.URI, content)
	return content, true
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, content []byte) {
	_, err := parser.New(content).ParseMixedDocument()

	diagnostics := []protocol.Diagnostic{}
	if err != nil {
		parseErrors, _ := err.(parser.Diagnostics)
		for _, parseError := range parseErrors {
			diagnostics = append(diagnostics, toProtocolDiagnostic(parseError))
		}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (ls *LSPServer) clearDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
}

func toProtocolDiagnostic(parseError *parser.ParseError) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	code := protocol.IntegerOrString{Value: parseError.Kind.String()}
	return protocol.Diagnostic{
		Range:    toProtocolRange(parseError.Span),
		Severity: &severity,
		Code:     &code,
		Source:   &source,
		Message:  parseError.Message,
	}
}

func toProtocolRange(span token.Span) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(span.Start),
		End:   toProtocolPosition(span.End),
	}
}

// The protocol counts columns in UTF-16 code units. Positions that
// lost their UTF-16 column fall back to the code point one.
func toProtocolPosition(pos token.SourcePosition) protocol.Position {
	column := pos.Column
	if pos.HasColumnUTF16() {
		column = pos.ColumnUTF16
	}
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line),
		Character: protocol.UInteger(column),
	}
}

func (ls *LSPServer) setDocument(uri protocol.DocumentUri, content []byte) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.documents[uri] = content
}

func (ls *LSPServer) getDocument(uri protocol.DocumentUri) ([]byte, bool) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	content, ok := ls.documents[uri]
	return content, ok
}

func (ls *LSPServer) dropDocument(uri protocol.DocumentUri) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.documents, uri)
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
