package lsp

import (
	"strings"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func captureContext(t *testing.T) (*glsp.Context, *[]protocol.PublishDiagnosticsParams) {
	t.Helper()
	published := &[]protocol.PublishDiagnosticsParams{}
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				t.Fatalf("unexpected notification %q", method)
			}
			p, ok := params.(protocol.PublishDiagnosticsParams)
			if !ok {
				t.Fatalf("unexpected params type %T", params)
			}
			*published = append(*published, p)
		},
	}
	return ctx, published
}

func openDocument(t *testing.T, ls *LSPServer, ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	t.Helper()
	err := ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "graphql",
			Version:    1,
			Text:       text,
		},
	})
	if err != nil {
		t.Fatalf("didOpen failed: %v", err)
	}
}

func TestDidOpenPublishesParseDiagnostics(t *testing.T) {
	ls := NewLSPServer("test", false)
	ctx, published := captureContext(t)

	openDocument(t, ls, ctx, "file:///tmp/broken.graphql", "type {")

	if len(*published) != 1 {
		t.Fatalf("got %d notifications, want 1", len(*published))
	}
	params := (*published)[0]
	if params.URI != "file:///tmp/broken.graphql" {
		t.Errorf("URI = %q, want file:///tmp/broken.graphql", params.URI)
	}
	if len(params.Diagnostics) == 0 {
		t.Fatalf("no diagnostics for malformed document")
	}
	for i, diag := range params.Diagnostics {
		if diag.Severity == nil || *diag.Severity != protocol.DiagnosticSeverityError {
			t.Errorf("diagnostic %d severity = %v, want error", i, diag.Severity)
		}
		if diag.Source == nil || *diag.Source != "tako" {
			t.Errorf("diagnostic %d source = %v, want tako", i, diag.Source)
		}
		if diag.Message == "" {
			t.Errorf("diagnostic %d has empty message", i)
		}
	}
}

func TestDidOpenCleanDocumentPublishesEmptySet(t *testing.T) {
	ls := NewLSPServer("test", false)
	ctx, published := captureContext(t)

	openDocument(t, ls, ctx, "file:///tmp/ok.graphql", "{ ok }\n")

	if len(*published) != 1 {
		t.Fatalf("got %d notifications, want 1", len(*published))
	}
	params := (*published)[0]
	if params.Diagnostics == nil {
		t.Fatalf("diagnostics slice is nil, want empty")
	}
	if len(params.Diagnostics) != 0 {
		t.Errorf("got %d diagnostics, want 0: %v", len(params.Diagnostics), params.Diagnostics)
	}
}

func TestDiagnosticPositionsUseUTF16Columns(t *testing.T) {
	ls := NewLSPServer("test", false)
	ctx, published := captureContext(t)

	openDocument(t, ls, ctx, "file:///tmp/emoji.graphql", "{ \U0001F600 }")

	if len(*published) != 1 {
		t.Fatalf("got %d notifications, want 1", len(*published))
	}
	var found *protocol.Diagnostic
	for i, diag := range (*published)[0].Diagnostics {
		if strings.HasPrefix(diag.Message, "Unexpected character") {
			found = &(*published)[0].Diagnostics[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("no unexpected-character diagnostic in %v", (*published)[0].Diagnostics)
	}
	// The emoji occupies one code point but two UTF-16 units.
	if found.Range.Start.Line != 0 || found.Range.Start.Character != 2 {
		t.Errorf("start = %d:%d, want 0:2", found.Range.Start.Line, found.Range.Start.Character)
	}
	if found.Range.End.Line != 0 || found.Range.End.Character != 4 {
		t.Errorf("end = %d:%d, want 0:4", found.Range.End.Line, found.Range.End.Character)
	}
}

func TestDidChangeReparses(t *testing.T) {
	ls := NewLSPServer("test", false)
	ctx, published := captureContext(t)
	uri := protocol.DocumentUri("file:///tmp/change.graphql")

	openDocument(t, ls, ctx, uri, "query {")
	err := ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "{ ok }"},
		},
	})
	if err != nil {
		t.Fatalf("didChange failed: %v", err)
	}

	if len(*published) != 2 {
		t.Fatalf("got %d notifications, want 2", len(*published))
	}
	if len((*published)[0].Diagnostics) == 0 {
		t.Errorf("no diagnostics for the malformed revision")
	}
	if len((*published)[1].Diagnostics) != 0 {
		t.Errorf("diagnostics not cleared after fix: %v", (*published)[1].Diagnostics)
	}
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	ls := NewLSPServer("test", false)
	ctx, published := captureContext(t)
	uri := protocol.DocumentUri("file:///tmp/close.graphql")

	openDocument(t, ls, ctx, uri, "query {")
	err := ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if err != nil {
		t.Fatalf("didClose failed: %v", err)
	}

	if len(*published) != 2 {
		t.Fatalf("got %d notifications, want 2", len(*published))
	}
	last := (*published)[1]
	if last.URI != uri {
		t.Errorf("URI = %q, want %q", last.URI, uri)
	}
	if len(last.Diagnostics) != 0 {
		t.Errorf("diagnostics not cleared on close: %v", last.Diagnostics)
	}
}

func TestDidSaveWithIncludedText(t *testing.T) {
	ls := NewLSPServer("test", false)
	ctx, published := captureContext(t)
	text := "extend type"

	err := ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///tmp/save.graphql"},
		Text:         &text,
	})
	if err != nil {
		t.Fatalf("didSave failed: %v", err)
	}

	if len(*published) != 1 {
		t.Fatalf("got %d notifications, want 1", len(*published))
	}
	if len((*published)[0].Diagnostics) == 0 {
		t.Errorf("no diagnostics for malformed saved text")
	}
}

func TestDidSaveWithoutTextUsesTrackedDocument(t *testing.T) {
	ls := NewLSPServer("test", false)
	ctx, published := captureContext(t)
	uri := protocol.DocumentUri("file:///tmp/tracked.graphql")

	openDocument(t, ls, ctx, uri, "query {")
	err := ls.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if err != nil {
		t.Fatalf("didSave failed: %v", err)
	}

	if len(*published) != 2 {
		t.Fatalf("got %d notifications, want 2", len(*published))
	}
	if got, first := len((*published)[1].Diagnostics), len((*published)[0].Diagnostics); got != first || got == 0 {
		t.Errorf("saved reparse produced %d diagnostics, open produced %d", got, first)
	}
}

func TestInitializeAdvertisesFullSync(t *testing.T) {
	ls := NewLSPServer("1.2.3", false)
	ctx, _ := captureContext(t)

	result, err := ls.initialize(ctx, &protocol.InitializeParams{})
	if err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	initResult, ok := result.(protocol.InitializeResult)
	if !ok {
		t.Fatalf("result type = %T, want protocol.InitializeResult", result)
	}

	sync, ok := initResult.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	if !ok {
		t.Fatalf("TextDocumentSync type = %T", initResult.Capabilities.TextDocumentSync)
	}
	if sync.OpenClose == nil || !*sync.OpenClose {
		t.Errorf("OpenClose = %v, want true", sync.OpenClose)
	}
	if sync.Change == nil || *sync.Change != protocol.TextDocumentSyncKindFull {
		t.Errorf("Change = %v, want full", sync.Change)
	}
	if sync.Save == nil {
		t.Fatalf("Save options missing")
	}

	if initResult.ServerInfo == nil || initResult.ServerInfo.Name != "tako" {
		t.Errorf("server info = %+v, want name tako", initResult.ServerInfo)
	}
	if initResult.ServerInfo.Version == nil || *initResult.ServerInfo.Version != "1.2.3" {
		t.Errorf("version = %v, want 1.2.3", initResult.ServerInfo.Version)
	}
}
