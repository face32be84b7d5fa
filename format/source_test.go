package format

import (
	"bytes"
	"testing"
)

func TestSourceEncoderRoundTrip(t *testing.T) {
	input := "# header\r\nquery Get($id: ID!) {\n  user(id: $id), # trailing\n  ...F,\n}\n\n\"\"\"\nDoc 🎉\n\"\"\"\ntype T {\n  f: Int\n}\nfragment F on User { bio }\n"
	doc := parseDocument(t, input)

	var buf bytes.Buffer
	if err := NewSourceEncoder(&buf, []byte(input)).Encode(doc); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got := buf.String(); got != input {
		t.Errorf("source round trip mismatch:\ngot  %q\nwant %q", got, input)
	}
}

func TestSourceEncoderEmptyInput(t *testing.T) {
	doc := parseDocument(t, "")
	var buf bytes.Buffer
	if err := NewSourceEncoder(&buf, nil).Encode(doc); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output: got %q, want empty", buf.String())
	}
}

// A document with no definitions still spans its trailing trivia.
func TestSourceEncoderTriviaOnlyInput(t *testing.T) {
	input := "# just a comment\n,,\n"
	doc := parseDocument(t, input)
	var buf bytes.Buffer
	if err := NewSourceEncoder(&buf, []byte(input)).Encode(doc); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got := buf.String(); got != input {
		t.Errorf("source round trip mismatch:\ngot  %q\nwant %q", got, input)
	}
}
