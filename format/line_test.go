package format

import (
	"bytes"
	"strings"
	"testing"
)

func encodeLines(t *testing.T, input string) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(parseDocument(t, input)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := buf.String()
	if out == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLineEncoderExecutable(t *testing.T) {
	got := encodeLines(t, `query GetUser($id: ID!, $first: Int) { user }
{ ping }
fragment Details on User { bio }`)

	assertLines(t, got, []string{
		"query\tGetUser\t$id:ID!,$first:Int",
		"query\t-\t-",
		"fragment\tDetails\tUser",
	})
}

func TestLineEncoderSchema(t *testing.T) {
	got := encodeLines(t, `schema { query: Query, mutation: Mutation }
scalar DateTime
type User implements Node & Entity {
  name: String!
  friends(first: Int, after: String): [User!]
}
interface Node { id: ID! }
union Media = Photo | Video
enum Color { RED GREEN }
input Filter {
  q: String
  tags: [String]
}
directive @cache(ttl: Int) repeatable on FIELD`)

	assertLines(t, got, []string{
		"schema\t-\tquery:Query,mutation:Mutation",
		"scalar\tDateTime",
		"type\tUser\tNode,Entity",
		"field\tname\tString!\t-",
		"field\tfriends\t[User!]\tfirst:Int,after:String",
		"interface\tNode\t-",
		"field\tid\tID!\t-",
		"union\tMedia\tPhoto,Video",
		"enum\tColor",
		"value\tRED",
		"value\tGREEN",
		"input\tFilter",
		"field\tq\tString\t-",
		"field\ttags\t[String]\t-",
		"directive\t@cache\tFIELD\trepeatable",
	})
}

func TestLineEncoderExtensions(t *testing.T) {
	got := encodeLines(t, `extend schema { subscription: Sub }
extend scalar DateTime @tz
extend type User implements Tagged { age: Int }
extend interface Node { ts: Int }
extend union Media = Clip
extend enum Color { BLUE }
extend input Filter { limit: Int }`)

	assertLines(t, got, []string{
		"extend-schema\t-\tsubscription:Sub",
		"extend-scalar\tDateTime",
		"extend-type\tUser\tTagged",
		"field\tage\tInt\t-",
		"extend-interface\tNode\t-",
		"field\tts\tInt\t-",
		"extend-union\tMedia\tClip",
		"extend-enum\tColor",
		"value\tBLUE",
		"extend-input\tFilter",
		"field\tlimit\tInt\t-",
	})
}
