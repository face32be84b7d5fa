// Package format renders parsed GraphQL documents for the command line
// tools: an indented JSON tree of the AST, a tab-separated outline of
// the definitions, and a byte-exact echo of the original source.
package format

import (
	"github.com/dhamidi/tako/graphql/ast"
)

// Encoder is the interface implemented by all document encoders.
type Encoder interface {
	Encode(doc *ast.Document) error
}
