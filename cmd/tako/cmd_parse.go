package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/tako/format"
	"github.com/dhamidi/tako/graphql/ast"
	"github.com/dhamidi/tako/graphql/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var documentKind string
	var outputFormat string

	cmd := &cobra.Command{
		Use:           "parse <file>",
		Short:         "Parse a GraphQL document and dump the result",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			source, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			doc, err := parseByKind(source, documentKind)
			if err != nil {
				if diags, ok := err.(parser.Diagnostics); ok {
					printDiagnostics(diags, source, filename)
				}
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewASTEncoder(os.Stdout)
			case "line":
				encoder = format.NewLineEncoder(os.Stdout)
			case "source":
				encoder = format.NewSourceEncoder(os.Stdout, source)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&documentKind, "kind", "k", "mixed", "document kind (executable, schema, mixed)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, line, source)")

	return cmd
}

func parseByKind(source []byte, kind string) (*ast.Document, error) {
	p := parser.New(source)
	switch kind {
	case "executable":
		return p.ParseExecutableDocument()
	case "schema":
		return p.ParseSchemaDocument()
	case "mixed":
		return p.ParseMixedDocument()
	}
	return nil, fmt.Errorf("unknown document kind: %s", kind)
}

func printDiagnostics(diags parser.Diagnostics, source []byte, filename string) {
	for _, diag := range diags {
		fmt.Fprintln(os.Stderr, diag.Detail(source, filename))
	}
}
