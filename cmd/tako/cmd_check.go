package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/tako/graphql/parser"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var extensions []string

	cmd := &cobra.Command{
		Use:           "check <path>...",
		Short:         "Parse GraphQL files and report diagnostics",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectFiles(args, extensions)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no GraphQL files found")
			}

			failed := 0
			for _, file := range files {
				if !checkFile(file) {
					failed++
				}
			}

			fmt.Printf("\nChecked %d files: %d ok, %d failed\n", len(files), len(files)-failed, failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&extensions, "graphql-file-exts",
		[]string{"graphql", "graphqls"}, "file extensions scanned in directories")

	return cmd
}

// collectFiles resolves the argument list to files to check. Explicit
// file arguments are always checked, with a warning when their
// extension is not a GraphQL one; directories are walked and filtered
// by extension.
func collectFiles(paths []string, extensions []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			if !matchesExtension(path, extensions) {
				fmt.Fprintf(os.Stderr, "warning: %s does not have a GraphQL extension, checking anyway\n", path)
			}
			files = append(files, path)
			continue
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && matchesExtension(p, extensions) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}
	return files, nil
}

func matchesExtension(path string, extensions []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, want := range extensions {
		if ext == strings.TrimPrefix(want, ".") {
			return true
		}
	}
	return false
}

func checkFile(path string) bool {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("[ERROR] %s: %v\n", path, err)
		return false
	}
	_, parseErr := parser.New(source).ParseMixedDocument()
	if parseErr != nil {
		diags, _ := parseErr.(parser.Diagnostics)
		fmt.Printf("[FAIL] %s (%d errors)\n", path, len(diags))
		for _, diag := range diags {
			fmt.Fprintln(os.Stderr, diag.Oneline(path))
		}
		return false
	}
	fmt.Printf("[OK] %s\n", path)
	return true
}
