package main

import (
	"github.com/dhamidi/tako/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity := 0
			if debug {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)
			server := lsp.NewLSPServer(version, debug)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "log protocol traffic to stderr")

	return cmd
}
