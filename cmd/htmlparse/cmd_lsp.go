package main

import (
	"github.com/maheshbansod/html-parser/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var tcpAddr string
	var verbosity int
	var logFile string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var logPath *string
			if logFile != "" {
				logPath = &logFile
			}
			commonlog.Configure(verbosity, logPath)

			server := lsp.NewServer("0.1.0")
			if tcpAddr != "" {
				return server.RunTCP(tcpAddr)
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&tcpAddr, "tcp", "", "listen on a TCP address instead of stdio")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to a file instead of stderr")

	return cmd
}
