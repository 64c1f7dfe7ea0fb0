package main

import (
	"fmt"
	"os"

	"github.com/maheshbansod/html-parser/format"
	"github.com/maheshbansod/html-parser/parser"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Scan a file and dump the raw token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args)
			if err != nil {
				return err
			}

			tokens := parser.Tokens(source)

			switch outputFormat {
			case "text":
				return format.NewTokenEncoder(os.Stdout).Encode(tokens)
			case "json":
				return format.NewTokenJSONEncoder(os.Stdout).Encode(tokens)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
