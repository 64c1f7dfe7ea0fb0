package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maheshbansod/html-parser/format"
	"github.com/maheshbansod/html-parser/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var showPositions bool
	var colorize bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a file and print the node tree",
		Long:  "Parse a file, or stdin when no file is given, and print the resulting node tree.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args)
			if err != nil {
				return err
			}

			forest := parser.New(source).Parse()

			switch outputFormat {
			case "tree":
				var opts []format.TreeOption
				if showPositions {
					opts = append(opts, format.WithPositions())
				}
				if colorize {
					opts = append(opts, format.WithColor())
				}
				return format.NewTreeEncoder(os.Stdout, opts...).Encode(forest)
			case "json":
				return format.NewJSONEncoder(os.Stdout).Encode(forest)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")
	cmd.Flags().BoolVar(&showPositions, "positions", false, "include source spans in tree output")
	cmd.Flags().BoolVar(&colorize, "color", false, "colorize tree output")

	return cmd
}

func readSource(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
