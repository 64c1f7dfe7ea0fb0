package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/maheshbansod/html-parser/format"
	"github.com/maheshbansod/html-parser/parser"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const replHelp = `
Commands:
  :help      Show this help
  :tree      Show parsed trees (default)
  :tokens    Show raw token streams
  :json      Show trees as JSON
  :quit      Exit

Anything else is parsed as markup.
`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse markup interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	fmt.Println("htmlparse repl. Ctrl+D to exit, :help for commands.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, ".htmlparse_history")
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	view := "tree"
	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(input, ":") {
			switch strings.Fields(input)[0] {
			case ":help":
				fmt.Print(replHelp)
			case ":quit", ":exit":
				saveHistory(ln, histPath)
				return nil
			case ":tree":
				view = "tree"
			case ":tokens":
				view = "tokens"
			case ":json":
				view = "json"
			default:
				fmt.Println("unknown command, :help lists them")
			}
			continue
		}

		showInput(view, input)
	}

	saveHistory(ln, histPath)
	return nil
}

func showInput(view, source string) {
	switch view {
	case "tokens":
		format.NewTokenEncoder(os.Stdout).Encode(parser.Tokens(source))
	case "json":
		format.NewJSONEncoder(os.Stdout).Encode(parser.New(source).Parse())
	default:
		encoder := format.NewTreeEncoder(os.Stdout, format.WithPositions(), format.WithColor())
		encoder.Encode(parser.New(source).Parse())
	}
}

// saveHistory is best-effort, a read-only home directory is not an error.
func saveHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		ln.WriteHistory(f)
		f.Close()
	}
}
