//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/alexpevzner/mfp/blob/main/cmd/mfp-shell/main.go
//

// Command posixargsh is an interactive shell demonstrating the
// posixarg package: each line typed at the prompt is shell-tokenized
// and run through a small example command tree, printing the
// resulting parse tree or parse error.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/peterh/liner"

	"github.com/cliframe/posixarg"
)

func main() {
	cmd := buildDemoCommand()

	editline := liner.NewLiner()
	defer editline.Close()
	editline.SetCtrlCAborts(true)

	historyPath := historyFilePath()
	if file, err := os.Open(historyPath); err == nil {
		editline.ReadHistory(file)
		file.Close()
	}

	fmt.Println("posixargsh: type a command line, or \"quit\" to exit.")
	for {
		line, err := editline.Prompt("posixargsh> ")
		if err != nil {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		editline.AppendHistory(trimmed)
		if file, err := os.Create(historyPath); err == nil {
			editline.WriteHistory(file)
			file.Close()
		}
		if trimmed == "quit" || trimmed == "exit" {
			break
		}

		if err := runOnce(cmd, trimmed); err != nil {
			fmt.Printf("error: %s\n", err)
		}
	}
}

// runOnce shell-tokenizes line and parses the result against cmd,
// printing a summary of the parse tree on success.
func runOnce(cmd *posixarg.CommandSpec, line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("tokenizing: %w", err)
	}

	result, err := posixarg.Parse(cmd, args)
	if err != nil {
		return err
	}
	printResult(result, 0)
	return nil
}

func printResult(result *posixarg.ParseResult, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%scommand: %s\n", indent, result.Command())
	if alias, ok := result.Alias(); ok {
		fmt.Printf("%s  (invoked as: %s)\n", indent, alias)
	}
	for name, opt := range result.Options() {
		fmt.Printf("%s  option %s = %v (x%d)\n", indent, name, opt.Value(), opt.Occurrences())
	}
	for name, pos := range result.Positionals() {
		fmt.Printf("%s  positional %s = %v\n", indent, name, pos.Value())
	}
	if extras := result.Extras(); len(extras) > 0 {
		fmt.Printf("%s  extras: %v\n", indent, extras)
	}
	if sub := result.Subcommand(); sub != nil {
		printResult(sub, depth+1)
	}
}

func historyFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "posixargsh")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "history")
}
