package main

import (
	"fmt"
	"os"

	"github.com/alidlorenzo/helix/lib/build"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "compile":
		if err := runCompile(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("helix version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`helix - component DSL compiler

Usage:
  helix <command> [arguments]

Commands:
  compile [files]       Compile DSL sources (*.hlx) and print emitted code
  version               Print version
  help                  Show this help

Options for compile:
  --debug               Emit hot-reload instrumentation
  --ns <name>           Namespace for qualified names (default: file basename)

Examples:
  helix compile ./...                 Compile every *.hlx under the current tree
  helix compile app/views/button.hlx  Compile a single source file
  helix compile --debug --ns app ./app`)
}

func runCompile(args []string) error {
	var opts build.Options
	var patterns []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--debug":
			opts.Debug = true
		case "--ns":
			i++
			if i >= len(args) {
				return fmt.Errorf("--ns requires a value")
			}
			opts.Namespace = args[i]
		default:
			patterns = append(patterns, args[i])
		}
	}

	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	return build.New(opts).Run(os.Stdout, patterns...)
}
