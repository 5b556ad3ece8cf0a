package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eringen/webseo/internal/log"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	log.Configure(log.Config{})
	os.Exit(run(os.Args[1:]))
}

// run dispatches a command and returns the process exit code.
func run(args []string) int {
	// Bare invocation (or bare flags) is the build step: process with defaults.
	if len(args) == 0 || strings.HasPrefix(args[0], "-") && !isHelp(args[0]) {
		return exitCode(runProcess(args))
	}

	switch args[0] {
	case "process":
		return exitCode(runProcess(args[1:]))
	case "init":
		return exitCode(runInit(args[1:], os.Stdout))
	case "serve":
		return exitCode(runServe(args[1:]))
	case "history":
		return exitCode(runHistory(args[1:], os.Stdout))
	case "version":
		fmt.Printf("webseo %s\n", version)
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage()
		return 1
	}
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help"
}

func exitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Println(`webseo - inject SEO metadata into a web build's index.html and minify it

Usage:
  webseo [command] [flags]

Commands:
  process       Substitute {{TOKEN}} markers and minify (default command)
  init [dir]    Write starter config files and an index.html template
  serve         Serve the processed build locally
  history       List recorded processing runs
  version       Print the webseo version
  help          Show this help message

Examples:
  webseo
  webseo process -sitemap -history .webseo/history.db
  webseo serve -addr :8080`)
}
