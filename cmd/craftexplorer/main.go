package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SylphxAI/craft/cmd/craftexplorer/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("craftexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	docPath := filteredArgs[0]
	logger.Info("starting craftexplorer", "path", docPath, "debug", debugMode)

	m, err := NewModel(docPath)
	if err != nil {
		logger.Error("failed to load document", "path", docPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("craftexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: craftexplorer [options] <document.json>\n")
	fmt.Fprintf(os.Stderr, "Try 'craftexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("craftexplorer - Interactive TUI for structured JSON documents")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  craftexplorer [options] <document.json>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Opens a JSON document in a draft session. Edits accumulate in the")
	fmt.Println("  draft and touch nothing on disk until written; quitting without")
	fmt.Println("  writing abandons every change.")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Move up/down")
	fmt.Println("    →/l, Enter  Expand container")
	fmt.Println("    ←/h         Collapse / go to parent")
	fmt.Println("    e           Edit the value under the cursor")
	fmt.Println("    a           Append to the sequence under the cursor")
	fmt.Println("    x           Delete the entry under the cursor")
	fmt.Println("    w           Write changes to disk")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit (abandon unwritten changes)")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.craftexplorer/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  craftexplorer config.json")
	fmt.Println("  craftexplorer users.json --debug")
}
