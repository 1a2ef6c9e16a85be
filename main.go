package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/lectio/internal/cli"
	"github.com/mrlokans/lectio/internal/config"
	"github.com/mrlokans/lectio/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// subcommand is implemented by every CLI command.
type subcommand interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "export":
		run(cli.NewExportCommand(config.NewConfig(), Version), args)

	case "import":
		run(cli.NewImportCommand(config.NewConfig(), Version), args)

	case "verse-of-day":
		run(cli.NewVerseOfDayCommand(config.NewConfig()), args)

	case "search":
		run(cli.NewSearchCommand(config.NewConfig()), args)

	case "version":
		fmt.Printf("lectio %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func run(cmd subcommand, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve         Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  export        Export user data as a JSON backup\n")
	fmt.Fprintf(os.Stderr, "  import        Import user data from a JSON backup\n")
	fmt.Fprintf(os.Stderr, "  verse-of-day  Print the verse of the day\n")
	fmt.Fprintf(os.Stderr, "  search        Search verse text\n")
	fmt.Fprintf(os.Stderr, "  version       Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
