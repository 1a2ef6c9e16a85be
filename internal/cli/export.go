package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/lectio/internal/config"
)

// ExportCommand writes all user data to a backup document.
type ExportCommand struct {
	DatabasePath string
	LogLevel     string
	Output       string
	Version      string

	out io.Writer
}

func NewExportCommand(cfg *config.Config, version string) *ExportCommand {
	return &ExportCommand{
		DatabasePath: cfg.Database.Path,
		LogLevel:     cfg.Database.LogLevel,
		Version:      version,
		out:          os.Stdout,
	}
}

// ParseFlags parses command line flags
func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the user data database")
	fs.StringVar(&cmd.Output, "output", "-", "Output file for the backup document (- for stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export favorites, notes, highlights and reader settings as a JSON backup.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -output lectio-backup.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -db /data/lectio.db > backup.json\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the export command
func (cmd *ExportCommand) Run() error {
	store, db, err := openStore(cmd.DatabasePath, cmd.LogLevel, cmd.Version)
	if err != nil {
		return err
	}
	defer db.Close()

	backup, err := store.ExportUserData()
	if err != nil {
		return fmt.Errorf("failed to export user data: %w", err)
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	if cmd.Output == "" || cmd.Output == "-" {
		_, err := fmt.Fprintln(cmd.out, string(data))
		return err
	}

	if err := os.WriteFile(cmd.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	fmt.Fprintf(cmd.out, "💾 Exported %d favorites, %d notes, %d highlights to %s\n",
		len(backup.Data.Favorites), len(backup.Data.Notes), len(backup.Data.Highlights), cmd.Output)
	return nil
}
