package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/lectio/internal/annotations"
	"github.com/mrlokans/lectio/internal/audit"
	"github.com/mrlokans/lectio/internal/config"
	"github.com/mrlokans/lectio/internal/entities"
)

// ImportCommand replaces user data with the contents of a backup document.
type ImportCommand struct {
	DatabasePath string
	LogLevel     string
	Input        string
	AuditDir     string
	DryRun       bool
	Version      string

	out io.Writer
}

func NewImportCommand(cfg *config.Config, version string) *ImportCommand {
	return &ImportCommand{
		DatabasePath: cfg.Database.Path,
		LogLevel:     cfg.Database.LogLevel,
		AuditDir:     cfg.Audit.Dir,
		Version:      version,
		out:          os.Stdout,
	}
}

// ParseFlags parses command line flags
func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the user data database")
	fs.StringVar(&cmd.Input, "input", "", "Backup document to import (required, - for stdin)")
	fs.StringVar(&cmd.AuditDir, "audit-dir", cmd.AuditDir, "Directory for the audit copy of the imported document (empty disables)")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Validate the document without changing anything")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -input <file> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import a JSON backup. Favorites, notes and highlights are replaced;\n")
		fmt.Fprintf(os.Stderr, "settings from the backup are merged over the current ones.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -input lectio-backup.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -input lectio-backup.json -dry-run\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Input == "" {
		return fmt.Errorf("-input is required")
	}
	return nil
}

// Run executes the import command
func (cmd *ImportCommand) Run() error {
	fmt.Fprintln(cmd.out, "📥 Backup Import")
	fmt.Fprintln(cmd.out, "================")

	raw, err := cmd.readInput()
	if err != nil {
		return err
	}

	var backup entities.Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return fmt.Errorf("invalid backup format: %w", err)
	}
	if err := annotations.ValidateBackup(&backup); err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "📄 Backup version %s from %s\n", backup.Version, backup.ExportDate.Format("2006-01-02 15:04"))
	fmt.Fprintf(cmd.out, "📚 %d favorites, %d notes, %d highlights\n",
		len(backup.Data.Favorites), len(backup.Data.Notes), len(backup.Data.Highlights))

	if cmd.DryRun {
		return cmd.dryRun(&backup)
	}

	auditFile, err := audit.NewAuditor(cmd.AuditDir).Record("backup_import", json.RawMessage(raw))
	if err != nil {
		fmt.Fprintf(cmd.out, "⚠️  Failed to save audit copy: %v\n", err)
	} else if auditFile != "" {
		fmt.Fprintf(cmd.out, "🗂  Audit copy: %s\n", auditFile)
	}

	store, db, err := openStore(cmd.DatabasePath, cmd.LogLevel, cmd.Version)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.ImportUserData(&backup); err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}

	fmt.Fprintln(cmd.out, "✅ Import complete")
	return nil
}

// dryRun applies the backup to a throwaway in-memory store, so the document
// goes through the same checks as a real import without touching the database.
func (cmd *ImportCommand) dryRun(backup *entities.Backup) error {
	store, err := annotations.NewStore(annotations.NewMemoryGateway(), annotations.WithAppVersion(cmd.Version))
	if err != nil {
		return err
	}
	if err := store.ImportUserData(backup); err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}

	fmt.Fprintf(cmd.out, "✔️  Backup is valid, theme after import: %s\n", store.Settings().Theme)
	fmt.Fprintln(cmd.out, "🔍 DRY RUN MODE - No changes were made")
	return nil
}

func (cmd *ImportCommand) readInput() ([]byte, error) {
	if cmd.Input == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	return data, nil
}
