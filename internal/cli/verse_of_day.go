package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrlokans/lectio/internal/config"
	"github.com/mrlokans/lectio/internal/reference"
)

// VerseOfDayCommand prints the calendar verse for a date.
type VerseOfDayCommand struct {
	Corpus corpusFlags
	Date   string

	now func() time.Time
	out io.Writer
}

func NewVerseOfDayCommand(cfg *config.Config) *VerseOfDayCommand {
	return &VerseOfDayCommand{
		Corpus: corpusFlags(cfg.Corpus),
		now:    time.Now,
		out:    os.Stdout,
	}
}

// ParseFlags parses command line flags
func (cmd *VerseOfDayCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("verse-of-day", flag.ExitOnError)

	cmd.Corpus.register(fs)
	fs.StringVar(&cmd.Date, "date", "", "Date in YYYY-MM-DD format (defaults to today)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s verse-of-day [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the verse of the day with its theme and liturgical label.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s verse-of-day\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s verse-of-day -date 2026-12-25 -source https://example.org/corpus\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Date != "" {
		if _, err := time.Parse(time.DateOnly, cmd.Date); err != nil {
			return fmt.Errorf("invalid -date %q: expected YYYY-MM-DD", cmd.Date)
		}
	}
	return nil
}

// Run executes the verse-of-day command
func (cmd *VerseOfDayCommand) Run() error {
	day := cmd.now()
	if cmd.Date != "" {
		parsed, err := time.Parse(time.DateOnly, cmd.Date)
		if err != nil {
			return fmt.Errorf("invalid -date %q: expected YYYY-MM-DD", cmd.Date)
		}
		day = parsed
	}

	loaded, err := cmd.Corpus.load()
	if err != nil {
		return err
	}
	resolver := reference.NewResolver(loaded.Index, loaded.Pericopes)

	verse, ok := resolver.VerseOfDay(day)
	if !ok {
		return fmt.Errorf("corpus has no verses")
	}

	fmt.Fprintf(cmd.out, "📅 %s\n", day.Format(time.DateOnly))
	if verse.Theme != "" {
		fmt.Fprintf(cmd.out, "✨ %s\n", verse.Theme)
	}
	fmt.Fprintf(cmd.out, "📖 %s %s:%s\n", verse.Book, verse.Chapter, verse.Verse)
	if label, ok := resolver.ResolveLabel(verse.Book, verse.Chapter, verse.Verse); ok {
		fmt.Fprintf(cmd.out, "🏷  %s\n", label)
	}
	fmt.Fprintf(cmd.out, "\n%s\n", verse.Text)
	return nil
}
