package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/lectio/internal/config"
)

const defaultSearchLimit = 20

// SearchCommand runs a text search over the corpus.
type SearchCommand struct {
	Corpus corpusFlags
	Query  string
	Book   string
	Limit  int

	out io.Writer
}

func NewSearchCommand(cfg *config.Config) *SearchCommand {
	cmd := &SearchCommand{Corpus: corpusFlags(cfg.Corpus), out: os.Stdout}
	// Search output carries no labels.
	cmd.Corpus.PericopesFile = ""
	return cmd
}

// ParseFlags parses command line flags
func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	cmd.Corpus.register(fs)
	fs.StringVar(&cmd.Query, "q", "", "Text to search for (required, case-insensitive)")
	fs.StringVar(&cmd.Book, "book", "", "Restrict the search to one book")
	fs.IntVar(&cmd.Limit, "limit", defaultSearchLimit, "Maximum number of results (0 for all)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search -q <text> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search verse text in reading order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search -q \"pastor\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -q amor -book \"1 Corintios\" -limit 5\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Query = strings.TrimSpace(cmd.Query)
	if cmd.Query == "" {
		return fmt.Errorf("-q is required")
	}
	if cmd.Limit < 0 {
		return fmt.Errorf("-limit must not be negative")
	}
	return nil
}

// Run executes the search command
func (cmd *SearchCommand) Run() error {
	loaded, err := cmd.Corpus.load()
	if err != nil {
		return err
	}

	count := 0
	truncated := false
	for ref := range loaded.Index.Search(cmd.Query, cmd.Book) {
		if cmd.Limit > 0 && count == cmd.Limit {
			truncated = true
			break
		}
		fmt.Fprintf(cmd.out, "%s %s:%s  %s\n", ref.Book, ref.Chapter, ref.Verse, ref.Text)
		count++
	}

	if count == 0 {
		fmt.Fprintf(cmd.out, "ℹ️  No verses match %q\n", cmd.Query)
		return nil
	}

	fmt.Fprintf(cmd.out, "\n🔎 %d results", count)
	if truncated {
		fmt.Fprintf(cmd.out, " (limited to %d)", cmd.Limit)
	}
	fmt.Fprintln(cmd.out)
	return nil
}
