// Package cmd implements the subcommands of the nbk command-line tool.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/netbook"
	"github.com/etnz/netbook/journal"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&openCmd{}, "ledger")
	c.Register(&bookCmd{}, "ledger")
	c.Register(&dealsCmd{}, "ledger")
}

var (
	bookFile    = flag.String("book-file", "book.jsonl", "Path to the open positions file (JSONL format)")
	journalFile = flag.String("journal-file", "deals.db", "Path to the deal journal (SQLite)")
	stateFile   = flag.String("state-file", "balance.json", "Path to the account balance state file")
	configFile  = flag.String("config-file", "nbk.yaml", "Path to the account and rate board configuration (YAML)")
)

// Logger writes CLI diagnostics to stderr; the level is set in nbk/main.go.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// LoadBook is the central function to open the position book under the
// configured policy.
func LoadBook(cfg *Config) (netbook.Portfolio, error) {
	book := cfg.NewBook()
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		Logger.Warn().Str("file", *bookFile).Msg("book does not exist, starting with an empty book")
		return book, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return netbook.DecodeBook(f, book)
}

// SaveBook writes the book back in canonical JSONL form.
func SaveBook(book netbook.Portfolio) error {
	f, err := os.Create(*bookFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return netbook.EncodeBook(f, book)
}

// OpenJournal opens the deal journal.
func OpenJournal() (journal.Journal, error) {
	return journal.NewSQLite(*journalFile)
}

func failf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
