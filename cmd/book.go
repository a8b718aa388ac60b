package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type bookCmd struct{}

func (*bookCmd) Name() string     { return "book" }
func (*bookCmd) Synopsis() string { return "display the open positions of the book" }
func (*bookCmd) Usage() string {
	return `nbk book

  Prints every open position: instrument, side, amount, average price,
  match identifier and open time.

`
}

func (*bookCmd) SetFlags(*flag.FlagSet) {}

func (*bookCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return failf("Error: could not load config: %v", err)
	}
	book, err := LoadBook(cfg)
	if err != nil {
		return failf("Error: could not load book: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INSTRUMENT\tSIDE\tAMOUNT\tPRICE\tMATCH\tTIME")
	for p := range book.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Instrument(), p.Side(), p.Amount(), p.Price().Amount(), p.MatchID(), p.Time().Format("2006-01-02 15:04:05"))
	}
	w.Flush()
	return subcommands.ExitSuccess
}
