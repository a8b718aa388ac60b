package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type dealsCmd struct{}

func (*dealsCmd) Name() string     { return "deals" }
func (*dealsCmd) Synopsis() string { return "list journaled deals and realized totals" }
func (*dealsCmd) Usage() string {
	return `nbk deals

  Lists every journaled deal, oldest first, followed by the realized
  profit/loss total per asset.

`
}

func (*dealsCmd) SetFlags(*flag.FlagSet) {}

func (*dealsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, err := OpenJournal()
	if err != nil {
		return failf("Error: could not open journal: %v", err)
	}
	defer j.Close()

	records, err := j.List()
	if err != nil {
		return failf("Error: could not list deals: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLOSED\tINSTRUMENT\tSIDE\tAMOUNT\tOPEN\tCLOSE\tP/L")
	totals := make(map[string]decimal.Decimal)
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s %s\n",
			r.CloseTime.Format("2006-01-02 15:04:05"), r.Instrument, r.Side,
			r.Amount, r.OpenPrice, r.ClosePrice, r.ProfitLoss, r.PLAsset)
		pl, err := decimal.NewFromString(r.ProfitLoss)
		if err != nil {
			return failf("Error: corrupt journal row %s: %v", r.DealID, err)
		}
		totals[r.PLAsset] = totals[r.PLAsset].Add(pl)
	}
	w.Flush()
	for asset, total := range totals {
		fmt.Printf("total %s %s\n", asset, total)
	}
	return subcommands.ExitSuccess
}
