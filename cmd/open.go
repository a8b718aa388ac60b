package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/netbook"
	"github.com/etnz/netbook/journal"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type openCmd struct {
	instrument string
	amount     string
	price      string
	side       string
	id         string
	at         string
}

func (*openCmd) Name() string { return "open" }
func (*openCmd) Synopsis() string {
	return "book an incoming position against the current book and settle any realized deal"
}
func (*openCmd) Usage() string {
	return `nbk open -i <instrument> -amount <amount> -price <price> [-side <long|short>] [-id <match-id>] [-t <time>]

  Constructs a position and runs it through the book. Depending on what the
  book already holds for the instrument, the position opens a new slot, adds
  to an existing position, partially closes it, or closes it entirely.
  Realized profit/loss is converted into the settlement asset using the
  configured rate board, added to the balance, and the deal is journaled.

Usage Examples:
# Go long 100000 EURUSD at 1.1000.
$ nbk open -i EURUSD -amount 100000 -price 1.1000

# Close it (strict policy nets automatically).
$ nbk open -i EURUSD -amount 100000 -price 1.1050 -side short

`
}

func (p *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.instrument, "i", "", "Instrument in 6-letter form, e.g. EURUSD.")
	f.StringVar(&p.amount, "amount", "", "Position size in the base asset, positive decimal.")
	f.StringVar(&p.price, "price", "", "Price in the quote asset, positive decimal.")
	f.StringVar(&p.side, "side", "long", "Position direction: long or short.")
	f.StringVar(&p.id, "id", "", "Match identifier. Generated under the non-strict policy when empty.")
	f.StringVar(&p.at, "t", "", "Position timestamp (RFC 3339). Defaults to now.")
}

// position builds the incoming position from the flags.
func (p *openCmd) position(cfg *Config) (netbook.Position, error) {
	i, err := netbook.ParseInstrument(p.instrument)
	if err != nil {
		return netbook.Position{}, err
	}
	amount, err := decimal.NewFromString(p.amount)
	if err != nil || !amount.IsPositive() {
		return netbook.Position{}, fmt.Errorf("amount must be a positive decimal, got %q", p.amount)
	}
	price, err := decimal.NewFromString(p.price)
	if err != nil || !price.IsPositive() {
		return netbook.Position{}, fmt.Errorf("price must be a positive decimal, got %q", p.price)
	}
	switch p.side {
	case "long":
	case "short":
		amount = amount.Neg()
	default:
		return netbook.Position{}, fmt.Errorf("side must be long or short, got %q", p.side)
	}
	at := time.Now()
	if p.at != "" {
		at, err = time.Parse(time.RFC3339, p.at)
		if err != nil {
			return netbook.Position{}, fmt.Errorf("invalid time: %w", err)
		}
	}
	id := netbook.MatchID(p.id)
	if id.IsZero() && cfg.Policy == "non-strict" {
		id = netbook.NewMatchID()
		Logger.Info().Stringer("id", id).Msg("assigned a fresh match identifier")
	}
	return netbook.NewPosition(
		netbook.M(amount, i.Base()),
		netbook.M(amount.Mul(price).Neg(), i.Quote()),
		id, at,
	)
}

func (p *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return failf("Error: could not load config: %v", err)
	}
	pos, err := p.position(cfg)
	if err != nil {
		return failf("Error: %v", err)
	}
	book, err := LoadBook(cfg)
	if err != nil {
		return failf("Error: could not load book: %v", err)
	}
	asset, err := cfg.SettlementAsset()
	if err != nil {
		return failf("Error: %v", err)
	}
	balance, err := LoadBalance(cfg)
	if err != nil {
		return failf("Error: %v", err)
	}
	account, err := netbook.NewAccount(asset, balance, book, cfg.Scale)
	if err != nil {
		return failf("Error: %v", err)
	}
	market, err := cfg.Market()
	if err != nil {
		return failf("Error: %v", err)
	}

	next, ok, err := account.Ingest(pos, market)
	if err != nil {
		return failf("Error: %v", err)
	}
	if !ok {
		return failf("No conversion available from %s to %s: the book was left untouched, retry when the rate board has a route.", pos.Instrument().Quote(), asset)
	}

	for _, act := range next.LastDiff() {
		switch a := act.(type) {
		case netbook.AddPosition:
			fmt.Printf("open   %s\n", a.Position)
		case netbook.ModifyPosition:
			fmt.Printf("modify %s -> %s\n", a.Old, a.New)
		case netbook.RemovePosition:
			fmt.Printf("close  %s\n", a.Position)
		case netbook.CreateDeal:
			fmt.Printf("deal   %s closed at %s, realized %s\n",
				a.Deal.Position(), a.Deal.ClosePrice().Amount(), a.Deal.ProfitLoss().SignedString())
		}
	}

	j, err := OpenJournal()
	if err != nil {
		return failf("Error: could not open journal: %v", err)
	}
	defer j.Close()
	for _, d := range next.LastDiff().Deals() {
		if err := j.Record(journal.NewDealRecord(string(netbook.NewMatchID()), d)); err != nil {
			return failf("Error: could not journal deal: %v", err)
		}
	}

	if err := SaveBook(next.Portfolio()); err != nil {
		return failf("Error: could not save book: %v", err)
	}
	if err := SaveBalance(next.Balance()); err != nil {
		return failf("Error: could not save balance: %v", err)
	}
	fmt.Fprintf(os.Stdout, "balance %s\n", next.Balance())
	return subcommands.ExitSuccess
}
