package netbook

import (
	"fmt"
)

// Account wraps a portfolio with a settlement balance. The balance is held
// in a single settlement asset, rounded to a fixed decimal scale, and only
// changes through realized deals converted by the external market.
//
// Accounts are immutable: Ingest returns a brand-new account and keeps the
// applied diff for audit.
type Account struct {
	asset     Asset
	scale     int32
	balance   Money
	portfolio Portfolio
	last      Diff
}

// NewAccount creates an account settling in the given asset. A negative
// scale defaults to the asset's currency fraction (2 for most currencies).
func NewAccount(settlement Asset, opening Money, p Portfolio, scale int32) (*Account, error) {
	if opening.asset != "" && opening.asset != settlement {
		return nil, fmt.Errorf("opening balance in %s cannot fund an account settling in %s", opening.asset, settlement)
	}
	if scale < 0 {
		scale = int32(Money{asset: settlement}.currency().Fraction)
	}
	return &Account{
		asset:     settlement,
		scale:     scale,
		balance:   Money{value: opening.value.Round(scale), asset: settlement},
		portfolio: p,
	}, nil
}

// SettlementAsset returns the asset the balance is denominated in.
func (a *Account) SettlementAsset() Asset { return a.asset }

// Balance returns the current settlement balance.
func (a *Account) Balance() Money { return a.balance }

// Portfolio returns the current book snapshot.
func (a *Account) Portfolio() Portfolio { return a.portfolio }

// LastDiff returns the diff applied by the ingestion that produced this
// account, nil for a fresh account.
func (a *Account) LastDiff() Diff { return a.last }

// Ingest runs the position through the portfolio and realizes the resulting
// deal, if any, into the balance. The realized money is converted into the
// settlement asset by the market, closing on the side appropriate to the
// position's direction (long against bid, short against ask) with the
// position's amount as notional.
//
// When the market cannot produce a conversion, Ingest reports ok=false and
// no partial state: the receiving account is left untouched and no new
// account is produced. Errors are reserved for invariant violations.
func (a *Account) Ingest(p Position, m Market) (acc *Account, ok bool, err error) {
	next, diff, err := a.portfolio.Ingest(p)
	if err != nil {
		return nil, false, err
	}
	realized := Money{asset: p.Instrument().Quote()}
	if deal, found := diff.FirstDeal(); found {
		realized = deal.ProfitLoss()
	}
	converted, ok := m.Convert(realized, a.asset, p.Side().CloseSide(), p.Amount())
	if !ok {
		return nil, false, nil
	}
	return &Account{
		asset:     a.asset,
		scale:     a.scale,
		balance:   a.balance.Add(converted).Round(a.scale),
		portfolio: next,
		last:      diff,
	}, true, nil
}
