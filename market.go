package netbook

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a two-way price for an instrument: the bid is what the market
// pays for the base asset, the ask is what it charges.
type Quote struct {
	instrument Instrument
	bid        Money
	ask        Money
	at         time.Time
}

// NewQuote validates and creates a two-way quote. Both prices must be
// positive money in the instrument's quote asset.
func NewQuote(i Instrument, bid, ask Money, at time.Time) (Quote, error) {
	if bid.asset != i.quote || ask.asset != i.quote {
		return Quote{}, fmt.Errorf("quote for %s must be priced in %s", i, i.quote)
	}
	if !bid.IsPositive() || !ask.IsPositive() {
		return Quote{}, fmt.Errorf("quote for %s must carry positive prices", i)
	}
	return Quote{instrument: i, bid: bid, ask: ask, at: at}, nil
}

// Instrument returns the quoted pair.
func (q Quote) Instrument() Instrument { return q.instrument }

// Bid returns the price the market pays for the base asset.
func (q Quote) Bid() Money { return q.bid }

// Ask returns the price the market charges for the base asset.
func (q Quote) Ask() Money { return q.ask }

// Time returns the quote's timestamp.
func (q Quote) Time() time.Time { return q.at }

// Price returns the price on the requested side.
func (q Quote) Price(side QuoteSide) Money {
	if side == Bid {
		return q.bid
	}
	return q.ask
}

// reverse synthesizes the quote of the reversed instrument: the bid of the
// reversed pair is the reciprocal of the ask, and vice versa.
func (q Quote) reverse() Quote {
	one := decimal.New(1, 0)
	return Quote{
		instrument: q.instrument.Reverse(),
		bid:        Money{value: one.Div(q.ask.value), asset: q.instrument.base},
		ask:        Money{value: one.Div(q.bid.value), asset: q.instrument.base},
		at:         q.at,
	}
}

// Market is the external price source the core consults to realize profit
// and loss. Lookups are synchronous pure functions: when no price or no
// conversion route is available they report ok=false, never an error.
type Market interface {
	// Quote returns the two-way price for the instrument at the given size.
	Quote(i Instrument, amount Quantity) (Quote, bool)

	// Convert converts money into the target asset at the price of the given
	// quote side, using amount as the conversion notional.
	Convert(m Money, target Asset, side QuoteSide, amount Quantity) (Money, bool)

	// Pivot returns the asset used to cross pairs with no direct quote.
	Pivot() Asset
}

// RateBoard is an in-memory Market backed by a fixed set of two-way quotes.
// Quotes are size-independent: the amount only serves as the conversion
// notional for depth-aware markets, which a rate board is not.
//
// A missing direct quote is served from the reversed pair when available,
// and conversions with no direct or reversed route are crossed through the
// pivot asset.
type RateBoard struct {
	pivot Asset
	rates map[Instrument]Quote
}

// NewRateBoard returns an empty rate board crossing through pivot.
func NewRateBoard(pivot Asset) *RateBoard {
	return &RateBoard{pivot: pivot, rates: make(map[Instrument]Quote)}
}

// Set records a quote on the board, superseding any previous quote for the
// same instrument.
func (r *RateBoard) Set(q Quote) {
	r.rates[q.instrument] = q
}

// Pivot returns the board's crossing asset.
func (r *RateBoard) Pivot() Asset { return r.pivot }

// Quote returns the board's price for the instrument, synthesizing it from
// the reversed pair when only that one is quoted.
func (r *RateBoard) Quote(i Instrument, amount Quantity) (Quote, bool) {
	if q, ok := r.rates[i]; ok {
		return q, true
	}
	if q, ok := r.rates[i.Reverse()]; ok {
		return q.reverse(), true
	}
	return Quote{}, false
}

// Convert converts money into the target asset. Money already in the target
// asset converts to itself. Otherwise the direct (or reversed) pair is used,
// and failing that the conversion is crossed through the pivot asset.
func (r *RateBoard) Convert(m Money, target Asset, side QuoteSide, amount Quantity) (Money, bool) {
	if m.asset == target {
		return m, true
	}
	if q, ok := r.Quote(Instrument{base: m.asset, quote: target}, amount); ok {
		return Money{value: m.value.Mul(q.Price(side).value), asset: target}, true
	}
	if m.asset != r.pivot && target != r.pivot {
		leg, ok := r.Convert(m, r.pivot, side, amount)
		if !ok {
			return Money{}, false
		}
		return r.Convert(leg, target, side, amount)
	}
	return Money{}, false
}
