package netbook

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Invariant violations reported by position construction and diff derivation.
// They signal a defect in the caller's state management and must propagate.
var (
	ErrLegsShareSign = errors.New("position legs must carry opposite signs")
	ErrZeroLeg       = errors.New("position legs must both be non-zero")
	ErrSameAssetLegs = errors.New("position legs must carry different assets")
	ErrMixedBook     = errors.New("positions belong to different instruments")
	ErrNoCollapse    = errors.New("opposing positions of equal amount must fully collapse")
)

// Position is one open (or about-to-be-applied) stake in an instrument,
// represented by its two signed legs: holding 100,000 EUR bought at 1.1000
// against USD is primary=+100000 EUR, secondary=-110000 USD.
//
// Positions are immutable. They are superseded by subsequent positions,
// never updated in place.
type Position struct {
	primary   Money // signed, in the instrument's base asset
	secondary Money // signed, in the instrument's quote asset
	match     MatchID
	at        time.Time
}

// NewPosition validates and creates a position from its two signed legs.
// The legs must carry different assets, both be non-zero, and strictly
// oppose in sign.
func NewPosition(primary, secondary Money, match MatchID, at time.Time) (Position, error) {
	if primary.asset == secondary.asset {
		return Position{}, fmt.Errorf("%w: both legs in %q", ErrSameAssetLegs, primary.asset)
	}
	if primary.IsZero() || secondary.IsZero() {
		return Position{}, ErrZeroLeg
	}
	if primary.Sign() == secondary.Sign() {
		return Position{}, fmt.Errorf("%w: primary %s, secondary %s", ErrLegsShareSign, primary.value, secondary.value)
	}
	return Position{primary: primary, secondary: secondary, match: match, at: at}, nil
}

// Primary returns the signed leg in the instrument's base asset.
func (p Position) Primary() Money { return p.primary }

// Secondary returns the signed leg in the instrument's quote asset.
func (p Position) Secondary() Money { return p.secondary }

// MatchID returns the correlation identifier, zero when absent.
func (p Position) MatchID() MatchID { return p.match }

// Time returns the position's timestamp.
func (p Position) Time() time.Time { return p.at }

// Instrument returns the pair of assets the position is booked in.
func (p Position) Instrument() Instrument {
	return Instrument{base: p.primary.asset, quote: p.secondary.asset}
}

// Side returns Long when the primary leg is positive, Short otherwise.
func (p Position) Side() Side {
	if p.primary.IsPositive() {
		return Long
	}
	return Short
}

// Amount returns the unsigned size of the position in the base asset.
func (p Position) Amount() Quantity { return Quantity{value: p.primary.value.Abs()} }

// Price returns the position's average price, |secondary/primary|, as money
// in the quote asset.
func (p Position) Price() Money {
	return Money{value: p.secondary.value.Div(p.primary.value).Abs(), asset: p.secondary.asset}
}

// Merge nets position q into p and returns the residual position (nil on a
// full collapse) together with the realized money in the quote asset.
//
// When the two positions agree in sign they simply add and nothing is
// realized. When they oppose, the smaller-magnitude primary amount fully
// cancels against an equal slice of the larger; the cancelled slice's
// secondary-leg value is the realized gain or loss, and the residual keeps
// the larger position's original average price.
//
// The branch selection and arithmetic order below are numerically
// significant under finite-precision division and must not be reordered: in
// particular, at exact magnitude equality the residual secondary amount is
// derived from q's leg.
func (p Position) Merge(q Position) (*Position, Money, error) {
	if p.Instrument() != q.Instrument() {
		return nil, Money{}, fmt.Errorf("%w: %s vs %s", ErrMixedBook, p.Instrument(), q.Instrument())
	}
	a1, a2 := p.primary.value, p.secondary.value
	b1, b2 := q.primary.value, q.secondary.value

	var c1 decimal.Decimal
	if a1.Sign() != b1.Sign() {
		c1 = decimal.Min(a1.Abs(), b1.Abs())
		if a1.Sign() < 0 {
			c1 = c1.Neg()
		}
	}
	c2 := a2
	if !a1.IsZero() {
		c2 = c1.Mul(a2.Div(a1))
	}
	d1 := c1.Neg()
	d2 := b2
	if !b1.IsZero() {
		d2 = d1.Mul(b2.Div(b1))
	}
	realized := Money{value: c2.Add(d2), asset: p.secondary.asset}

	sigma := 1
	if a1.Abs().GreaterThan(b1.Abs()) {
		sigma = -1
	}
	f1 := a1.Add(b1)
	var f2 decimal.Decimal
	switch {
	case a1.Sign() == b1.Sign():
		f2 = a2.Add(b2)
	case sigma < 0:
		f2 = a2.Sub(c2)
	default:
		f2 = b2.Sub(d2)
	}

	if f1.IsZero() {
		return nil, realized, nil
	}
	remaining := Position{
		primary:   Money{value: f1, asset: p.primary.asset},
		secondary: Money{value: f2, asset: p.secondary.asset},
		match:     q.match,
		at:        q.at,
	}
	return &remaining, realized, nil
}

// Diff derives the ordered list of actions that books the receiver against
// an optional prior position occupying the same slot:
//
//   - no prior: AddPosition.
//   - full collapse: RemovePosition then CreateDeal.
//   - same direction: a single ModifyPosition, nothing realized.
//   - partial close: ModifyPosition then CreateDeal for the closed slice.
func (p Position) Diff(prior *Position) (Diff, error) {
	if prior == nil {
		return Diff{AddPosition{Position: p}}, nil
	}
	old := *prior
	remaining, realized, err := old.Merge(p)
	if err != nil {
		return nil, err
	}
	if remaining == nil {
		deal := Deal{position: old, closePrice: p.Price(), closedAt: p.at, profitLoss: realized}
		return Diff{RemovePosition{Position: old}, CreateDeal{Deal: deal}}, nil
	}
	if old.Side() == p.Side() {
		return Diff{ModifyPosition{Old: old, New: *remaining}}, nil
	}
	// Opposing sides with a residual: the smaller amount closes a slice of
	// the larger. Equal amounts cannot reach here, they collapse above.
	if old.Amount().Equal(p.Amount()) {
		return nil, fmt.Errorf("%w: %s of %s", ErrNoCollapse, old.Amount(), old.Instrument())
	}
	closing := old.slice(decimal.Min(old.Amount().value, p.Amount().value))
	_, sliceRealized, err := closing.Merge(p)
	if err != nil {
		return nil, err
	}
	deal := Deal{position: closing, closePrice: p.Price(), closedAt: p.at, profitLoss: sliceRealized}
	return Diff{ModifyPosition{Old: old, New: *remaining}, CreateDeal{Deal: deal}}, nil
}

// slice returns the proportional sub-position of p with the given unsigned
// base amount, keeping p's side, average price, identifier and timestamp.
func (p Position) slice(amount decimal.Decimal) Position {
	c := amount
	if p.primary.Sign() < 0 {
		c = c.Neg()
	}
	return Position{
		primary:   Money{value: c, asset: p.primary.asset},
		secondary: Money{value: c.Mul(p.secondary.value.Div(p.primary.value)), asset: p.secondary.asset},
		match:     p.match,
		at:        p.at,
	}
}

// String implements the fmt.Stringer interface.
func (p Position) String() string {
	return fmt.Sprintf("%s %s %s @ %s", p.Side(), p.Amount(), p.Instrument(), p.Price().value)
}
