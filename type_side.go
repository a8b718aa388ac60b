package netbook

// Side is the directional stance of a position, derived from the sign of its
// primary leg.
type Side int

const (
	// Long holds the base asset and owes the quote asset.
	Long Side = iota
	// Short owes the base asset and holds the quote asset.
	Short
)

// Reverse returns the opposite stance.
func (s Side) Reverse() Side {
	if s == Long {
		return Short
	}
	return Long
}

// CloseSide returns the quote side a position of this stance closes against:
// a long position sells into the bid, a short position buys at the ask.
func (s Side) CloseSide() QuoteSide {
	if s == Long {
		return Bid
	}
	return Ask
}

// String implements the fmt.Stringer interface.
func (s Side) String() string {
	if s == Long {
		return "long"
	}
	return "short"
}

// QuoteSide selects one of the two prices of a two-way quote.
type QuoteSide int

const (
	// Bid is the price the market pays for the base asset.
	Bid QuoteSide = iota
	// Ask is the price the market charges for the base asset.
	Ask
)

// Opposite returns the other side of the quote.
func (q QuoteSide) Opposite() QuoteSide {
	if q == Bid {
		return Ask
	}
	return Bid
}

// String implements the fmt.Stringer interface.
func (q QuoteSide) String() string {
	if q == Bid {
		return "bid"
	}
	return "ask"
}
