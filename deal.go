package netbook

import "time"

// Deal is the immutable record of a realized full or partial close: the
// closed position (or closed slice), the price and time it closed at, and
// the realized profit or loss in the instrument's quote asset.
//
// Deals are completed facts. They are produced as a byproduct of diff
// derivation and are never merged or re-derived.
type Deal struct {
	position   Position
	closePrice Money
	closedAt   time.Time
	profitLoss Money
}

// Position returns the closed position or closed slice.
func (d Deal) Position() Position { return d.position }

// ClosePrice returns the price the position closed at, in the quote asset.
func (d Deal) ClosePrice() Money { return d.closePrice }

// ClosedAt returns the close timestamp.
func (d Deal) ClosedAt() time.Time { return d.closedAt }

// ProfitLoss returns the realized money in the quote asset.
func (d Deal) ProfitLoss() Money { return d.profitLoss }
