// Package journal persists realized deal facts. Deals are immutable once
// recorded, so the journal is append-only: rows are inserted and listed,
// never updated.
package journal

import (
	"time"

	"github.com/etnz/netbook"
)

// DealRecord is the flat row projection of a netbook.Deal. Monetary values
// are stored as exact decimal strings so nothing is lost to binary floats.
type DealRecord struct {
	DealID     string
	Instrument string
	Side       string
	Amount     string
	OpenPrice  string
	ClosePrice string
	ProfitLoss string
	PLAsset    string
	MatchID    string
	OpenTime   time.Time
	CloseTime  time.Time
}

// NewDealRecord projects a deal onto a journal row under the given row id.
func NewDealRecord(id string, d netbook.Deal) DealRecord {
	p := d.Position()
	return DealRecord{
		DealID:     id,
		Instrument: p.Instrument().String(),
		Side:       p.Side().String(),
		Amount:     p.Amount().String(),
		OpenPrice:  p.Price().Amount().String(),
		ClosePrice: d.ClosePrice().Amount().String(),
		ProfitLoss: d.ProfitLoss().Amount().String(),
		PLAsset:    string(d.ProfitLoss().Asset()),
		MatchID:    string(p.MatchID()),
		OpenTime:   p.Time(),
		CloseTime:  d.ClosedAt(),
	}
}

// Journal records realized deals.
type Journal interface {
	Record(r DealRecord) error
	List() ([]DealRecord, error)
	Close() error
}
