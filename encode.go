package netbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for Position, writing
// the two signed legs in a stable field order.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("primary", p.primary.value)
	w.Append("primaryAsset", p.primary.asset)
	w.Append("secondary", p.secondary.value)
	w.Append("secondaryAsset", p.secondary.asset)
	w.Optional("match", string(p.match))
	w.Append("time", p.at)
	return w.MarshalJSON()
}

// positionLine is a specialized struct for decoding positions from JSONL.
type positionLine struct {
	Primary        decimal.Decimal `json:"primary"`
	PrimaryAsset   Asset           `json:"primaryAsset"`
	Secondary      decimal.Decimal `json:"secondary"`
	SecondaryAsset Asset           `json:"secondaryAsset"`
	Match          MatchID         `json:"match"`
	Time           time.Time       `json:"time"`
}

func (l positionLine) position() (Position, error) {
	return NewPosition(
		Money{value: l.Primary, asset: l.PrimaryAsset},
		Money{value: l.Secondary, asset: l.SecondaryAsset},
		l.Match, l.Time,
	)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Position,
// re-validating the leg invariants.
func (p *Position) UnmarshalJSON(data []byte) error {
	var l positionLine
	if err := json.Unmarshal(data, &l); err != nil {
		return err
	}
	pos, err := l.position()
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Deal, embedding
// the closed position's fields.
func (d Deal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(d.position)
	w.Append("closePrice", d.closePrice.value)
	w.Append("closeTime", d.closedAt)
	w.Append("profitLoss", d.profitLoss.value)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Deal.
func (d *Deal) UnmarshalJSON(data []byte) error {
	var l struct {
		positionLine
		ClosePrice decimal.Decimal `json:"closePrice"`
		CloseTime  time.Time       `json:"closeTime"`
		ProfitLoss decimal.Decimal `json:"profitLoss"`
	}
	if err := json.Unmarshal(data, &l); err != nil {
		return err
	}
	pos, err := l.position()
	if err != nil {
		return err
	}
	*d = Deal{
		position:   pos,
		closePrice: Money{value: l.ClosePrice, asset: pos.secondary.asset},
		closedAt:   l.CloseTime,
		profitLoss: Money{value: l.ProfitLoss, asset: pos.secondary.asset},
	}
	return nil
}

// EncodeBook writes every open position of the book as JSONL, ordered by
// instrument then identifier then time so the output is canonical.
func EncodeBook(w io.Writer, book Portfolio) error {
	ps := slices.Collect(book.All())
	slices.SortFunc(ps, func(a, b Position) int {
		if c := strings.Compare(a.Instrument().String(), b.Instrument().String()); c != 0 {
			return c
		}
		if c := strings.Compare(string(a.match), string(b.match)); c != 0 {
			return c
		}
		return a.at.Compare(b.at)
	})
	enc := json.NewEncoder(w)
	for _, p := range ps {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("could not encode position %s: %w", p, err)
		}
	}
	return nil
}

// DecodeBook reads a JSONL stream of positions into the given empty book by
// replaying AddPosition actions, so the book's own invariants re-check every
// line.
func DecodeBook(r io.Reader, book Portfolio) (Portfolio, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var p Position
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("could not decode position line %q: %w", string(line), err)
		}
		next, err := book.Apply(Diff{AddPosition{Position: p}})
		if err != nil {
			return nil, err
		}
		book = next
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return book, nil
}

// EncodeDeals appends deals as JSONL.
func EncodeDeals(w io.Writer, deals []Deal) error {
	enc := json.NewEncoder(w)
	for _, d := range deals {
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("could not encode deal: %w", err)
		}
	}
	return nil
}

// DecodeDeals reads a JSONL stream of deals.
func DecodeDeals(r io.Reader) ([]Deal, error) {
	var deals []Deal
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var d Deal
		if err := json.Unmarshal(line, &d); err != nil {
			return nil, fmt.Errorf("could not decode deal line %q: %w", string(line), err)
		}
		deals = append(deals, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return deals, nil
}
