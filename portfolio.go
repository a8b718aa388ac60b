package netbook

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Invariant violations reported when applying a diff to a book.
var (
	ErrSlotOccupied = errors.New("slot already holds a position")
	ErrSlotMissing  = errors.New("slot holds no position")
)

// Portfolio holds the current set of open positions and knows how to apply a
// diff to produce a new snapshot. Snapshots are immutable: Ingest and Apply
// return new portfolios and never mutate the receiver.
type Portfolio interface {
	// Ingest books an incoming position against whatever prior state the
	// policy matches it to, returning the new snapshot and the diff that
	// produced it.
	Ingest(p Position) (Portfolio, Diff, error)

	// Apply replays a diff onto the book.
	Apply(d Diff) (Portfolio, error)

	// Positions returns the open positions for one instrument, sorted by
	// identifier. A strict book returns at most one.
	Positions(i Instrument) []Position

	// All iterates over every open position in an unspecified order.
	All() iter.Seq[Position]

	// Len returns the number of open positions.
	Len() int
}

// StrictPortfolio keeps at most one net position per instrument.
type StrictPortfolio struct {
	book map[Instrument]Position
}

// NewStrictPortfolio returns an empty strict book.
func NewStrictPortfolio() *StrictPortfolio {
	return &StrictPortfolio{book: make(map[Instrument]Position)}
}

// Ingest nets the incoming position against the instrument's current net
// position, if any.
func (b *StrictPortfolio) Ingest(p Position) (Portfolio, Diff, error) {
	var prior *Position
	if cur, ok := b.book[p.Instrument()]; ok {
		prior = &cur
	}
	d, err := p.Diff(prior)
	if err != nil {
		return nil, nil, err
	}
	next, err := b.Apply(d)
	if err != nil {
		return nil, nil, err
	}
	return next, d, nil
}

// Apply replays the diff onto a copy of the book.
func (b *StrictPortfolio) Apply(d Diff) (Portfolio, error) {
	book := maps.Clone(b.book)
	if book == nil {
		book = make(map[Instrument]Position)
	}
	for _, act := range d {
		switch a := act.(type) {
		case AddPosition:
			slot := a.Position.Instrument()
			if _, ok := book[slot]; ok {
				return nil, fmt.Errorf("add %s: %w", slot, ErrSlotOccupied)
			}
			book[slot] = a.Position
		case ModifyPosition:
			slot := a.Old.Instrument()
			if _, ok := book[slot]; !ok {
				return nil, fmt.Errorf("modify %s: %w", slot, ErrSlotMissing)
			}
			delete(book, slot)
			book[a.New.Instrument()] = a.New
		case RemovePosition:
			slot := a.Position.Instrument()
			if _, ok := book[slot]; !ok {
				return nil, fmt.Errorf("remove %s: %w", slot, ErrSlotMissing)
			}
			delete(book, slot)
		case CreateDeal:
			// no book effect
		default:
			return nil, fmt.Errorf("unsupported portfolio action %T", act)
		}
	}
	return &StrictPortfolio{book: book}, nil
}

// Positions returns zero or one position for the instrument.
func (b *StrictPortfolio) Positions(i Instrument) []Position {
	if p, ok := b.book[i]; ok {
		return []Position{p}
	}
	return nil
}

// All iterates over every open position.
func (b *StrictPortfolio) All() iter.Seq[Position] {
	return maps.Values(b.book)
}

// Len returns the number of open positions.
func (b *StrictPortfolio) Len() int { return len(b.book) }

// NonStrictPortfolio tracks multiple independent positions per instrument,
// keyed by their match identifier. An incoming position is matched to prior
// state only when it carries an identifier already present in the book;
// unidentified positions are always booked as new.
type NonStrictPortfolio struct {
	book map[Instrument]map[MatchID]Position
}

// NewNonStrictPortfolio returns an empty non-strict book.
func NewNonStrictPortfolio() *NonStrictPortfolio {
	return &NonStrictPortfolio{book: make(map[Instrument]map[MatchID]Position)}
}

// Ingest books the incoming position, matching it against the prior position
// carrying the same identifier when one exists.
func (b *NonStrictPortfolio) Ingest(p Position) (Portfolio, Diff, error) {
	var prior *Position
	if !p.match.IsZero() {
		if cur, ok := b.book[p.Instrument()][p.match]; ok {
			prior = &cur
		}
	}
	d, err := p.Diff(prior)
	if err != nil {
		return nil, nil, err
	}
	next, err := b.Apply(d)
	if err != nil {
		return nil, nil, err
	}
	return next, d, nil
}

// Apply replays the diff onto a copy of the book. Only the instruments the
// diff touches have their inner map cloned.
func (b *NonStrictPortfolio) Apply(d Diff) (Portfolio, error) {
	book := maps.Clone(b.book)
	if book == nil {
		book = make(map[Instrument]map[MatchID]Position)
	}
	// clone an inner map once before its first mutation.
	cloned := make(map[Instrument]bool)
	ids := func(i Instrument) map[MatchID]Position {
		if !cloned[i] {
			inner := maps.Clone(book[i])
			if inner == nil {
				inner = make(map[MatchID]Position)
			}
			book[i] = inner
			cloned[i] = true
		}
		return book[i]
	}

	for _, act := range d {
		switch a := act.(type) {
		case AddPosition:
			slot := a.Position.Instrument()
			if _, ok := ids(slot)[a.Position.match]; ok {
				return nil, fmt.Errorf("add %s %s: %w", slot, a.Position.match, ErrSlotOccupied)
			}
			ids(slot)[a.Position.match] = a.Position
		case ModifyPosition:
			slot := a.Old.Instrument()
			inner := ids(slot)
			if _, ok := inner[a.Old.match]; !ok {
				return nil, fmt.Errorf("modify %s %s: %w", slot, a.Old.match, ErrSlotMissing)
			}
			if a.New.match != a.Old.match {
				if _, ok := inner[a.New.match]; ok {
					return nil, fmt.Errorf("modify %s to %s: %w", slot, a.New.match, ErrSlotOccupied)
				}
			}
			delete(inner, a.Old.match)
			inner[a.New.match] = a.New
		case RemovePosition:
			slot := a.Position.Instrument()
			inner := ids(slot)
			if _, ok := inner[a.Position.match]; !ok {
				return nil, fmt.Errorf("remove %s %s: %w", slot, a.Position.match, ErrSlotMissing)
			}
			delete(inner, a.Position.match)
		case CreateDeal:
			// no book effect
		default:
			return nil, fmt.Errorf("unsupported portfolio action %T", act)
		}
	}
	// every instrument key must hold a non-empty slot.
	for i, inner := range book {
		if len(inner) == 0 {
			delete(book, i)
		}
	}
	return &NonStrictPortfolio{book: book}, nil
}

// Positions returns the instrument's open positions sorted by identifier.
func (b *NonStrictPortfolio) Positions(i Instrument) []Position {
	inner, ok := b.book[i]
	if !ok {
		return nil
	}
	ps := slices.Collect(maps.Values(inner))
	slices.SortFunc(ps, func(a, b Position) int {
		return strings.Compare(string(a.match), string(b.match))
	})
	return ps
}

// All iterates over every open position.
func (b *NonStrictPortfolio) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, inner := range b.book {
			for _, p := range inner {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Len returns the number of open positions.
func (b *NonStrictPortfolio) Len() int {
	n := 0
	for _, inner := range b.book {
		n += len(inner)
	}
	return n
}
