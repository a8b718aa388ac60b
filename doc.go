// Package netbook provides a position-netting and portfolio-bookkeeping
// engine for a trading ledger. Given a stream of incoming trade positions,
// it determines how each one interacts with whatever position(s) already
// exist for the same instrument, produces the minimal set of state changes
// (open, modify, close, partial close) needed to keep the ledger consistent,
// and records realized gains and losses as immutable deal facts.
//
// The core functionalities include:
//   - Position Netting: A sign-aware merge algorithm that nets two positions
//     on the same instrument into a residual position plus realized money.
//   - Diff Derivation: Every ledger transition is described by an ordered
//     list of actions (AddPosition, RemovePosition, ModifyPosition,
//     CreateDeal) so downstream consumers see exactly what changed.
//   - Portfolio Policies: A strict book keeps at most one net position per
//     instrument; a non-strict book tracks multiple independent positions
//     per instrument, correlated by an explicit match identifier.
//   - Account Settlement: An Account consumes diffs to realize profit and
//     loss into a balance held in a single settlement asset, converting
//     through an external Market.
//
// Every value in this package (Position, Deal, Diff, Portfolio, Account) is
// immutable once constructed: operations return new snapshots and never
// mutate their inputs, so concurrent readers may share references without
// coordination. Serializing concurrent writers is the caller's job.
//
// All arithmetic is exact, carried by shopspring decimals wrapped in Money
// and Quantity value types. Persistence and transport are the responsibility
// of surrounding code; this package only offers JSONL codecs used by the
// `nbk` command-line tool.
package netbook
