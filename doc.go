// Package fundpool implements the accounting engine of a small private
// investment pool: a handful of partners wire cash into a common
// account, the pool trades instruments on the Taiwan and US markets,
// and everyone's stake is tracked in fund units. It is designed to be
// local-first and auditable; the whole pool lives in one human-readable
// JSONL file under version control.
//
// The core functionalities include:
//   - Capital Tracking: aggregating each partner's contributed cash
//     against a declared roster.
//   - Position Ledger: replaying buys and sells with the average-cost
//     method, converting USD notionals at a maintained rate.
//   - Valuation: marking open positions against manually entered
//     prices, falling back to break-even when no quote exists.
//   - Unit Accounting: issuing fund units at the NAV-per-unit of each
//     contribution date, reconstructing historical prices from asset
//     snapshots when no price was recorded.
//   - Data Persistence: encoding and decoding the record set to a
//     canonical, diff-friendly JSONL form.
//
// Everything derived (cash, equity, NAV) is recomputed from the records
// on every read; nothing derived is ever stored. This package serves as
// the foundational logic for the `pfc` command-line tool.
package fundpool
