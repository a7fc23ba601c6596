// Package premiumo provides the core logic for tracking options income
// trades (covered calls and cash secured puts). It is designed to be
// local-first: all data lives in local storage the user fully controls.
//
// The core functionalities include:
//   - Trade Schema: Validating, normalizing and versioning the persisted
//     trade payload, dropping malformed records instead of failing loads.
//   - Persistence Store: Reading and writing the payload on a small
//     key-value port with a one-generation backup key used to recover
//     from corrupted writes.
//   - Trade Repository: Load-mutate-save CRUD over the trade collection.
//   - Stats Engine: Pure derivation functions computing premium totals,
//     time-windowed sums, win rate and per-month/per-symbol breakdowns.
//   - Export Encoder: Serializing the trade collection to CSV and JSON
//     byte streams.
//   - Preferences: Display settings with change notification so views
//     can re-read after any write.
//
// This package serves as the foundational logic for the `pplus`
// command-line tool, ensuring that all operations are consistent and
// based on a single source of truth.
package premiumo
