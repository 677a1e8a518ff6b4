// Package cryptotrack provides the functions and types for tracking and
// discussing cryptocurrency data. It is designed to be local-first,
// auditable, and extensible, ensuring users have full control and
// transparency over their data.
//
// The core functionalities include:
//   - Market Data Integration: Fetching symbol listings, batch quotes and
//     exchange rates from public providers to derive display-ready tables.
//   - Conversion Pipeline: Deriving crypto to fiat conversions and recording
//     them in a per-subject, append-only history log.
//   - Preference Management: Storing favorite coins, a weighted portfolio
//     string, investment goal and risk tolerance per subject, with
//     revision-checked writes.
//   - Community Feed: Posts with like/upvote toggles and comments, plus a
//     calendar of events keyed by day.
//   - Data Persistence: Handling the encoding and decoding of all records
//     to and from human-readable, version-controllable formats (JSON and
//     JSONL).
//
// This package serves as the foundational logic for the `cct` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package cryptotrack
