// Package store provides SQLite-backed audit storage for finished
// derivations.
//
// Each row holds one derivation: the request, the surface form, the rule
// history, the choice ledger and the history digest. Rows are append-only.
// Derivation never depends on the store; the CLI records results after the
// fact and replays them later against the current engine.
//
// # Ordering
//
//   - seq INTEGER is the insertion order
//   - Every list query uses ORDER BY seq ASC, id COLLATE BINARY ASC
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Identifiers are UUIDv7, so lexical order follows creation time. Request IDs
// and digests come from internal/ir.
package store
