// Package prakriya implements the derivation state every rule mutates.
//
// A Prakriya owns the ordered term sequence of one derivation attempt, a set
// of global tags (voice, person, number), an append-only history of
// (rule, surface snapshot) steps and the ledger of optional-rule decisions
// made in this branch.
//
// RULE-APPLICATION PROTOCOL:
//
//   - Op / OpTerm apply a mandatory rule and append one history step.
//   - Step declares a rule that fires without changing text.
//   - OpOptional / OpOptionalTerm apply an optional rule. The first time a
//     label is met in a branch its decision comes from the configured choices,
//     or defaults to Accept and is recorded as a branch point. Meeting the
//     label again returns the stored decision.
//   - IsAllowed / Accept / Decline let one rule suppress a later, more general
//     one within the same branch.
//
// Lookups (Get, View, FindFirst, Has, ...) return an absence signal instead
// of failing, so a rule whose condition cannot be evaluated is simply
// skipped. The only fatal condition is an InvariantError, raised by callers
// when a structural post-condition fails.
//
// BRANCHING:
//
// A Prakriya never forks itself. The driver runs the pipeline once, reads
// BranchPoints, and re-runs it with configured choices for each alternative.
// Fork returns a deep copy for callers that want to continue from a shared
// prefix; the copy shares no mutable state with its parent.
//
// A Prakriya is not safe for concurrent use. Distinct Prakriya values are
// fully independent and may be driven from different goroutines.
package prakriya
