// Package derive runs the rule pipeline for one request and explores every
// optional-rule branch.
//
// Exploration is breadth-first over choice configurations. The first run
// decides every optional rule by default. Each default decision in a finished
// branch then seeds a new configuration that keeps the decisions made before
// it and flips it. A configuration runs at most once, and the total number of
// runs is bounded by WithMaxBranches.
//
// Results are distinct by surface string. When two branches reach the same
// surface, the one explored first is kept.
//
// Key invariants:
//   - Identical requests yield identical results in identical order
//   - An invariant violation in any branch fails the whole request
//   - A branch that needs an unimplemented rule yields nothing
package derive
