// Package ir holds the canonical, storable form of a derivation: the request,
// the rule history and the choice ledger, plus the content-addressed
// identifiers computed over them.
//
// ir imports nothing internal. The derive and store packages convert their own
// types into ir values at the boundary.
//
// Key constraints:
//   - No float types anywhere; numbers are int64
//   - Hashing uses canonical JSON only (MarshalCanonical)
//   - All JSON tags use snake_case
package ir
