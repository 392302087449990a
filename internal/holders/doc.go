// Package holders loads a server-paginated list of token holders as one
// continuous, append-only sequence.
//
// The Loader is a small state machine driven by an opaque server cursor:
//
//	idle -> loading -> ready | error
//	ready -> loadingMore -> ready | exhausted | error
//	error -> (retry) -> loading | loadingMore
//
// At most one fetch is outstanding per Loader. Every fetch is tagged with a
// generation number and a completion whose tag no longer matches (because the
// loader was closed or a newer fetch began) is discarded. Pages are never merged,
// re-sorted or deduplicated: page order is authoritative.
package holders
