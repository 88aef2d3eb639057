// Package analytics computes the business rollups served to leadership:
// closed revenue, open pipeline health, work order operations and
// cross-board conversion, plus the composed leadership update.
//
// Every rollup is a pure function of a canonical record set snapshot,
// an optional period filter and an explicit reference time. Nothing
// here mutates its input or keeps state between calls; determinism is
// the whole concurrency story (the snapshot store above this package
// handles atomic replacement).
//
// Rollups distinguish two kinds of emptiness. A wholly empty record
// set is a typed error (ErrNoDeals, ErrNoWorkOrders) the caller must
// handle. An empty subset after status or period filtering is a normal
// zero-valued result.
package analytics
