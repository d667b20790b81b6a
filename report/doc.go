// Package report computes sample frequency tables over the store and the
// derivation closures, for gauging which classes are data-starved before
// and after derivation.
//
// Two tables are produced. The real table counts stored drawings per symbol
// and is sorted by count descending so the starved tail is immediately
// visible. The derived table counts, per class leader, every record the
// closure can mint from stored samples before partitioning and balancing,
// and is sorted by symbol for stable diffing between model revisions.
// Both serialize to two-column CSV ("symbol,count") with a header row.
package report
